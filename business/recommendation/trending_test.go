//go:build !integration

package recommendation

import (
	"context"
	"testing"
	"time"

	"pesqueriaOutfitters/domain"
)

func TestTrendingOrderingAndReason(t *testing.T) {
	products := &fakeProductRepo{products: []domain.Product{
		inStock(1, 1, 20, "", ""),
		inStock(2, 1, 25, "", ""),
		inStock(3, 1, 30, "", ""),
	}}
	orders := &fakeOrdersRepo{counts: []domain.ProductPurchaseCount{
		{ProductID: 2, Count: 9},
		{ProductID: 3, Count: 5},
		{ProductID: 1, Count: 2},
	}}
	svc := newTestService(products, orders)

	recs, err := svc.TrendingProducts(context.Background(), 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(recs))
	}

	wantOrder := []uint64{2, 3, 1}
	for i, rec := range recs {
		if rec.Product.ID != wantOrder[i] {
			t.Errorf("position %d: expected product %d, got %d", i, wantOrder[i], rec.Product.ID)
		}
		if rec.Score != 1.0 {
			t.Errorf("expected trending score 1.0, got %f", rec.Score)
		}
	}

	if recs[0].Reason != "9 recent purchases" {
		t.Errorf("unexpected reason: %q", recs[0].Reason)
	}
}

func TestTrendingSkipsOutOfStock(t *testing.T) {
	// product 3 has purchases but no sellable variant
	products := &fakeProductRepo{products: []domain.Product{
		inStock(1, 1, 20, "", ""),
		inStock(2, 1, 25, "", ""),
	}}
	orders := &fakeOrdersRepo{counts: []domain.ProductPurchaseCount{
		{ProductID: 3, Count: 9},
		{ProductID: 2, Count: 5},
		{ProductID: 1, Count: 2},
	}}
	svc := newTestService(products, orders)

	recs, err := svc.TrendingProducts(context.Background(), 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recs))
	}
	if recs[0].Product.ID != 2 || recs[1].Product.ID != 1 {
		t.Errorf("unexpected order: %d, %d", recs[0].Product.ID, recs[1].Product.ID)
	}
}

func TestTrendingEmptyWindow(t *testing.T) {
	svc := newTestService(&fakeProductRepo{}, &fakeOrdersRepo{})

	recs, err := svc.TrendingProducts(context.Background(), 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("expected empty result, got %d", len(recs))
	}
}

func TestTrendingUsesCache(t *testing.T) {
	products := &fakeProductRepo{products: []domain.Product{inStock(1, 1, 20, "", "")}}
	orders := &fakeOrdersRepo{counts: []domain.ProductPurchaseCount{{ProductID: 1, Count: 4}}}
	cache := newFakeCache()
	svc := NewRecommendationService(products, orders, cache, DefaultConfig(), 5*time.Minute)

	first, err := svc.TrendingProducts(context.Background(), 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache write, got %d", cache.sets)
	}

	second, err := svc.TrendingProducts(context.Background(), 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cache.hits != 1 {
		t.Errorf("expected cache hit on second call, got %d", cache.hits)
	}
	if len(first) != len(second) {
		t.Errorf("cached result differs: %d vs %d", len(first), len(second))
	}
}
