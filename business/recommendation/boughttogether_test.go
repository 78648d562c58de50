//go:build !integration

package recommendation

import (
	"context"
	"math"
	"testing"

	"pesqueriaOutfitters/domain"
)

func TestBoughtTogetherProportion(t *testing.T) {
	products := &fakeProductRepo{products: []domain.Product{
		inStock(1, 1, 20, "", ""),
		inStock(2, 1, 25, "", ""),
	}}
	// 10 orders contain the anchor; product 2 appears in 4 of them
	orders := &fakeOrdersRepo{
		orderIDs: []uint64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		lines: []domain.OrderLine{
			{OrderID: 1, ProductID: 1}, {OrderID: 1, ProductID: 2},
			{OrderID: 2, ProductID: 1}, {OrderID: 2, ProductID: 2},
			{OrderID: 3, ProductID: 1}, {OrderID: 3, ProductID: 2},
			{OrderID: 4, ProductID: 1}, {OrderID: 4, ProductID: 2},
			{OrderID: 5, ProductID: 1},
		},
	}
	svc := newTestService(products, orders)

	recs, err := svc.FrequentlyBoughtTogether(context.Background(), 1, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}

	if math.Abs(recs[0].Score-0.4) > 1e-9 {
		t.Errorf("expected score 0.4, got %f", recs[0].Score)
	}
	if recs[0].Reason != "Bought together 4 times" {
		t.Errorf("unexpected reason: %q", recs[0].Reason)
	}
}

func TestBoughtTogetherNeverCoPurchased(t *testing.T) {
	products := &fakeProductRepo{products: []domain.Product{inStock(1, 1, 20, "", "")}}
	orders := &fakeOrdersRepo{
		orderIDs: []uint64{1, 2},
		lines: []domain.OrderLine{
			{OrderID: 1, ProductID: 1},
			{OrderID: 2, ProductID: 1},
		},
	}
	svc := newTestService(products, orders)

	recs, err := svc.FrequentlyBoughtTogether(context.Background(), 1, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("expected empty result, got %d", len(recs))
	}
}

func TestBoughtTogetherNoOrders(t *testing.T) {
	products := &fakeProductRepo{products: []domain.Product{inStock(1, 1, 20, "", "")}}
	svc := newTestService(products, &fakeOrdersRepo{})

	recs, err := svc.FrequentlyBoughtTogether(context.Background(), 1, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("expected empty result, got %d", len(recs))
	}
}

func TestBoughtTogetherUnknownAnchor(t *testing.T) {
	svc := newTestService(&fakeProductRepo{}, &fakeOrdersRepo{})

	recs, err := svc.FrequentlyBoughtTogether(context.Background(), 404, 6)
	if err != nil {
		t.Fatalf("expected missing anchor to yield empty result, got error: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("expected empty result, got %d", len(recs))
	}
}

func TestBoughtTogetherRankedByCount(t *testing.T) {
	products := &fakeProductRepo{products: []domain.Product{
		inStock(1, 1, 20, "", ""),
		inStock(2, 1, 25, "", ""),
		inStock(3, 1, 30, "", ""),
	}}
	orders := &fakeOrdersRepo{
		orderIDs: []uint64{1, 2, 3},
		lines: []domain.OrderLine{
			{OrderID: 1, ProductID: 1}, {OrderID: 1, ProductID: 2}, {OrderID: 1, ProductID: 3},
			{OrderID: 2, ProductID: 1}, {OrderID: 2, ProductID: 3},
			{OrderID: 3, ProductID: 1}, {OrderID: 3, ProductID: 3},
		},
	}
	svc := newTestService(products, orders)

	recs, err := svc.FrequentlyBoughtTogether(context.Background(), 1, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recs))
	}
	if recs[0].Product.ID != 3 || recs[1].Product.ID != 2 {
		t.Errorf("unexpected order: %d, %d", recs[0].Product.ID, recs[1].Product.ID)
	}
}
