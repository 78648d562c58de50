//go:build !integration

package recommendation

import (
	"context"
	"math"
	"testing"

	"pesqueriaOutfitters/domain"
)

func TestPersonalizedAnonymousGetsFeatured(t *testing.T) {
	products := &fakeProductRepo{
		featured: []domain.Product{
			inStock(7, 1, 30, "", ""),
			inStock(8, 1, 45, "", ""),
		},
	}
	svc := newTestService(products, &fakeOrdersRepo{})

	recs, err := svc.PersonalizedRecommendations(context.Background(), 0, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 featured recommendations, got %d", len(recs))
	}

	for _, rec := range recs {
		if rec.Score != 1.0 {
			t.Errorf("expected featured score 1.0, got %f", rec.Score)
		}
		if rec.Reason != "Featured product" {
			t.Errorf("expected featured reason, got %q", rec.Reason)
		}
	}
}

func TestPersonalizedNoHistoryFallsBack(t *testing.T) {
	products := &fakeProductRepo{
		featured: []domain.Product{inStock(7, 1, 30, "", "")},
	}
	orders := &fakeOrdersRepo{recentPurchased: nil}
	svc := newTestService(products, orders)

	recs, err := svc.PersonalizedRecommendations(context.Background(), 42, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 1 || recs[0].Product.ID != 7 {
		t.Fatalf("expected featured fallback, got %+v", recs)
	}
}

func TestPersonalizedMultiSourceBoost(t *testing.T) {
	// two purchased products, both similar to candidate 3; the candidate is
	// boosted once over its base similarity score
	catalog := []domain.Product{
		inStock(1, 5, 50, "", "kelp forests"),
		inStock(2, 5, 52, "", "kelp forests"),
		inStock(3, 5, 51, "", "kelp forests"),
	}
	products := &fakeProductRepo{products: catalog}
	orders := &fakeOrdersRepo{recentPurchased: []uint64{1, 2}}
	svc := newTestService(products, orders)

	recs, err := svc.PersonalizedRecommendations(context.Background(), 42, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var boosted *domain.Recommendation
	for i := range recs {
		if recs[i].Product.ID == 3 {
			boosted = &recs[i]
		}
	}
	if boosted == nil {
		t.Fatal("expected candidate 3 in results")
	}

	base := svc.scorer.Score(catalog[0], catalog[2]).Score
	want := base + defaultMultiSourceBoost
	if want > 1.0 {
		want = 1.0
	}

	if math.Abs(boosted.Score-want) > 0.02 {
		t.Errorf("expected boosted score near %f, got %f", want, boosted.Score)
	}
	if boosted.Score > 1.0 {
		t.Errorf("boosted score exceeds 1.0: %f", boosted.Score)
	}
}

func TestPersonalizedEmptyCatalog(t *testing.T) {
	svc := newTestService(&fakeProductRepo{}, &fakeOrdersRepo{})

	recs, err := svc.PersonalizedRecommendations(context.Background(), 42, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("expected empty result, got %d", len(recs))
	}
}
