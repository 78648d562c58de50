//go:build !integration

package recommendation

import (
	"context"
	"reflect"
	"testing"

	"pesqueriaOutfitters/domain"
)

// similarCatalog is a catalog where products 2 and 3 clear the threshold
// against anchor 1 and product 4 does not.
func similarCatalog() []domain.Product {
	return []domain.Product{
		inStock(1, 10, 40, "braided saltwater line heavy duty", "reef restoration"),
		inStock(2, 10, 42, "braided saltwater line light", "reef restoration"),
		inStock(3, 10, 38, "saltwater leader line", "reef restoration"),
		inStock(4, 99, 250, "aluminum boat anchor", ""),
	}
}

func TestSimilarProductsExcludesAnchor(t *testing.T) {
	products := &fakeProductRepo{products: similarCatalog()}
	svc := newTestService(products, &fakeOrdersRepo{})

	recs, err := svc.SimilarProducts(context.Background(), 1, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) == 0 {
		t.Fatal("expected at least one recommendation")
	}

	for _, rec := range recs {
		if rec.Product.ID == 1 {
			t.Fatal("anchor product surfaced in its own recommendations")
		}
	}
}

func TestSimilarProductsThreshold(t *testing.T) {
	products := &fakeProductRepo{products: similarCatalog()}
	svc := newTestService(products, &fakeOrdersRepo{})

	recs, err := svc.SimilarProducts(context.Background(), 1, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, rec := range recs {
		if rec.Product.ID == 4 {
			t.Error("dissimilar product cleared the threshold")
		}
		if rec.Score < defaultSimilarityThreshold {
			t.Errorf("product %d below threshold with score %f", rec.Product.ID, rec.Score)
		}
	}
}

func TestSimilarProductsNoQualifyingCandidates(t *testing.T) {
	products := &fakeProductRepo{products: []domain.Product{
		inStock(1, 10, 40, "fly rod", ""),
		inStock(4, 99, 900, "boat trailer", ""),
	}}
	svc := newTestService(products, &fakeOrdersRepo{})

	recs, err := svc.SimilarProducts(context.Background(), 1, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("expected empty list, got %d recommendations", len(recs))
	}
}

func TestSimilarProductsUnknownAnchor(t *testing.T) {
	products := &fakeProductRepo{products: similarCatalog()}
	svc := newTestService(products, &fakeOrdersRepo{})

	recs, err := svc.SimilarProducts(context.Background(), 777, 6)
	if err != nil {
		t.Fatalf("expected missing anchor to yield empty result, got error: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("expected empty list for unknown anchor, got %d", len(recs))
	}
}

func TestSimilarProductsLimit(t *testing.T) {
	products := &fakeProductRepo{products: similarCatalog()}
	svc := newTestService(products, &fakeOrdersRepo{})

	recs, err := svc.SimilarProducts(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 1 {
		t.Errorf("expected exactly 1 recommendation, got %d", len(recs))
	}
}

func TestSimilarProductsDeterministic(t *testing.T) {
	products := &fakeProductRepo{products: similarCatalog()}
	svc := newTestService(products, &fakeOrdersRepo{})

	first, err := svc.SimilarProducts(context.Background(), 1, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.SimilarProducts(context.Background(), 1, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("identical calls on a fixed catalog produced different results")
	}
}
