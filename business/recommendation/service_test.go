//go:build !integration

package recommendation

import (
	"context"
	"errors"
	"testing"
	"time"

	"pesqueriaOutfitters/domain"
)

// ---- fakes ----

type fakeProductRepo struct {
	products []domain.Product
	featured []domain.Product
	err      error
}

func (f *fakeProductRepo) FindByID(_ context.Context, id uint64) (domain.Product, error) {
	if f.err != nil {
		return domain.Product{}, f.err
	}
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrProductNotFound
}

func (f *fakeProductRepo) FindInStock(_ context.Context, excludeID uint64) ([]domain.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.Product, 0, len(f.products))
	for _, p := range f.products {
		if p.ID != excludeID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) FindFeatured(_ context.Context, limit int) ([]domain.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit > len(f.featured) {
		limit = len(f.featured)
	}
	return f.featured[:limit], nil
}

func (f *fakeProductRepo) FindInStockByIDs(_ context.Context, ids []uint64) ([]domain.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		for _, p := range f.products {
			if p.ID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

type fakeOrdersRepo struct {
	orderIDs        []uint64
	lines           []domain.OrderLine
	recentPurchased []uint64
	counts          []domain.ProductPurchaseCount
	err             error
}

func (f *fakeOrdersRepo) OrderIDsContaining(_ context.Context, _ uint64, limit int) ([]uint64, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit > len(f.orderIDs) {
		limit = len(f.orderIDs)
	}
	return f.orderIDs[:limit], nil
}

func (f *fakeOrdersRepo) LinesByOrderIDs(_ context.Context, _ []uint64) ([]domain.OrderLine, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.lines, nil
}

func (f *fakeOrdersRepo) RecentPurchasedProductIDs(_ context.Context, _ uint, _ int) ([]uint64, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.recentPurchased, nil
}

func (f *fakeOrdersRepo) PurchaseCountsSince(_ context.Context, _ time.Time, limit int) ([]domain.ProductPurchaseCount, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit > len(f.counts) {
		limit = len(f.counts)
	}
	return f.counts[:limit], nil
}

type fakeCache struct {
	store map[string][]domain.Recommendation
	hits  int
	sets  int
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string][]domain.Recommendation)}
}

func (f *fakeCache) Get(_ context.Context, key string) ([]domain.Recommendation, bool, error) {
	recs, ok := f.store[key]
	if ok {
		f.hits++
	}
	return recs, ok, nil
}

func (f *fakeCache) Set(_ context.Context, key string, recs []domain.Recommendation, _ time.Duration) error {
	f.sets++
	f.store[key] = recs
	return nil
}

func newTestService(products *fakeProductRepo, orders *fakeOrdersRepo) *RecommendationService {
	return NewRecommendationService(products, orders, nil, DefaultConfig(), 5*time.Minute)
}

// inStock builds a product with one sellable variant.
func inStock(id, categoryID uint64, price float64, description, focus string) domain.Product {
	return domain.Product{
		ID:                id,
		CategoryID:        categoryID,
		BasePrice:         price,
		Description:       description,
		ConservationFocus: focus,
		Variants: []domain.ProductVariant{
			{ID: id * 100, ProductID: id, Stock: 5, Price: price},
		},
	}
}

// ---- facade ----

func TestRecommendUnknownStrategy(t *testing.T) {
	svc := newTestService(&fakeProductRepo{}, &fakeOrdersRepo{})

	if _, err := svc.Recommend(context.Background(), "editorial", 0, 0, 6); err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}

func TestRecommendTimeoutYieldsEmpty(t *testing.T) {
	svc := newTestService(&fakeProductRepo{}, &fakeOrdersRepo{})

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	recs, err := svc.Recommend(ctx, StrategyTrending, 0, 0, 6)
	if err != nil {
		t.Fatalf("expected timeout to be absorbed, got error: %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("expected empty result on timeout, got %d recommendations", len(recs))
	}
}

func TestRecommendStoreFailurePropagates(t *testing.T) {
	storeErr := errors.New("connection refused")
	svc := newTestService(&fakeProductRepo{err: storeErr}, &fakeOrdersRepo{})

	_, err := svc.Recommend(context.Background(), StrategySimilar, 1, 0, 6)
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error to propagate, got: %v", err)
	}
}

func TestRecommendDefaultLimit(t *testing.T) {
	products := &fakeProductRepo{}
	for i := uint64(1); i <= 12; i++ {
		products.featured = append(products.featured, inStock(i, 1, 25, "", ""))
	}
	svc := newTestService(products, &fakeOrdersRepo{})

	recs, err := svc.Recommend(context.Background(), StrategyPersonalized, 0, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != defaultMaxRecommendations {
		t.Errorf("expected default limit %d, got %d", defaultMaxRecommendations, len(recs))
	}
}

func TestRankAndTruncateDedupes(t *testing.T) {
	recs := []domain.Recommendation{
		{Product: domain.Product{ID: 2}, Score: 0.7},
		{Product: domain.Product{ID: 1}, Score: 0.7},
		{Product: domain.Product{ID: 2}, Score: 0.95},
		{Product: domain.Product{ID: 3}, Score: 0.7},
	}

	out := rankAndTruncate(recs, 10)

	if len(out) != 3 {
		t.Fatalf("expected 3 deduped entries, got %d", len(out))
	}
	if out[0].Product.ID != 2 || out[0].Score != 0.95 {
		t.Errorf("expected the higher-scored duplicate to win, got id=%d score=%f", out[0].Product.ID, out[0].Score)
	}
	// equal scores fall back to ascending product id
	if out[1].Product.ID != 1 || out[2].Product.ID != 3 {
		t.Errorf("unexpected tie-break order: %d, %d", out[1].Product.ID, out[2].Product.ID)
	}
}
