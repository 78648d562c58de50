package recommendation

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"pesqueriaOutfitters/domain"
	"pesqueriaOutfitters/pkg/logger"
)

// ---- Repository interfaces ----

// ProductRepository is the read-only view of the catalog store this engine
// needs. In-stock means at least one variant with positive stock.
type ProductRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Product, error)
	FindInStock(ctx context.Context, excludeID uint64) ([]domain.Product, error)
	FindFeatured(ctx context.Context, limit int) ([]domain.Product, error)
	FindInStockByIDs(ctx context.Context, ids []uint64) ([]domain.Product, error)
}

// OrdersRepository is the read-only view of the order store.
type OrdersRepository interface {
	OrderIDsContaining(ctx context.Context, productID uint64, limit int) ([]uint64, error)
	LinesByOrderIDs(ctx context.Context, orderIDs []uint64) ([]domain.OrderLine, error)
	RecentPurchasedProductIDs(ctx context.Context, userID uint, orderLimit int) ([]uint64, error)
	PurchaseCountsSince(ctx context.Context, since time.Time, limit int) ([]domain.ProductPurchaseCount, error)
}

// ResultCache holds computed result lists for a short TTL. Optional; a nil
// cache disables caching.
type ResultCache interface {
	Get(ctx context.Context, key string) ([]domain.Recommendation, bool, error)
	Set(ctx context.Context, key string, recs []domain.Recommendation, ttl time.Duration) error
}

// ---- Service ----

type RecommendationService struct {
	productRepo ProductRepository
	ordersRepo  OrdersRepository
	cache       ResultCache
	scorer      *Scorer
	cfg         Config
	cacheTTL    time.Duration
}

func NewRecommendationService(
	productRepo ProductRepository,
	ordersRepo OrdersRepository,
	cache ResultCache,
	cfg Config,
	cacheTTL time.Duration,
) *RecommendationService {
	cfg = cfg.normalized()

	return &RecommendationService{
		productRepo: productRepo,
		ordersRepo:  ordersRepo,
		cache:       cache,
		scorer:      NewScorer(cfg.Weights, cfg.PriceCutoff),
		cfg:         cfg,
		cacheTTL:    cacheTTL,
	}
}

// Recommend dispatches to the requested strategy. A timed-out computation
// yields an empty list, never a partial one: recommendations decorate a page,
// they never block it.
func (s *RecommendationService) Recommend(
	ctx context.Context,
	strategy string,
	productID uint64,
	userID uint,
	limit int,
) ([]domain.Recommendation, error) {

	if limit <= 0 {
		limit = s.cfg.MaxRecommendations
	}

	var (
		recs []domain.Recommendation
		err  error
	)

	switch strategy {
	case StrategySimilar:
		recs, err = s.SimilarProducts(ctx, productID, limit)
	case StrategyPersonalized:
		recs, err = s.PersonalizedRecommendations(ctx, userID, limit)
	case StrategyTrending:
		recs, err = s.TrendingProducts(ctx, limit)
	case StrategyBoughtWith:
		recs, err = s.FrequentlyBoughtTogether(ctx, productID, limit)
	default:
		return nil, fmt.Errorf("unknown strategy: %s", strategy)
	}

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			logger.Warn("recommendation computation timed out",
				"strategy", strategy,
				"product_id", productID,
			)
			return []domain.Recommendation{}, nil
		}
		return nil, err
	}

	return recs, nil
}

// ---- shared ranking helpers ----

// rankAndTruncate sorts descending by score with product id as the stable
// secondary key, drops duplicate products keeping the higher-scored entry,
// and cuts the list to limit.
func rankAndTruncate(recs []domain.Recommendation, limit int) []domain.Recommendation {
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		return recs[i].Product.ID < recs[j].Product.ID
	})

	seen := make(map[uint64]struct{}, len(recs))
	out := make([]domain.Recommendation, 0, len(recs))
	for _, rec := range recs {
		if _, ok := seen[rec.Product.ID]; ok {
			continue
		}
		seen[rec.Product.ID] = struct{}{}

		out = append(out, rec)
		if len(out) == limit {
			break
		}
	}

	return out
}
