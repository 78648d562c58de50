package recommendation

import (
	"context"
	"fmt"
	"time"

	"pesqueriaOutfitters/domain"
	"pesqueriaOutfitters/pkg/logger"
)

// TrendingProducts ranks by order-line quantities inside the trending window,
// grouped by variant and resolved to the parent product. This is the
// purchase-driven ranking; the view-driven variant lives in the signal
// aggregator.
func (s *RecommendationService) TrendingProducts(
	ctx context.Context,
	limit int,
) ([]domain.Recommendation, error) {

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if limit <= 0 {
		limit = s.cfg.MaxRecommendations
	}

	cacheKey := fmt.Sprintf("reco:trending:%d", limit)
	if s.cache != nil {
		if recs, ok, err := s.cache.Get(ctx, cacheKey); err == nil && ok {
			CacheHitsTotal.Inc()
			return recs, nil
		}
	}

	since := time.Now().Add(-time.Duration(s.cfg.TrendingWindowDays) * 24 * time.Hour)

	// over-fetch so stock filtering cannot starve the result
	candidateLimit := limit * 3
	if candidateLimit < limit {
		candidateLimit = limit
	}

	counts, err := s.ordersRepo.PurchaseCountsSince(ctx, since, candidateLimit)
	if err != nil {
		return nil, fmt.Errorf("load purchase counts: %w", err)
	}
	if len(counts) == 0 {
		return []domain.Recommendation{}, nil
	}

	ids := make([]uint64, 0, len(counts))
	for _, c := range counts {
		ids = append(ids, c.ProductID)
	}

	products, err := s.productRepo.FindInStockByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load trending products: %w", err)
	}

	byID := make(map[uint64]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	// counts arrive ordered by aggregate descending with a product-id
	// tie-break, so walking them in order keeps the ranking deterministic.
	seen := make(map[uint64]struct{}, len(counts))
	recs := make([]domain.Recommendation, 0, limit)
	for _, c := range counts {
		if _, ok := seen[c.ProductID]; ok {
			continue
		}
		seen[c.ProductID] = struct{}{}

		product, ok := byID[c.ProductID]
		if !ok {
			continue
		}

		recs = append(recs, domain.Recommendation{
			Product: product,
			Score:   1.0,
			Reason:  fmt.Sprintf("%d recent purchases", c.Count),
		})
		if len(recs) == limit {
			break
		}
	}

	if s.cache != nil && len(recs) > 0 {
		if err := s.cache.Set(ctx, cacheKey, recs, s.cacheTTL); err != nil {
			logger.Warn("failed to cache trending recommendations", "error", err)
		}
	}

	return recs, nil
}
