package recommendation

import (
	"context"
	"fmt"

	"pesqueriaOutfitters/domain"
)

// personalizedSource is one link of the fallback chain: the first source to
// return a non-empty list wins.
type personalizedSource func(ctx context.Context, userID uint, limit int) ([]domain.Recommendation, error)

// PersonalizedRecommendations tries the purchase-history source first, then
// falls back to featured products. Anonymous users (userID 0) skip straight
// to the featured set.
func (s *RecommendationService) PersonalizedRecommendations(
	ctx context.Context,
	userID uint,
	limit int,
) ([]domain.Recommendation, error) {

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if limit <= 0 {
		limit = s.cfg.MaxRecommendations
	}

	sources := []personalizedSource{
		s.purchaseHistorySource,
		s.featuredSource,
	}

	for _, source := range sources {
		recs, err := source(ctx, userID, limit)
		if err != nil {
			return nil, err
		}
		if len(recs) > 0 {
			return recs, nil
		}
	}

	return []domain.Recommendation{}, nil
}

// purchaseHistorySource runs similar-items against the user's most recent
// purchased products and merges the hits. A candidate surfaced by more than
// one source purchase gets an additive boost, capped at 1.0.
func (s *RecommendationService) purchaseHistorySource(
	ctx context.Context,
	userID uint,
	limit int,
) ([]domain.Recommendation, error) {

	if userID == 0 {
		return []domain.Recommendation{}, nil
	}

	purchasedIDs, err := s.ordersRepo.RecentPurchasedProductIDs(ctx, userID, s.cfg.RecentOrderLookback)
	if err != nil {
		return nil, fmt.Errorf("load purchase history: %w", err)
	}
	if len(purchasedIDs) == 0 {
		return []domain.Recommendation{}, nil
	}

	sourceIDs := purchasedIDs
	if len(sourceIDs) > s.cfg.SourceProducts {
		sourceIDs = sourceIDs[:s.cfg.SourceProducts]
	}

	merged := make(map[uint64]domain.Recommendation)
	for _, sourceID := range sourceIDs {
		similar, err := s.SimilarProducts(ctx, sourceID, limit)
		if err != nil {
			return nil, err
		}

		for _, rec := range similar {
			existing, ok := merged[rec.Product.ID]
			if !ok {
				merged[rec.Product.ID] = rec
				continue
			}

			existing.Score += s.cfg.MultiSourceBoost
			if existing.Score > 1.0 {
				existing.Score = 1.0
			}
			merged[rec.Product.ID] = existing
		}
	}

	recs := make([]domain.Recommendation, 0, len(merged))
	for _, rec := range merged {
		recs = append(recs, rec)
	}

	return rankAndTruncate(recs, limit), nil
}

// featuredSource is the neutral fallback: flagged products at a fixed score.
func (s *RecommendationService) featuredSource(
	ctx context.Context,
	_ uint,
	limit int,
) ([]domain.Recommendation, error) {

	featured, err := s.productRepo.FindFeatured(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("load featured products: %w", err)
	}

	recs := make([]domain.Recommendation, 0, len(featured))
	for _, product := range featured {
		recs = append(recs, domain.Recommendation{
			Product: product,
			Score:   1.0,
			Reason:  "Featured product",
		})
	}

	return rankAndTruncate(recs, limit), nil
}
