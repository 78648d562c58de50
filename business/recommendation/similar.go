package recommendation

import (
	"context"
	"errors"
	"fmt"

	"pesqueriaOutfitters/domain"
)

// SimilarProducts scores the anchor against every in-stock catalog candidate
// and keeps those clearing the similarity threshold. Fewer than limit
// qualifying candidates means a shorter list, never padding.
func (s *RecommendationService) SimilarProducts(
	ctx context.Context,
	productID uint64,
	limit int,
) ([]domain.Recommendation, error) {

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if limit <= 0 {
		limit = s.cfg.MaxRecommendations
	}

	anchor, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return []domain.Recommendation{}, nil
		}
		return nil, fmt.Errorf("load anchor product: %w", err)
	}

	candidates, err := s.productRepo.FindInStock(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}

	scored := make([]domain.Recommendation, 0, len(candidates))
	for _, cand := range candidates {
		if cand.ID == anchor.ID {
			continue
		}

		result := s.scorer.Score(anchor, cand)
		if result.Score < s.cfg.SimilarityThreshold {
			continue
		}

		scored = append(scored, domain.Recommendation{
			Product: cand,
			Score:   result.Score,
			Reason:  result.Reason,
		})
	}

	return rankAndTruncate(scored, limit), nil
}
