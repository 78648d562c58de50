package recommendation

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"pesqueriaOutfitters/domain"
)

// FrequentlyBoughtTogether scans the most recent orders containing the anchor
// and counts every other product appearing alongside it. The score is the
// co-occurrence count over the number of anchor orders scanned, so it stays a
// bounded proportion regardless of purchase volume.
//
// The window is rescanned from scratch on every call. Fine at this scale; an
// incrementally maintained co-occurrence index is the known upgrade path if
// profiling ever demands it.
func (s *RecommendationService) FrequentlyBoughtTogether(
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

	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return []domain.Recommendation{}, nil
		}
		return nil, fmt.Errorf("load anchor product: %w", err)
	}

	orderIDs, err := s.ordersRepo.OrderIDsContaining(ctx, productID, s.cfg.CoOccurrenceWindow)
	if err != nil {
		return nil, fmt.Errorf("load anchor orders: %w", err)
	}
	if len(orderIDs) == 0 {
		return []domain.Recommendation{}, nil
	}

	lines, err := s.ordersRepo.LinesByOrderIDs(ctx, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("load order lines: %w", err)
	}

	coOccurrences := make(map[uint64]int)
	for _, line := range lines {
		if line.ProductID != productID {
			coOccurrences[line.ProductID]++
		}
	}
	if len(coOccurrences) == 0 {
		return []domain.Recommendation{}, nil
	}

	type pair struct {
		productID uint64
		count     int
	}

	ranked := make([]pair, 0, len(coOccurrences))
	for pid, count := range coOccurrences {
		ranked = append(ranked, pair{productID: pid, count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].productID < ranked[j].productID
	})

	ids := make([]uint64, 0, len(ranked))
	for _, p := range ranked {
		ids = append(ids, p.productID)
	}

	products, err := s.productRepo.FindInStockByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load co-occurring products: %w", err)
	}

	byID := make(map[uint64]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	scanned := float64(len(orderIDs))

	recs := make([]domain.Recommendation, 0, limit)
	for _, p := range ranked {
		product, ok := byID[p.productID]
		if !ok {
			continue
		}

		score := float64(p.count) / scanned
		if score > 1.0 {
			score = 1.0
		}

		recs = append(recs, domain.Recommendation{
			Product: product,
			Score:   score,
			Reason:  fmt.Sprintf("Bought together %d times", p.count),
		})
		if len(recs) == limit {
			break
		}
	}

	return recs, nil
}
