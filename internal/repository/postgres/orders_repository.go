package postgres

import (
	"context"
	"fmt"
	"time"

	"pesqueriaOutfitters/domain"

	"gorm.io/gorm"
)

// OrdersRepository reads the order store; nothing in this service ever
// writes to it.
type OrdersRepository struct {
	DB *gorm.DB
}

func NewOrdersRepository(db *gorm.DB) *OrdersRepository {
	return &OrdersRepository{
		DB: db,
	}
}

// OrderIDsContaining returns the ids of the most recent orders holding the
// given product, newest first.
func (r *OrdersRepository) OrderIDsContaining(ctx context.Context, productID uint64, limit int) ([]uint64, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var ids []uint64
	err := r.DB.WithContext(ctx).Raw(`
		SELECT DISTINCT o.id
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id
		JOIN product_variants pv ON pv.id = oi.variant_id
		WHERE pv.product_id = ?
		ORDER BY o.id DESC
		LIMIT ?`,
		productID, limit,
	).Scan(&ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find orders containing product: %w", err)
	}

	return ids, nil
}

// LinesByOrderIDs resolves every item of the given orders up to its parent
// product.
func (r *OrdersRepository) LinesByOrderIDs(ctx context.Context, orderIDs []uint64) ([]domain.OrderLine, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if len(orderIDs) == 0 {
		return []domain.OrderLine{}, nil
	}

	var lines []domain.OrderLine
	err := r.DB.WithContext(ctx).Raw(`
		SELECT oi.order_id, pv.product_id, oi.variant_id, oi.quantity
		FROM order_items oi
		JOIN product_variants pv ON pv.id = oi.variant_id
		WHERE oi.order_id IN ?
		ORDER BY oi.order_id DESC, oi.id ASC`,
		orderIDs,
	).Scan(&lines).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load order lines: %w", err)
	}

	return lines, nil
}

// RecentPurchasedProductIDs returns the distinct product ids from a user's
// last orderLimit orders, most recent purchase first.
func (r *OrdersRepository) RecentPurchasedProductIDs(ctx context.Context, userID uint, orderLimit int) ([]uint64, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var ids []uint64
	err := r.DB.WithContext(ctx).Raw(`
		SELECT pv.product_id
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id
		JOIN product_variants pv ON pv.id = oi.variant_id
		WHERE o.id IN (
			SELECT id FROM orders
			WHERE user_id = ?
			ORDER BY created_at DESC, id DESC
			LIMIT ?
		)
		ORDER BY o.created_at DESC, o.id DESC, oi.id ASC`,
		userID, orderLimit,
	).Scan(&ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load purchased product ids: %w", err)
	}

	// keep first occurrence so recency ordering survives the dedupe
	seen := make(map[uint64]struct{}, len(ids))
	out := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out, nil
}

// PurchaseCountsSince aggregates order-line quantities since the given time,
// grouped by variant and resolved to the parent product. Ordered by count
// descending with product id as the deterministic tie-break.
func (r *OrdersRepository) PurchaseCountsSince(ctx context.Context, since time.Time, limit int) ([]domain.ProductPurchaseCount, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var counts []domain.ProductPurchaseCount
	err := r.DB.WithContext(ctx).Raw(`
		SELECT pv.product_id, SUM(oi.quantity) AS count
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN product_variants pv ON pv.id = oi.variant_id
		WHERE o.created_at >= ?
		GROUP BY oi.variant_id, pv.product_id
		ORDER BY count DESC, pv.product_id ASC
		LIMIT ?`,
		since, limit,
	).Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate purchase counts: %w", err)
	}

	return counts, nil
}
