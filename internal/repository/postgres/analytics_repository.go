package postgres

import (
	"context"
	"fmt"
	"time"

	"pesqueriaOutfitters/domain"

	"gorm.io/gorm"
)

// AnalyticsEventRepository owns the append-only behavioral event table.
type AnalyticsEventRepository struct {
	DB *gorm.DB
}

func NewAnalyticsEventRepository(db *gorm.DB) *AnalyticsEventRepository {
	return &AnalyticsEventRepository{
		DB: db,
	}
}

func (r *AnalyticsEventRepository) Save(ctx context.Context, event *domain.AnalyticsEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to save analytics event: %w", err)
	}

	return nil
}

// FindBySession returns a session's most recent events inside the window,
// in chronological order.
func (r *AnalyticsEventRepository) FindBySession(ctx context.Context, sessionID string, since time.Time, limit int) ([]domain.AnalyticsEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var events []domain.AnalyticsEvent
	err := r.DB.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Where("created_at >= ?", since).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find session events: %w", err)
	}

	// query returns newest first; flip to chronological
	for i, j := 0, len(events)-1; i < j; i, j = i+1, j-1 {
		events[i], events[j] = events[j], events[i]
	}

	return events, nil
}

func (r *AnalyticsEventRepository) FindProductEvents(ctx context.Context, since time.Time) ([]domain.ProductEventRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var rows []domain.ProductEventRow
	err := r.DB.WithContext(ctx).
		Model(&domain.AnalyticsEvent{}).
		Select("product_id, event_type, created_at").
		Where("created_at >= ?", since).
		Where("product_id <> 0").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load product events: %w", err)
	}

	return rows, nil
}

func (r *AnalyticsEventRepository) CountByProduct(ctx context.Context, eventType string, since time.Time) (map[uint64]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	type countRow struct {
		ProductID uint64
		Count     int
	}

	var rows []countRow
	err := r.DB.WithContext(ctx).
		Model(&domain.AnalyticsEvent{}).
		Select("product_id, COUNT(*) AS count").
		Where("event_type = ?", eventType).
		Where("created_at >= ?", since).
		Where("product_id <> 0").
		Group("product_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count events by product: %w", err)
	}

	counts := make(map[uint64]int, len(rows))
	for _, row := range rows {
		counts[row.ProductID] = row.Count
	}

	return counts, nil
}
