package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pesqueriaOutfitters/domain"
	"pesqueriaOutfitters/pkg/logger"

	"github.com/google/uuid"
)

// EventRepository contract interface
type EventRepository interface {
	Save(ctx context.Context, event *domain.AnalyticsEvent) error
	FindBySession(ctx context.Context, sessionID string, since time.Time, limit int) ([]domain.AnalyticsEvent, error)
	FindProductEvents(ctx context.Context, since time.Time) ([]domain.ProductEventRow, error)
	CountByProduct(ctx context.Context, eventType string, since time.Time) (map[uint64]int, error)
}

type TrackerService struct {
	eventRepo EventRepository
}

func NewTrackerService(eventRepo EventRepository) *TrackerService {
	return &TrackerService{
		eventRepo: eventRepo,
	}
}

// Record appends one behavioral event and returns its event id.
//
// Only malformed input is rejected. A storage failure drops the event and is
// logged; tracking must never abort the page view or checkout that triggered
// it, so no error reaches the caller for that case.
func (s *TrackerService) Record(ctx context.Context, event domain.AnalyticsEvent) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("context error: %w", err)
	}

	if event.SessionID == "" {
		return "", errors.New("session id is required")
	}

	switch event.EventType {
	case domain.EventProductView, domain.EventAddToCart, domain.EventPurchase:
	default:
		return "", fmt.Errorf("unknown event type: %s", event.EventType)
	}

	if err := validateMetadata(event.EventType, event.Metadata); err != nil {
		return "", fmt.Errorf("invalid event metadata: %w", err)
	}

	event.EventID = uuid.New().String()
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	if err := s.eventRepo.Save(ctx, &event); err != nil {
		logger.Error("failed to save analytics event, dropping it",
			"event_type", event.EventType,
			"product_id", event.ProductID,
			"error", err,
		)
		EventsDroppedTotal.Inc()
		return "", nil
	}

	EventsTrackedTotal.WithLabelValues(event.EventType).Inc()

	return event.EventID, nil
}
