//go:build !integration

package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"pesqueriaOutfitters/domain"

	"gorm.io/datatypes"
)

type fakeEventRepo struct {
	saved    []domain.AnalyticsEvent
	saveErr  error
	session  []domain.AnalyticsEvent
	rows     []domain.ProductEventRow
	counts   map[string]map[uint64]int
	queryErr error
}

func (f *fakeEventRepo) Save(_ context.Context, event *domain.AnalyticsEvent) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = append(f.saved, *event)
	return nil
}

func (f *fakeEventRepo) FindBySession(_ context.Context, _ string, _ time.Time, limit int) ([]domain.AnalyticsEvent, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	if limit > len(f.session) {
		limit = len(f.session)
	}
	return f.session[:limit], nil
}

func (f *fakeEventRepo) FindProductEvents(_ context.Context, _ time.Time) ([]domain.ProductEventRow, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.rows, nil
}

func (f *fakeEventRepo) CountByProduct(_ context.Context, eventType string, _ time.Time) (map[uint64]int, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.counts[eventType], nil
}

func TestRecordAssignsEventID(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := NewTrackerService(repo)

	eventID, err := svc.Record(context.Background(), domain.AnalyticsEvent{
		EventType: domain.EventProductView,
		SessionID: "sess-1",
		ProductID: 9,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if eventID == "" {
		t.Fatal("expected a non-empty event id")
	}
	if len(repo.saved) != 1 {
		t.Fatalf("expected 1 saved event, got %d", len(repo.saved))
	}
	if repo.saved[0].EventID != eventID {
		t.Error("returned event id does not match the stored one")
	}
}

func TestRecordRejectsMissingSession(t *testing.T) {
	svc := NewTrackerService(&fakeEventRepo{})

	if _, err := svc.Record(context.Background(), domain.AnalyticsEvent{
		EventType: domain.EventProductView,
	}); err == nil {
		t.Fatal("expected error for missing session id")
	}
}

func TestRecordRejectsUnknownEventType(t *testing.T) {
	svc := NewTrackerService(&fakeEventRepo{})

	if _, err := svc.Record(context.Background(), domain.AnalyticsEvent{
		EventType: "WISHLIST_ADD",
		SessionID: "sess-1",
	}); err == nil {
		t.Fatal("expected error for unknown event type")
	}
}

func TestRecordSwallowsStorageFailure(t *testing.T) {
	repo := &fakeEventRepo{saveErr: errors.New("connection reset")}
	svc := NewTrackerService(repo)

	eventID, err := svc.Record(context.Background(), domain.AnalyticsEvent{
		EventType: domain.EventProductView,
		SessionID: "sess-1",
		ProductID: 9,
	})
	if err != nil {
		t.Fatalf("storage failure must not surface, got: %v", err)
	}
	if eventID != "" {
		t.Errorf("expected empty event id for a dropped event, got %q", eventID)
	}
}

func TestRecordValidatesAddToCartMetadata(t *testing.T) {
	svc := NewTrackerService(&fakeEventRepo{})

	cases := []struct {
		name     string
		metadata datatypes.JSONMap
		wantErr  bool
	}{
		{"valid", datatypes.JSONMap{"price": 19.99, "quantity": 2}, false},
		{"missing metadata", nil, true},
		{"zero quantity", datatypes.JSONMap{"price": 19.99, "quantity": 0}, true},
		{"negative price", datatypes.JSONMap{"price": -1.0, "quantity": 1}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Record(context.Background(), domain.AnalyticsEvent{
				EventType: domain.EventAddToCart,
				SessionID: "sess-1",
				ProductID: 9,
				Metadata:  tc.metadata,
			})
			if tc.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestRecordValidatesPurchaseMetadata(t *testing.T) {
	svc := NewTrackerService(&fakeEventRepo{})

	_, err := svc.Record(context.Background(), domain.AnalyticsEvent{
		EventType: domain.EventPurchase,
		SessionID: "sess-1",
		Metadata: datatypes.JSONMap{
			"order_id":     1,
			"total_amount": 59.98,
			"item_count":   0,
			"products":     []any{},
		},
	})
	if err == nil {
		t.Fatal("expected error for purchase without product lines")
	}

	_, err = svc.Record(context.Background(), domain.AnalyticsEvent{
		EventType: domain.EventPurchase,
		SessionID: "sess-1",
		Metadata: datatypes.JSONMap{
			"order_id":     1,
			"total_amount": 59.98,
			"item_count":   2,
			"products": []any{
				map[string]any{"product_id": 9, "variant_id": 901, "quantity": 2, "price": 29.99},
			},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error for valid purchase: %v", err)
	}
}
