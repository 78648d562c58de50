package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Behavioral event types. Events are anonymized: the session id is an opaque
// token minted by the storefront and user_id is an optional account reference,
// never an email or name.
const (
	EventProductView = "PRODUCT_VIEW"
	EventAddToCart   = "ADD_TO_CART"
	EventPurchase    = "PURCHASE"
)

// CREATE TABLE public.analytics_events (
//     id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     event_id    TEXT NOT NULL,
//     event_type  TEXT NOT NULL,
//     session_id  TEXT NOT NULL,
//     user_id     BIGINT,
//     product_id  BIGINT,
//     variant_id  BIGINT,
//     metadata    JSONB,
//     created_at  TIMESTAMPTZ DEFAULT NOW()
// );
//
// Append-only: rows are never updated. Deletion happens only through the
// external retention job.

type AnalyticsEvent struct {
	ID        uint64            `gorm:"primaryKey;autoIncrement" json:"id"`
	EventID   string            `gorm:"column:event_id;not null" json:"event_id"`
	EventType string            `gorm:"column:event_type;not null" json:"event_type"`
	SessionID string            `gorm:"column:session_id;not null" json:"session_id"`
	UserID    uint              `gorm:"column:user_id;default:0" json:"user_id"`
	ProductID uint64            `gorm:"column:product_id;default:0" json:"product_id"`
	VariantID uint64            `gorm:"column:variant_id;default:0" json:"variant_id"`
	Metadata  datatypes.JSONMap `gorm:"column:metadata;type:jsonb" json:"metadata"`
	CreatedAt time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (AnalyticsEvent) TableName() string {
	return "analytics_events"
}

// Typed metadata per event kind, validated at ingestion before the row is
// written. Stored as jsonb.

type ViewMetadata struct {
	Price  float64 `json:"price"`
	Source string  `json:"source,omitempty"` // "search", "category", "recommendation", "direct"
}

type AddToCartMetadata struct {
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type PurchaseLine struct {
	ProductID uint64  `json:"product_id"`
	VariantID uint64  `json:"variant_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type PurchaseMetadata struct {
	OrderID     uint64         `json:"order_id"`
	TotalAmount float64        `json:"total_amount"`
	ItemCount   int            `json:"item_count"`
	Products    []PurchaseLine `json:"products"`
}

// BrowsingEntry is one step of a session's recent browsing sequence.
type BrowsingEntry struct {
	ProductID uint64    `json:"product_id"`
	EventType string    `json:"event_type"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductEventRow is the projection the signal aggregator works over:
// one row per event, scoped to a time window.
type ProductEventRow struct {
	ProductID uint64    `json:"product_id"`
	EventType string    `json:"event_type"`
	CreatedAt time.Time `json:"created_at"`
}
