package domain

import "time"

// Orders are written by the checkout flow, which lives outside this service.
// The recommendation engine only ever reads them.

type Order struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"column:user_id;not null" json:"user_id"`
	Status    string    `gorm:"column:status;not null" json:"status"`
	Total     float64   `gorm:"column:total;type:numeric" json:"total"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	ID        uint64  `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint64  `gorm:"column:order_id;not null" json:"order_id"`
	VariantID uint64  `gorm:"column:variant_id;not null" json:"variant_id"`
	Quantity  int     `gorm:"column:quantity;not null" json:"quantity"`
	PriceEach float64 `gorm:"column:price_each;type:numeric" json:"price_each"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

// OrderLine is an order item joined up to its parent product, the shape the
// co-occurrence and trending strategies consume.
type OrderLine struct {
	OrderID   uint64 `json:"order_id"`
	ProductID uint64 `json:"product_id"`
	VariantID uint64 `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

// ProductPurchaseCount is an order-line aggregate grouped by variant and
// resolved up to the parent product.
type ProductPurchaseCount struct {
	ProductID uint64 `json:"product_id"`
	Count     int    `json:"count"`
}
