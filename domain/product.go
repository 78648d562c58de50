package domain

import (
	"time"
)

// CREATE TABLE public.products (
//     id                  BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     category_id         BIGINT,
//     name                TEXT NOT NULL,
//     slug                TEXT NOT NULL,
//     description         TEXT,
//     base_price          NUMERIC NOT NULL,
//     conservation_focus  TEXT,
//     featured            BOOLEAN DEFAULT FALSE,
//     created_at          TIMESTAMPTZ DEFAULT NOW()
// );

type Product struct {
	ID                uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID        uint64    `gorm:"column:category_id;default:0" json:"category_id"`
	Name              string    `gorm:"column:name;type:text;not null" json:"name"`
	Slug              string    `gorm:"column:slug;type:text;not null" json:"slug"`
	Description       string    `gorm:"column:description;type:text" json:"description"`
	BasePrice         float64   `gorm:"column:base_price;type:numeric" json:"base_price"`
	ConservationFocus string    `gorm:"column:conservation_focus;type:text" json:"conservation_focus"`
	Featured          bool      `gorm:"column:featured;default:false" json:"featured"`
	CreatedAt         time.Time `gorm:"column:created_at" json:"created_at"`

	Variants []ProductVariant `gorm:"foreignKey:ProductID" json:"variants,omitempty"`
}

func (Product) TableName() string {
	return "products"
}

// CREATE TABLE public.product_variants (
//     id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     product_id  BIGINT NOT NULL REFERENCES products(id),
//     sku         TEXT NOT NULL,
//     size        TEXT,
//     color       TEXT,
//     price       NUMERIC NOT NULL,
//     stock       INT NOT NULL DEFAULT 0
// );

type ProductVariant struct {
	ID        uint64  `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint64  `gorm:"column:product_id;not null" json:"product_id"`
	SKU       string  `gorm:"column:sku;type:text;not null" json:"sku"`
	Size      string  `gorm:"column:size;type:text" json:"size"`
	Color     string  `gorm:"column:color;type:text" json:"color"`
	Price     float64 `gorm:"column:price;type:numeric" json:"price"`
	Stock     int     `gorm:"column:stock;not null;default:0" json:"stock"`
}

func (ProductVariant) TableName() string {
	return "product_variants"
}
