package models

import (
	"time"

	"github.com/NaveenSky123/manaraitubazaar/pkg/enums"
	"github.com/shopspring/decimal"
)

// Product is a catalogue entry. Price is rupees per 1000 base units for
// weighted units (per kg / per liter) and per count otherwise. MinQuantity
// and IncrementBy share the quantity granularity: grams/ml for weighted
// units, counts for discrete ones.
type Product struct {
	ID          string                `gorm:"column:id;primaryKey"`
	Name        string                `gorm:"column:name;not null"`
	NameTE      string                `gorm:"column:name_te;not null"`
	Price       decimal.Decimal       `gorm:"column:price;type:numeric(12,2);not null"`
	Unit        enums.Unit            `gorm:"column:unit;not null"`
	Category    enums.ProductCategory `gorm:"column:category;not null;index"`
	Image       string                `gorm:"column:image"`
	Available   bool                  `gorm:"column:available;not null;default:true"`
	MinQuantity int64                 `gorm:"column:min_quantity;not null"`
	IncrementBy int64                 `gorm:"column:increment_by;not null"`
	Position    int                   `gorm:"column:position;not null;default:0"`
	CreatedAt   time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}
