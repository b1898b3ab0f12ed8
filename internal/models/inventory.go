package models

import (
	"time"
)

type InventoryItem struct {
	ID               uint              `json:"id" gorm:"primaryKey"`
	Name             string            `json:"name" gorm:"not null"`
	SKU              string            `json:"sku" gorm:"column:sku;not null"`
	Category         string            `json:"category" gorm:"index"` // Fresh, Frozen, Dry, Beverages, Dairy, Bakery
	Quantity         int               `json:"quantity"`
	Unit             string            `json:"unit"`
	Temperature      *float64          `json:"temperature,omitempty"`
	TemperatureRange *TemperatureRange `json:"temperature_range,omitempty" gorm:"serializer:json"`
	ExpiryDate       *time.Time        `json:"expiry_date,omitempty" gorm:"type:date"`
	LocationCode     string            `json:"location_code"`
	NeedsAttention   bool              `json:"needs_attention" gorm:"default:false"`
	CreatedAt        time.Time         `json:"-"`
	UpdatedAt        time.Time         `json:"-"`
}

// TemperatureRange is an inclusive range in degrees Celsius.
type TemperatureRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

const (
	CategoryFresh     = "Fresh"
	CategoryFrozen    = "Frozen"
	CategoryDry       = "Dry"
	CategoryBeverages = "Beverages"
	CategoryDairy     = "Dairy"
	CategoryBakery    = "Bakery"
)
