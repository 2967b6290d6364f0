package models

import "gorm.io/gorm"

// Product represents a catalog product (device or liquid).
// Brand, Category and Flavors are stored as identifiers only; the full
// records are loaded on read via Preload when expansion is requested.
type Product struct {
	ID          string   `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string   `json:"name" validate:"required,min=2,max=150"`
	Slug        string   `json:"slug" gorm:"uniqueIndex;type:varchar(160)"`
	Description string   `json:"description" validate:"omitempty,max=2000"`
	Price       float64  `json:"price" validate:"gte=0"`
	Stock       int      `json:"stock" validate:"gte=0"`
	Images      []string `json:"images" gorm:"serializer:json;type:text"`

	BrandID    *string   `json:"brand_id,omitempty" gorm:"type:varchar(36);index"`
	Brand      *Brand    `json:"brand,omitempty" validate:"-"`
	CategoryID *string   `json:"category_id,omitempty" gorm:"type:varchar(36);index"`
	Category   *Category `json:"category,omitempty" validate:"-"`
	Flavors    []Flavor  `json:"flavors,omitempty" gorm:"many2many:product_flavors" validate:"-"`

	// Optional device/liquid attributes; nil means not applicable.
	NicotineLevel   *string `json:"nicotine_level,omitempty"`
	PuffCount       *int    `json:"puff_count,omitempty"`
	BatteryCapacity *string `json:"battery_capacity,omitempty"`
	LiquidCapacity  *string `json:"liquid_capacity,omitempty"`
	CoilType        *string `json:"coil_type,omitempty"`

	gorm.Model // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
