package models

import "gorm.io/gorm"

// Category groups products and links to the brands and flavors sold
// under it. Both link sets store identifiers only and are expanded on
// read via Preload.
type Category struct {
	ID          string   `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string   `json:"name" validate:"required,min=2,max=100"`
	Slug        string   `json:"slug" gorm:"uniqueIndex;type:varchar(120)"`
	Description string   `json:"description,omitempty" validate:"omitempty,max=1000"`
	Brands      []Brand  `json:"brands,omitempty" gorm:"many2many:category_brands" validate:"-"`
	Flavors     []Flavor `json:"flavors,omitempty" gorm:"many2many:category_flavors" validate:"-"`
	gorm.Model
}
