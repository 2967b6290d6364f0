package models

import "gorm.io/gorm"

// Brand represents a product brand.
type Brand struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Slug        string `json:"slug" gorm:"uniqueIndex;type:varchar(120)"`
	Logo        string `json:"logo,omitempty"`
	Description string `json:"description,omitempty" validate:"omitempty,max=1000"`
	gorm.Model
}
