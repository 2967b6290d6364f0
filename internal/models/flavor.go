package models

import "gorm.io/gorm"

// Flavor is a taxonomy entry referenced by products and categories.
type Flavor struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Slug        string `json:"slug" gorm:"uniqueIndex;type:varchar(120)"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`
	gorm.Model
}
