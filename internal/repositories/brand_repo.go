package repositories

import "shisashop/internal/models"

// BrandRepository defines the interface for brand data access.
type BrandRepository interface {
	// GetAll returns brands sorted by name; a non-empty search narrows
	// to names containing it, case-insensitively.
	GetAll(search string) ([]models.Brand, error)
	// FindIDsByName resolves the ids of brands whose name contains the
	// query, for use in compound product filters.
	FindIDsByName(query string) ([]string, error)
	GetByID(id string) (*models.Brand, error)
	Create(brand *models.Brand) error
	UpdateFields(id string, fields map[string]interface{}) (*models.Brand, error)
	Delete(id string) error
}
