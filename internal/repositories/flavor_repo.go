package repositories

import "shisashop/internal/models"

// FlavorRepository defines the interface for flavor data access.
type FlavorRepository interface {
	GetAll(search string) ([]models.Flavor, error)
	// FindIDsByName resolves the ids of flavors whose name contains the
	// query, for use in compound product filters.
	FindIDsByName(query string) ([]string, error)
	GetByID(id string) (*models.Flavor, error)
	Create(flavor *models.Flavor) error
	UpdateFields(id string, fields map[string]interface{}) (*models.Flavor, error)
	Delete(id string) error
}
