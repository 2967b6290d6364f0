package repositories

import "shisashop/internal/models"

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	// GetAll returns categories sorted by name with brand and flavor
	// links expanded.
	GetAll() ([]models.Category, error)
	GetByID(id string) (*models.Category, error)
	Create(category *models.Category) error
	// UpdateFields applies a sparse update. Non-nil brandIDs/flavorIDs
	// replace the corresponding link sets wholesale.
	UpdateFields(id string, fields map[string]interface{}, brandIDs, flavorIDs []string) (*models.Category, error)
	Delete(id string) error
}
