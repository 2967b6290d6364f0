package services

import (
	"shisashop/internal/models"
	"shisashop/internal/payload"
	"shisashop/internal/repositories"
)

// FlavorService handles business logic related to flavors. Flavors are
// plain taxonomy entries, so no events are published for them.
type FlavorService struct {
	repo repositories.FlavorRepository
}

// NewFlavorService creates a new FlavorService.
func NewFlavorService(repo repositories.FlavorRepository) *FlavorService {
	return &FlavorService{
		repo: repo,
	}
}

// GetFlavors lists flavors sorted by name, optionally narrowed by a
// case-insensitive name search.
func (s *FlavorService) GetFlavors(search string) ([]models.Flavor, error) {
	return s.repo.GetAll(search)
}

// GetFlavorByID retrieves a single flavor by its ID.
func (s *FlavorService) GetFlavorByID(id string) (*models.Flavor, error) {
	return s.repo.GetByID(id)
}

// CreateFlavor creates a new flavor, deriving the slug from the name
// unless an explicit slug was supplied.
func (s *FlavorService) CreateFlavor(flavor *models.Flavor) error {
	source := flavor.Slug
	if source == "" {
		source = flavor.Name
	}
	flavor.Slug = payload.Slugify(source)
	return s.repo.Create(flavor)
}

// UpdateFlavor applies a sparse update touching only the supplied fields.
func (s *FlavorService) UpdateFlavor(id string, update payload.Update) (*models.Flavor, error) {
	return s.repo.UpdateFields(id, update)
}

// DeleteFlavor deletes a flavor by its ID, leaving references dangling.
func (s *FlavorService) DeleteFlavor(id string) error {
	return s.repo.Delete(id)
}
