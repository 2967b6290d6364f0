package services

import (
	"log"

	"shisashop/internal/models"
	"shisashop/internal/payload"
	"shisashop/internal/repositories"
)

// BrandService handles business logic related to brands.
type BrandService struct {
	repo   repositories.BrandRepository
	events EventPublisher
}

// NewBrandService creates a new BrandService.
func NewBrandService(repo repositories.BrandRepository, events EventPublisher) *BrandService {
	return &BrandService{
		repo:   repo,
		events: events,
	}
}

// GetBrands lists brands sorted by name, optionally narrowed by a
// case-insensitive name search.
func (s *BrandService) GetBrands(search string) ([]models.Brand, error) {
	return s.repo.GetAll(search)
}

// GetBrandByID retrieves a single brand by its ID.
func (s *BrandService) GetBrandByID(id string) (*models.Brand, error) {
	return s.repo.GetByID(id)
}

// CreateBrand creates a new brand, deriving the slug from the name
// unless an explicit slug was supplied.
func (s *BrandService) CreateBrand(brand *models.Brand) error {
	source := brand.Slug
	if source == "" {
		source = brand.Name
	}
	brand.Slug = payload.Slugify(source)

	if err := s.repo.Create(brand); err != nil {
		return err
	}

	s.publish("catalog.brand.created", map[string]interface{}{
		"brand_id": brand.ID,
		"slug":     brand.Slug,
	})
	return nil
}

// UpdateBrand applies a sparse update touching only the supplied fields.
func (s *BrandService) UpdateBrand(id string, update payload.Update) (*models.Brand, error) {
	brand, err := s.repo.UpdateFields(id, update)
	if err != nil {
		return nil, err
	}

	s.publish("catalog.brand.updated", map[string]interface{}{
		"brand_id": brand.ID,
	})
	return brand, nil
}

// DeleteBrand deletes a brand by its ID. Products keep any dangling
// reference; it simply stops expanding.
func (s *BrandService) DeleteBrand(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.publish("catalog.brand.deleted", map[string]interface{}{
		"brand_id": id,
	})
	return nil
}

func (s *BrandService) publish(routingKey string, body map[string]interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}
