package services

import (
	"log"

	"shisashop/internal/models"
	"shisashop/internal/payload"
	"shisashop/internal/repositories"
)

// CategoryService handles business logic related to categories.
type CategoryService struct {
	repo   repositories.CategoryRepository
	events EventPublisher
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository, events EventPublisher) *CategoryService {
	return &CategoryService{
		repo:   repo,
		events: events,
	}
}

// GetCategories lists categories sorted by name with brand and flavor
// links expanded.
func (s *CategoryService) GetCategories() ([]models.Category, error) {
	return s.repo.GetAll()
}

// GetCategoryByID retrieves a single category with links expanded.
func (s *CategoryService) GetCategoryByID(id string) (*models.Category, error) {
	return s.repo.GetByID(id)
}

// CreateCategory creates a new category, deriving the slug from the name
// unless an explicit slug was supplied. The brand/flavor id lists have
// already been normalized by the handler.
func (s *CategoryService) CreateCategory(category *models.Category) error {
	source := category.Slug
	if source == "" {
		source = category.Name
	}
	category.Slug = payload.Slugify(source)

	if err := s.repo.Create(category); err != nil {
		return err
	}

	s.publish("catalog.category.created", map[string]interface{}{
		"category_id": category.ID,
		"slug":        category.Slug,
	})
	return nil
}

// UpdateCategory applies a sparse update; non-nil id sets replace the
// brand/flavor links wholesale.
func (s *CategoryService) UpdateCategory(id string, update payload.Update, brandIDs, flavorIDs []string) (*models.Category, error) {
	category, err := s.repo.UpdateFields(id, update, brandIDs, flavorIDs)
	if err != nil {
		return nil, err
	}

	s.publish("catalog.category.updated", map[string]interface{}{
		"category_id": category.ID,
	})
	return category, nil
}

// DeleteCategory deletes a category by its ID without cascading.
func (s *CategoryService) DeleteCategory(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.publish("catalog.category.deleted", map[string]interface{}{
		"category_id": id,
	})
	return nil
}

func (s *CategoryService) publish(routingKey string, body map[string]interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}
