package repositories

import (
	"errors"
	"fmt"

	"shisashop/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{
		db: db,
	}
}

func (r *GORMCategoryRepository) expanded() *gorm.DB {
	return r.db.Preload("Brands").Preload("Flavors")
}

// GetAll retrieves categories sorted by name with links expanded.
func (r *GORMCategoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.expanded().Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

// GetByID retrieves a single category with links expanded.
func (r *GORMCategoryRepository) GetByID(id string) (*models.Category, error) {
	var category models.Category
	if err := r.expanded().First(&category, "categories.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("category %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get category by ID %s: %w", id, err)
	}
	return &category, nil
}

// Create creates a new category together with its link rows. The linked
// brand and flavor records themselves are never upserted here.
func (r *GORMCategoryRepository) Create(category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	if err := r.db.Omit("Brands.*", "Flavors.*").Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("category slug %q: %w", category.Slug, ErrDuplicate)
		}
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// UpdateFields applies a sparse update; non-nil id sets replace the
// brand/flavor links wholesale.
func (r *GORMCategoryRepository) UpdateFields(id string, fields map[string]interface{}, brandIDs, flavorIDs []string) (*models.Category, error) {
	if len(fields) > 0 {
		res := r.db.Model(&models.Category{}).Where("id = ?", id).Updates(fields)
		if res.Error != nil {
			if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
				return nil, fmt.Errorf("category %s: %w", id, ErrDuplicate)
			}
			return nil, fmt.Errorf("failed to update category %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, fmt.Errorf("category %s: %w", id, ErrNotFound)
		}
	}

	category, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	// Link sets are resolved to existing records so Replace never
	// upserts a phantom brand or flavor row for an unknown id.
	if brandIDs != nil {
		brands := make([]models.Brand, 0, len(brandIDs))
		if len(brandIDs) > 0 {
			if err := r.db.Where("id IN ?", brandIDs).Find(&brands).Error; err != nil {
				return nil, fmt.Errorf("failed to resolve brands for category %s: %w", id, err)
			}
		}
		if err := r.db.Model(category).Association("Brands").Replace(brands); err != nil {
			return nil, fmt.Errorf("failed to replace brands for category %s: %w", id, err)
		}
	}
	if flavorIDs != nil {
		flavors := make([]models.Flavor, 0, len(flavorIDs))
		if len(flavorIDs) > 0 {
			if err := r.db.Where("id IN ?", flavorIDs).Find(&flavors).Error; err != nil {
				return nil, fmt.Errorf("failed to resolve flavors for category %s: %w", id, err)
			}
		}
		if err := r.db.Model(category).Association("Flavors").Replace(flavors); err != nil {
			return nil, fmt.Errorf("failed to replace flavors for category %s: %w", id, err)
		}
	}
	if brandIDs != nil || flavorIDs != nil {
		return r.GetByID(id)
	}
	return category, nil
}

// Delete deletes a category by its ID, leaving product references to it
// dangling.
func (r *GORMCategoryRepository) Delete(id string) error {
	res := r.db.Delete(&models.Category{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete category %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("category %s: %w", id, ErrNotFound)
	}
	return nil
}
