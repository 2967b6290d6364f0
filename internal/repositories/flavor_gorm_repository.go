package repositories

import (
	"errors"
	"fmt"
	"strings"

	"shisashop/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMFlavorRepository is a GORM implementation of FlavorRepository.
type GORMFlavorRepository struct {
	db *gorm.DB
}

// NewGORMFlavorRepository creates a new instance of GORMFlavorRepository.
func NewGORMFlavorRepository(db *gorm.DB) *GORMFlavorRepository {
	return &GORMFlavorRepository{
		db: db,
	}
}

// GetAll retrieves flavors sorted by name, optionally narrowed by a
// case-insensitive name search.
func (r *GORMFlavorRepository) GetAll(search string) ([]models.Flavor, error) {
	q := r.db.Order("name ASC")
	if search = strings.TrimSpace(search); search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var flavors []models.Flavor
	if err := q.Find(&flavors).Error; err != nil {
		return nil, fmt.Errorf("failed to get flavors: %w", err)
	}
	return flavors, nil
}

// FindIDsByName resolves flavor ids whose name contains the query.
func (r *GORMFlavorRepository) FindIDsByName(query string) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.Flavor{}).
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to resolve flavor ids for %q: %w", query, err)
	}
	return ids, nil
}

// GetByID retrieves a single flavor by its ID.
func (r *GORMFlavorRepository) GetByID(id string) (*models.Flavor, error) {
	var flavor models.Flavor
	if err := r.db.First(&flavor, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("flavor %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get flavor by ID %s: %w", id, err)
	}
	return &flavor, nil
}

// Create creates a new flavor in the database.
func (r *GORMFlavorRepository) Create(flavor *models.Flavor) error {
	if flavor.ID == "" {
		flavor.ID = uuid.New().String()
	}
	if err := r.db.Create(flavor).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("flavor slug %q: %w", flavor.Slug, ErrDuplicate)
		}
		return fmt.Errorf("failed to create flavor: %w", err)
	}
	return nil
}

// UpdateFields applies a sparse update touching only the given columns.
func (r *GORMFlavorRepository) UpdateFields(id string, fields map[string]interface{}) (*models.Flavor, error) {
	if len(fields) > 0 {
		res := r.db.Model(&models.Flavor{}).Where("id = ?", id).Updates(fields)
		if res.Error != nil {
			if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
				return nil, fmt.Errorf("flavor %s: %w", id, ErrDuplicate)
			}
			return nil, fmt.Errorf("failed to update flavor %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, fmt.Errorf("flavor %s: %w", id, ErrNotFound)
		}
	}
	return r.GetByID(id)
}

// Delete deletes a flavor by its ID, leaving references dangling.
func (r *GORMFlavorRepository) Delete(id string) error {
	res := r.db.Delete(&models.Flavor{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete flavor %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("flavor %s: %w", id, ErrNotFound)
	}
	return nil
}
