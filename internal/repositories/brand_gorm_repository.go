package repositories

import (
	"errors"
	"fmt"
	"strings"

	"shisashop/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMBrandRepository is a GORM implementation of BrandRepository.
type GORMBrandRepository struct {
	db *gorm.DB
}

// NewGORMBrandRepository creates a new instance of GORMBrandRepository.
func NewGORMBrandRepository(db *gorm.DB) *GORMBrandRepository {
	return &GORMBrandRepository{
		db: db,
	}
}

// GetAll retrieves brands sorted by name, optionally narrowed by a
// case-insensitive name search.
func (r *GORMBrandRepository) GetAll(search string) ([]models.Brand, error) {
	q := r.db.Order("name ASC")
	if search = strings.TrimSpace(search); search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var brands []models.Brand
	if err := q.Find(&brands).Error; err != nil {
		return nil, fmt.Errorf("failed to get brands: %w", err)
	}
	return brands, nil
}

// FindIDsByName resolves brand ids whose name contains the query.
func (r *GORMBrandRepository) FindIDsByName(query string) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.Brand{}).
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query)+"%").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to resolve brand ids for %q: %w", query, err)
	}
	return ids, nil
}

// GetByID retrieves a single brand by its ID.
func (r *GORMBrandRepository) GetByID(id string) (*models.Brand, error) {
	var brand models.Brand
	if err := r.db.First(&brand, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("brand %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get brand by ID %s: %w", id, err)
	}
	return &brand, nil
}

// Create creates a new brand in the database.
func (r *GORMBrandRepository) Create(brand *models.Brand) error {
	if brand.ID == "" {
		brand.ID = uuid.New().String()
	}
	if err := r.db.Create(brand).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("brand slug %q: %w", brand.Slug, ErrDuplicate)
		}
		return fmt.Errorf("failed to create brand: %w", err)
	}
	return nil
}

// UpdateFields applies a sparse update touching only the given columns.
func (r *GORMBrandRepository) UpdateFields(id string, fields map[string]interface{}) (*models.Brand, error) {
	if len(fields) > 0 {
		res := r.db.Model(&models.Brand{}).Where("id = ?", id).Updates(fields)
		if res.Error != nil {
			if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
				return nil, fmt.Errorf("brand %s: %w", id, ErrDuplicate)
			}
			return nil, fmt.Errorf("failed to update brand %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, fmt.Errorf("brand %s: %w", id, ErrNotFound)
		}
	}
	return r.GetByID(id)
}

// Delete deletes a brand by its ID. References from products or
// categories are left dangling on purpose; reads simply stop expanding
// them.
func (r *GORMBrandRepository) Delete(id string) error {
	res := r.db.Delete(&models.Brand{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete brand %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("brand %s: %w", id, ErrNotFound)
	}
	return nil
}
