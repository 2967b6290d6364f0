package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"shisashop/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// expanded attaches the reference expansions every read carries.
func (r *GORMProductRepository) expanded() *gorm.DB {
	return r.db.Preload("Brand").Preload("Category").Preload("Flavors")
}

// Search retrieves products matching the filter, newest first.
func (r *GORMProductRepository) Search(filter ProductFilter) ([]models.Product, error) {
	q := r.expanded().Order("created_at DESC")

	if !filter.Empty() {
		pattern := "%" + strings.ToLower(filter.Query) + "%"
		// LOWER(...) LIKE behaves the same on postgres and sqlite,
		// unlike ILIKE.
		cond := r.db.Where("LOWER(products.name) LIKE ?", pattern)
		if len(filter.BrandIDs) > 0 {
			cond = cond.Or("products.brand_id IN ?", filter.BrandIDs)
		}
		if len(filter.FlavorIDs) > 0 {
			cond = cond.Or("products.id IN (?)",
				r.db.Table("product_flavors").Select("product_id").Where("flavor_id IN ?", filter.FlavorIDs))
		}
		q = q.Where(cond)
	}

	var products []models.Product
	if err := q.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product with its references expanded.
func (r *GORMProductRepository) GetByID(id string) (*models.Product, error) {
	var product models.Product
	if err := r.expanded().First(&product, "products.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	// Link rows for flavors are written, but the referenced brand,
	// category and flavor records themselves are never upserted here.
	if err := r.db.Omit("Brand", "Category", "Flavors.*").Create(product).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("product slug %q: %w", product.Slug, ErrDuplicate)
		}
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// UpdateFields applies a sparse update: only the supplied columns change.
// A non-nil flavorIDs replaces the product's flavor links wholesale.
func (r *GORMProductRepository) UpdateFields(id string, fields map[string]interface{}, flavorIDs []string) (*models.Product, error) {
	if len(fields) > 0 {
		// Updates with a map writes raw column values, so the JSON
		// serializer on Images never runs; encode the list here.
		if raw, ok := fields["images"]; ok {
			encoded, err := json.Marshal(raw)
			if err != nil {
				return nil, fmt.Errorf("failed to encode images for product %s: %w", id, err)
			}
			copied := make(map[string]interface{}, len(fields))
			for k, v := range fields {
				copied[k] = v
			}
			copied["images"] = string(encoded)
			fields = copied
		}
		res := r.db.Model(&models.Product{}).Where("id = ?", id).Updates(fields)
		if res.Error != nil {
			if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
				return nil, fmt.Errorf("product %s: %w", id, ErrDuplicate)
			}
			return nil, fmt.Errorf("failed to update product %s: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
		}
	}

	product, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	if flavorIDs != nil {
		// Resolve to existing records so Replace never upserts a
		// phantom flavor row for an unknown id.
		flavors := make([]models.Flavor, 0, len(flavorIDs))
		if len(flavorIDs) > 0 {
			if err := r.db.Where("id IN ?", flavorIDs).Find(&flavors).Error; err != nil {
				return nil, fmt.Errorf("failed to resolve flavors for product %s: %w", id, err)
			}
		}
		if err := r.db.Model(product).Association("Flavors").Replace(flavors); err != nil {
			return nil, fmt.Errorf("failed to replace flavors for product %s: %w", id, err)
		}
		return r.GetByID(id)
	}
	return product, nil
}

// Delete deletes a product by its ID from the database.
func (r *GORMProductRepository) Delete(id string) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	return nil
}
