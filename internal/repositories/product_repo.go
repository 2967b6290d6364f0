package repositories

import (
	"shisashop/internal/models"
)

// ProductFilter is the disjunctive search filter executed by Search.
// A zero filter matches every product. Otherwise a product matches when
// its own name contains Query (case-insensitive), OR its brand id is in
// BrandIDs, OR it links to any flavor id in FlavorIDs. The id sets are
// resolved by the caller before the filter reaches the repository.
type ProductFilter struct {
	Query     string
	BrandIDs  []string
	FlavorIDs []string
}

// Empty reports whether the filter matches all products.
func (f ProductFilter) Empty() bool {
	return f.Query == ""
}

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	// Search returns products matching the filter, newest first, with
	// brand, category and flavors expanded.
	Search(filter ProductFilter) ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	Create(product *models.Product) error
	// UpdateFields applies a sparse update touching only the given
	// columns. A non-nil flavorIDs replaces the flavor links wholesale.
	UpdateFields(id string, fields map[string]interface{}, flavorIDs []string) (*models.Product, error)
	Delete(id string) error
}
