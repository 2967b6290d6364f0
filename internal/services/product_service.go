package services

import (
	"log"
	"strings"

	"shisashop/internal/models"
	"shisashop/internal/payload"
	"shisashop/internal/repositories"

	"golang.org/x/sync/errgroup"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo       repositories.ProductRepository
	brandRepo  repositories.BrandRepository
	flavorRepo repositories.FlavorRepository
	events     EventPublisher
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, brandRepo repositories.BrandRepository, flavorRepo repositories.FlavorRepository, events EventPublisher) *ProductService {
	return &ProductService{
		repo:       repo,
		brandRepo:  brandRepo,
		flavorRepo: flavorRepo,
		events:     events,
	}
}

// SearchProducts lists products matching the free-text query, newest
// first. An empty query matches everything. Otherwise the filter is a
// union of a direct name match and reference matches against brands and
// flavors whose name contains the query; the related-entity lookups are
// independent reads and run concurrently.
func (s *ProductService) SearchProducts(query string) ([]models.Product, error) {
	filter, err := s.buildFilter(query)
	if err != nil {
		return nil, err
	}
	return s.repo.Search(filter)
}

func (s *ProductService) buildFilter(query string) (repositories.ProductFilter, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return repositories.ProductFilter{}, nil
	}

	filter := repositories.ProductFilter{Query: query}

	var g errgroup.Group
	g.Go(func() error {
		ids, err := s.brandRepo.FindIDsByName(query)
		if err != nil {
			return err
		}
		filter.BrandIDs = ids
		return nil
	})
	g.Go(func() error {
		ids, err := s.flavorRepo.FindIDsByName(query)
		if err != nil {
			return err
		}
		filter.FlavorIDs = ids
		return nil
	})
	if err := g.Wait(); err != nil {
		return repositories.ProductFilter{}, err
	}
	return filter, nil
}

// GetProductByID retrieves a single product with references expanded.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new product, deriving the slug from the name
// unless an explicit slug was supplied.
func (s *ProductService) CreateProduct(product *models.Product) error {
	source := product.Slug
	if source == "" {
		source = product.Name
	}
	product.Slug = payload.Slugify(source)

	if err := s.repo.Create(product); err != nil {
		return err
	}

	s.publish("catalog.product.created", map[string]interface{}{
		"product_id": product.ID,
		"slug":       product.Slug,
	})
	return nil
}

// UpdateProduct applies a sparse update: only the fields present in the
// update document change, and a non-nil flavorIDs replaces the flavor
// links wholesale.
func (s *ProductService) UpdateProduct(id string, update payload.Update, flavorIDs []string) (*models.Product, error) {
	product, err := s.repo.UpdateFields(id, update, flavorIDs)
	if err != nil {
		return nil, err
	}

	s.publish("catalog.product.updated", map[string]interface{}{
		"product_id": product.ID,
		"fields":     len(update),
	})
	return product, nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.publish("catalog.product.deleted", map[string]interface{}{
		"product_id": id,
	})
	return nil
}

func (s *ProductService) publish(routingKey string, body map[string]interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}
