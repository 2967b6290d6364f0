package handlers

import (
	"log"

	"shisashop/internal/models"
	"shisashop/internal/payload"
	"shisashop/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	service  *services.CategoryService
	validate *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the category routes. Reads are public;
// mutations go through the auth middleware.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleGetCategories)
	categoryRoutes.Get("/:id", h.HandleGetCategoryByID)
	categoryRoutes.Post("/", authRequired, h.HandleCreateCategory)
	categoryRoutes.Put("/:id", authRequired, h.HandleUpdateCategory)
	categoryRoutes.Delete("/:id", authRequired, h.HandleDeleteCategory)
}

// categoryRequest accepts brand/flavor reference lists in any of the
// shapes payload.List understands.
type categoryRequest struct {
	Name        *string      `json:"name"`
	Slug        *string      `json:"slug"`
	Description *string      `json:"description"`
	Brands      payload.List `json:"brands"`
	Flavors     payload.List `json:"flavors"`
}

func (h *CategoryHandler) bindCategoryRequest(c *fiber.Ctx, req *categoryRequest) error {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return c.BodyParser(req)
	}

	req.Name = formString(form, "name")
	req.Slug = formString(form, "slug")
	req.Description = formString(form, "description")
	req.Brands = formList(form, "brands")
	req.Flavors = formList(form, "flavors")
	return nil
}

// HandleGetCategories lists categories sorted by name, with brand and
// flavor links expanded.
func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.GetCategories()
	if err != nil {
		log.Printf("Error getting categories: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve categories",
			"error":   err.Error(),
		})
	}
	return c.JSON(categories)
}

// HandleGetCategoryByID retrieves a single category with links expanded.
func (h *CategoryHandler) HandleGetCategoryByID(c *fiber.Ctx) error {
	categoryID := c.Params("id")
	category, err := h.service.GetCategoryByID(categoryID)
	if err != nil {
		log.Printf("Error getting category by ID %s: %v", categoryID, err)
		return respondRepoError(c, "Category not found", "Could not retrieve category", err)
	}
	return c.JSON(category)
}

// HandleCreateCategory creates a new category.
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var req categoryRequest
	if err := h.bindCategoryRequest(c, &req); err != nil {
		log.Printf("Error parsing create category request: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if req.Name == nil || *req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Name is required",
		})
	}

	category := &models.Category{Name: *req.Name}
	if req.Slug != nil {
		category.Slug = *req.Slug
	}
	if req.Description != nil {
		category.Description = *req.Description
	}
	for _, id := range req.Brands {
		category.Brands = append(category.Brands, models.Brand{ID: id})
	}
	for _, id := range req.Flavors {
		category.Flavors = append(category.Flavors, models.Flavor{ID: id})
	}

	if err := h.validate.Struct(category); err != nil {
		return respondValidationErrors(c, err)
	}

	if err := h.service.CreateCategory(category); err != nil {
		log.Printf("Error creating category: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create category",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// HandleUpdateCategory applies a partial update. Brand/flavor lists
// replace the stored links when non-empty and are a no-op when empty.
func (h *CategoryHandler) HandleUpdateCategory(c *fiber.Ctx) error {
	categoryID := c.Params("id")

	var req categoryRequest
	if err := h.bindCategoryRequest(c, &req); err != nil {
		log.Printf("Error parsing update category request: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	update := payload.NewUpdate()
	payload.Set(update, "name", req.Name)
	payload.Set(update, "description", req.Description)
	if err := payload.SetSlug(update, req.Slug, req.Name); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid slug update",
			"error":   err.Error(),
		})
	}

	var brandIDs, flavorIDs []string
	if req.Brands.Present() {
		brandIDs = []string(req.Brands)
	}
	if req.Flavors.Present() {
		flavorIDs = []string(req.Flavors)
	}

	category, err := h.service.UpdateCategory(categoryID, update, brandIDs, flavorIDs)
	if err != nil {
		log.Printf("Error updating category %s: %v", categoryID, err)
		return respondRepoError(c, "Category not found", "Could not update category", err)
	}
	return c.JSON(category)
}

// HandleDeleteCategory deletes a category by its ID.
func (h *CategoryHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	categoryID := c.Params("id")
	if err := h.service.DeleteCategory(categoryID); err != nil {
		log.Printf("Error deleting category %s: %v", categoryID, err)
		return respondRepoError(c, "Category not found", "Could not delete category", err)
	}
	return c.JSON(fiber.Map{
		"message": "Category deleted successfully",
	})
}
