package handlers

import (
	"log"

	"shisashop/internal/models"
	"shisashop/internal/payload"
	"shisashop/internal/services"
	"shisashop/pkg/storage"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// BrandHandler handles HTTP requests for brands.
type BrandHandler struct {
	service  *services.BrandService
	uploads  storage.Uploader
	validate *validator.Validate
}

// NewBrandHandler creates a new BrandHandler.
func NewBrandHandler(service *services.BrandService, uploads storage.Uploader) *BrandHandler {
	return &BrandHandler{
		service:  service,
		uploads:  uploads,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the brand routes. Reads are public;
// mutations go through the auth middleware.
func (h *BrandHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	brandRoutes := router.Group("/brands")
	brandRoutes.Get("/", h.HandleGetBrands)
	brandRoutes.Get("/:id", h.HandleGetBrandByID)
	brandRoutes.Post("/", authRequired, h.HandleCreateBrand)
	brandRoutes.Put("/:id", authRequired, h.HandleUpdateBrand)
	brandRoutes.Delete("/:id", authRequired, h.HandleDeleteBrand)
}

type brandRequest struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Logo        *string `json:"logo"`
	Description *string `json:"description"`
}

// bindBrandRequest decodes a JSON body or multipart form. An attached
// logo file is stored first and its path wins over a logo field value,
// matching the upload-or-URL behavior of the storefront clients.
func (h *BrandHandler) bindBrandRequest(c *fiber.Ctx, req *brandRequest) error {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return c.BodyParser(req)
	}

	req.Name = formString(form, "name")
	req.Slug = formString(form, "slug")
	req.Logo = formString(form, "logo")
	req.Description = formString(form, "description")

	if files := form.File["logo"]; len(files) > 0 {
		path, err := h.uploads.Store(files[0])
		if err != nil {
			return err
		}
		req.Logo = &path
	}
	return nil
}

// HandleGetBrands lists brands sorted by name; ?search= narrows by a
// case-insensitive name match.
func (h *BrandHandler) HandleGetBrands(c *fiber.Ctx) error {
	brands, err := h.service.GetBrands(c.Query("search"))
	if err != nil {
		log.Printf("Error getting brands: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve brands",
			"error":   err.Error(),
		})
	}
	return c.JSON(brands)
}

// HandleGetBrandByID retrieves a single brand by its ID.
func (h *BrandHandler) HandleGetBrandByID(c *fiber.Ctx) error {
	brandID := c.Params("id")
	brand, err := h.service.GetBrandByID(brandID)
	if err != nil {
		log.Printf("Error getting brand by ID %s: %v", brandID, err)
		return respondRepoError(c, "Brand not found", "Could not retrieve brand", err)
	}
	return c.JSON(brand)
}

// HandleCreateBrand creates a new brand.
func (h *BrandHandler) HandleCreateBrand(c *fiber.Ctx) error {
	var req brandRequest
	if err := h.bindBrandRequest(c, &req); err != nil {
		log.Printf("Error parsing create brand request: %v", err)
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

	brand := &models.Brand{Name: *req.Name}
	if req.Slug != nil {
		brand.Slug = *req.Slug
	}
	if req.Logo != nil {
		brand.Logo = *req.Logo
	}
	if req.Description != nil {
		brand.Description = *req.Description
	}

	if err := h.validate.Struct(brand); err != nil {
		return respondValidationErrors(c, err)
	}

	if err := h.service.CreateBrand(brand); err != nil {
		log.Printf("Error creating brand: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create brand",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(brand)
}

// HandleUpdateBrand applies a partial update: only the fields present in
// the request change.
func (h *BrandHandler) HandleUpdateBrand(c *fiber.Ctx) error {
	brandID := c.Params("id")

	var req brandRequest
	if err := h.bindBrandRequest(c, &req); err != nil {
		log.Printf("Error parsing update brand request: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	update := payload.NewUpdate()
	payload.Set(update, "name", req.Name)
	payload.Set(update, "logo", req.Logo)
	payload.Set(update, "description", req.Description)
	if err := payload.SetSlug(update, req.Slug, req.Name); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid slug update",
			"error":   err.Error(),
		})
	}

	brand, err := h.service.UpdateBrand(brandID, update)
	if err != nil {
		log.Printf("Error updating brand %s: %v", brandID, err)
		return respondRepoError(c, "Brand not found", "Could not update brand", err)
	}
	return c.JSON(brand)
}

// HandleDeleteBrand deletes a brand by its ID.
func (h *BrandHandler) HandleDeleteBrand(c *fiber.Ctx) error {
	brandID := c.Params("id")
	if err := h.service.DeleteBrand(brandID); err != nil {
		log.Printf("Error deleting brand %s: %v", brandID, err)
		return respondRepoError(c, "Brand not found", "Could not delete brand", err)
	}
	return c.JSON(fiber.Map{
		"message": "Brand deleted successfully",
	})
}
