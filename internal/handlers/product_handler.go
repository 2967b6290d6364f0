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

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	uploads  storage.Uploader
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, uploads storage.Uploader) *ProductHandler {
	return &ProductHandler{
		service:  service,
		uploads:  uploads,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes. Reads are public;
// mutations go through the auth middleware.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", authRequired, h.HandleCreateProduct)
	productRoutes.Put("/:id", authRequired, h.HandleUpdateProduct)
	productRoutes.Delete("/:id", authRequired, h.HandleDeleteProduct)
}

// productRequest covers both create and update bodies. Every field is
// optional at the decoding level; nil means "absent from the request".
// List fields accept a native array, a JSON-encoded array string, or a
// comma-separated string.
type productRequest struct {
	Name        *string      `json:"name"`
	Slug        *string      `json:"slug"`
	Description *string      `json:"description"`
	Price       *float64     `json:"price"`
	Stock       *int         `json:"stock"`
	Images      payload.List `json:"images"`
	BrandID     *string      `json:"brand_id"`
	CategoryID  *string      `json:"category_id"`
	Flavors     payload.List `json:"flavors"`

	NicotineLevel   *string `json:"nicotine_level"`
	PuffCount       *int    `json:"puff_count"`
	BatteryCapacity *string `json:"battery_capacity"`
	LiquidCapacity  *string `json:"liquid_capacity"`
	CoilType        *string `json:"coil_type"`
}

// bindProductRequest decodes a JSON body or a multipart form into the
// request, storing any attached image files first and folding the
// resulting paths into req.Images.
func (h *ProductHandler) bindProductRequest(c *fiber.Ctx, req *productRequest) error {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return c.BodyParser(req)
	}

	req.Name = formString(form, "name")
	req.Slug = formString(form, "slug")
	req.Description = formString(form, "description")
	if req.Price, err = formFloat(form, "price"); err != nil {
		return err
	}
	if req.Stock, err = formInt(form, "stock"); err != nil {
		return err
	}
	req.Images = formList(form, "images")
	req.BrandID = formString(form, "brand_id")
	req.CategoryID = formString(form, "category_id")
	req.Flavors = formList(form, "flavors")
	req.NicotineLevel = formString(form, "nicotine_level")
	if req.PuffCount, err = formInt(form, "puff_count"); err != nil {
		return err
	}
	req.BatteryCapacity = formString(form, "battery_capacity")
	req.LiquidCapacity = formString(form, "liquid_capacity")
	req.CoilType = formString(form, "coil_type")

	for _, file := range form.File["images"] {
		path, err := h.uploads.Store(file)
		if err != nil {
			return err
		}
		req.Images = append(req.Images, path)
	}
	return nil
}

// HandleGetProducts lists products, newest first. A non-empty ?search=
// also matches products through brand and flavor names.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.SearchProducts(c.Query("search"))
	if err != nil {
		log.Printf("Error searching products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	productID := c.Params("id")
	product, err := h.service.GetProductByID(productID)
	if err != nil {
		log.Printf("Error getting product by ID %s: %v", productID, err)
		return respondRepoError(c, "Product not found", "Could not retrieve product", err)
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req productRequest
	if err := h.bindProductRequest(c, &req); err != nil {
		log.Printf("Error parsing create product request: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if req.Name == nil || *req.Name == "" || req.Price == nil || req.Stock == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Name, price, and stock are required",
		})
	}

	product := &models.Product{
		Name:            *req.Name,
		Price:           *req.Price,
		Stock:           *req.Stock,
		Images:          []string(req.Images),
		NicotineLevel:   req.NicotineLevel,
		PuffCount:       req.PuffCount,
		BatteryCapacity: req.BatteryCapacity,
		LiquidCapacity:  req.LiquidCapacity,
		CoilType:        req.CoilType,
	}
	if req.Slug != nil {
		product.Slug = *req.Slug
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.BrandID != nil && *req.BrandID != "" {
		product.BrandID = req.BrandID
	}
	if req.CategoryID != nil && *req.CategoryID != "" {
		product.CategoryID = req.CategoryID
	}
	for _, id := range req.Flavors {
		product.Flavors = append(product.Flavors, models.Flavor{ID: id})
	}

	if err := h.validate.Struct(product); err != nil {
		return respondValidationErrors(c, err)
	}

	if err := h.service.CreateProduct(product); err != nil {
		log.Printf("Error creating product: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create product",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct applies a partial update: only the fields present
// in the request change. Empty image/flavor lists are a no-op, never a
// clear.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	productID := c.Params("id")

	var req productRequest
	if err := h.bindProductRequest(c, &req); err != nil {
		log.Printf("Error parsing update product request: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	update := payload.NewUpdate()
	payload.Set(update, "name", req.Name)
	payload.Set(update, "description", req.Description)
	payload.Set(update, "price", req.Price)
	payload.Set(update, "stock", req.Stock)
	payload.Set(update, "brand_id", req.BrandID)
	payload.Set(update, "category_id", req.CategoryID)
	payload.Set(update, "nicotine_level", req.NicotineLevel)
	payload.Set(update, "puff_count", req.PuffCount)
	payload.Set(update, "battery_capacity", req.BatteryCapacity)
	payload.Set(update, "liquid_capacity", req.LiquidCapacity)
	payload.Set(update, "coil_type", req.CoilType)
	payload.SetList(update, "images", req.Images)
	if err := payload.SetSlug(update, req.Slug, req.Name); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid slug update",
			"error":   err.Error(),
		})
	}

	var flavorIDs []string
	if req.Flavors.Present() {
		flavorIDs = []string(req.Flavors)
	}

	product, err := h.service.UpdateProduct(productID, update, flavorIDs)
	if err != nil {
		log.Printf("Error updating product %s: %v", productID, err)
		return respondRepoError(c, "Product not found", "Could not update product", err)
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product by its ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	productID := c.Params("id")
	if err := h.service.DeleteProduct(productID); err != nil {
		log.Printf("Error deleting product %s: %v", productID, err)
		return respondRepoError(c, "Product not found", "Could not delete product", err)
	}
	return c.JSON(fiber.Map{
		"message": "Product deleted successfully",
	})
}
