package handlers

import (
	"log"

	"shisashop/internal/models"
	"shisashop/internal/payload"
	"shisashop/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// FlavorHandler handles HTTP requests for flavors.
type FlavorHandler struct {
	service  *services.FlavorService
	validate *validator.Validate
}

// NewFlavorHandler creates a new FlavorHandler.
func NewFlavorHandler(service *services.FlavorService) *FlavorHandler {
	return &FlavorHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the flavor routes. Reads are public;
// mutations go through the auth middleware.
func (h *FlavorHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	flavorRoutes := router.Group("/flavors")
	flavorRoutes.Get("/", h.HandleGetFlavors)
	flavorRoutes.Get("/:id", h.HandleGetFlavorByID)
	flavorRoutes.Post("/", authRequired, h.HandleCreateFlavor)
	flavorRoutes.Put("/:id", authRequired, h.HandleUpdateFlavor)
	flavorRoutes.Delete("/:id", authRequired, h.HandleDeleteFlavor)
}

type flavorRequest struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
}

// HandleGetFlavors lists flavors sorted by name; ?search= narrows by a
// case-insensitive name match.
func (h *FlavorHandler) HandleGetFlavors(c *fiber.Ctx) error {
	flavors, err := h.service.GetFlavors(c.Query("search"))
	if err != nil {
		log.Printf("Error getting flavors: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve flavors",
			"error":   err.Error(),
		})
	}
	return c.JSON(flavors)
}

// HandleGetFlavorByID retrieves a single flavor by its ID.
func (h *FlavorHandler) HandleGetFlavorByID(c *fiber.Ctx) error {
	flavorID := c.Params("id")
	flavor, err := h.service.GetFlavorByID(flavorID)
	if err != nil {
		log.Printf("Error getting flavor by ID %s: %v", flavorID, err)
		return respondRepoError(c, "Flavor not found", "Could not retrieve flavor", err)
	}
	return c.JSON(flavor)
}

// HandleCreateFlavor creates a new flavor.
func (h *FlavorHandler) HandleCreateFlavor(c *fiber.Ctx) error {
	var req flavorRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create flavor request: %v", err)
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

	flavor := &models.Flavor{Name: *req.Name}
	if req.Slug != nil {
		flavor.Slug = *req.Slug
	}
	if req.Description != nil {
		flavor.Description = *req.Description
	}

	if err := h.validate.Struct(flavor); err != nil {
		return respondValidationErrors(c, err)
	}

	if err := h.service.CreateFlavor(flavor); err != nil {
		log.Printf("Error creating flavor: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create flavor",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(flavor)
}

// HandleUpdateFlavor applies a partial update.
func (h *FlavorHandler) HandleUpdateFlavor(c *fiber.Ctx) error {
	flavorID := c.Params("id")

	var req flavorRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing update flavor request: %v", err)
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

	flavor, err := h.service.UpdateFlavor(flavorID, update)
	if err != nil {
		log.Printf("Error updating flavor %s: %v", flavorID, err)
		return respondRepoError(c, "Flavor not found", "Could not update flavor", err)
	}
	return c.JSON(flavor)
}

// HandleDeleteFlavor deletes a flavor by its ID.
func (h *FlavorHandler) HandleDeleteFlavor(c *fiber.Ctx) error {
	flavorID := c.Params("id")
	if err := h.service.DeleteFlavor(flavorID); err != nil {
		log.Printf("Error deleting flavor %s: %v", flavorID, err)
		return respondRepoError(c, "Flavor not found", "Could not delete flavor", err)
	}
	return c.JSON(fiber.Map{
		"message": "Flavor deleted successfully",
	})
}
