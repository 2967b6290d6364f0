package handlers

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strconv"

	"shisashop/internal/payload"
	"shisashop/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// respondValidationErrors renders a 400 with a per-field error map.
func respondValidationErrors(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}

// respondRepoError maps a repository error to 404 or 500.
func respondRepoError(c *fiber.Ctx, notFoundMsg, failMsg string, err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": notFoundMsg,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": failMsg,
		"error":   err.Error(),
	})
}

// formString returns a pointer to the first value of a multipart form
// field, or nil when the field was absent. An empty value is present.
func formString(form *multipart.Form, key string) *string {
	vals, ok := form.Value[key]
	if !ok || len(vals) == 0 {
		return nil
	}
	return &vals[0]
}

// formFloat parses a numeric multipart form field; nil when absent.
func formFloat(form *multipart.Form, key string) (*float64, error) {
	v := formString(form, key)
	if v == nil {
		return nil, nil
	}
	f, err := strconv.ParseFloat(*v, 64)
	if err != nil {
		return nil, fmt.Errorf("field %q is not a number: %w", key, err)
	}
	return &f, nil
}

// formInt parses an integer multipart form field; nil when absent.
func formInt(form *multipart.Form, key string) (*int, error) {
	v := formString(form, key)
	if v == nil {
		return nil, nil
	}
	n, err := strconv.Atoi(*v)
	if err != nil {
		return nil, fmt.Errorf("field %q is not an integer: %w", key, err)
	}
	return &n, nil
}

// formList normalizes a multipart form field into a reference list.
// Multipart values are always strings, so JSON-array and comma-separated
// encodings both pass through payload.NormalizeList.
func formList(form *multipart.Form, key string) payload.List {
	v := formString(form, key)
	if v == nil {
		return nil
	}
	return payload.List(payload.NormalizeList(*v))
}
