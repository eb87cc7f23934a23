package delivery

import (
	"errors"

	"memberhub/domain"

	"github.com/gofiber/fiber/v2"
)

// respondError maps domain errors to HTTP responses. Validation-shaped
// failures are user-correctable 4xx; anything unexpected is a 500 with a
// generic message and the cause kept for diagnostics.
func respondError(c *fiber.Ctx, err error) error {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"kind":    "validation",
			"error":   vErr.Error(),
			"fields":  vErr.Fields,
			"message": "Validation failed",
		})
	}

	switch {
	case errors.Is(err, domain.ErrInvalidReferral):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"kind":    "validation",
			"error":   err.Error(),
			"message": "Invalid referral code",
		})
	case errors.Is(err, domain.ErrEmailTaken):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"kind":    "conflict",
			"error":   err.Error(),
			"message": "Email already exists",
		})
	case errors.Is(err, domain.ErrDuplicateMemberNo):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success": false,
			"kind":    "conflict",
			"error":   err.Error(),
			"message": "Could not allocate a member number, please retry",
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"kind":    "not_found",
			"error":   err.Error(),
			"message": "Record not found",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"kind":    "persistence",
			"error":   err.Error(),
			"message": "Internal Server Error",
		})
	}
}
