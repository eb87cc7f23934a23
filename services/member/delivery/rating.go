package delivery

import (
	"context"
	"strconv"

	"memberhub/domain"
	"memberhub/middleware"

	"github.com/gofiber/fiber/v2"
)

type ratingHandler struct {
	uc domain.RatingUseCase
}

func NewRatingHandler(app *fiber.App, uc domain.RatingUseCase) {
	handler := &ratingHandler{
		uc: uc,
	}

	route := app.Group("/business/:id")
	route.Post("/rating", middleware.AuthRequired, handler.RateBusiness)
	route.Get("/ratings", handler.GetRatings)
}

func (rh *ratingHandler) RateBusiness(c *fiber.Ctx) error {
	businessID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid business profile id",
		})
	}

	memberID, ok := c.Locals("member_id").(int)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"message": "Invalid token claims",
		})
	}

	var rating domain.Rating
	if err := c.BodyParser(&rating); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	rating.BusinessProfileID = businessID
	rating.MemberID = memberID

	if err := rh.uc.RateBusiness(context.Background(), &rating); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Rating saved successfully",
		"data":    rating,
	})
}

func (rh *ratingHandler) GetRatings(c *fiber.Ctx) error {
	businessID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid business profile id",
		})
	}

	ratings, err := rh.uc.GetByBusiness(context.Background(), businessID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    ratings,
	})
}
