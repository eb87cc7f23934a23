package delivery

import (
	"context"
	"strconv"

	"memberhub/domain"

	"github.com/gofiber/fiber/v2"
)

type businessProfileHandler struct {
	uc     domain.BusinessProfileUseCase
	stager domain.AssetStager
}

func NewBusinessProfileHandler(app *fiber.App, uc domain.BusinessProfileUseCase, stager domain.AssetStager) {
	handler := &businessProfileHandler{
		uc:     uc,
		stager: stager,
	}

	route := app.Group("/member/:id/business")
	route.Post("/", handler.UpsertBusinessProfile)
	route.Get("/", handler.GetBusinessProfiles)
}

// UpsertBusinessProfile updates or creates the member's business profile.
// Multipart submissions may carry a profile image and gallery files.
func (bh *businessProfileHandler) UpsertBusinessProfile(c *fiber.Ctx) error {
	memberID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid member id",
		})
	}

	var input domain.BusinessProfileInput
	var assets *domain.ProfileAssets

	form, formErr := c.MultipartForm()
	if formErr == nil && form != nil {
		input = domain.BusinessProfileInput{
			CompanyName:  c.FormValue("company_name"),
			CompanyEmail: c.FormValue("company_email"),
			CompanyPhone: c.FormValue("company_phone"),
			Address:      c.FormValue("address"),
			Website:      c.FormValue("website"),
			Description:  c.FormValue("description"),
		}

		assets, err = bh.stager.StageProfileSlot(form)
		if err != nil {
			return respondError(c, err)
		}
	} else {
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
				"message": "Invalid request body",
			})
		}
	}

	profile, err := bh.uc.UpsertByMember(context.Background(), memberID, &input, assets)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Business profile saved successfully",
		"data":    profile,
	})
}

func (bh *businessProfileHandler) GetBusinessProfiles(c *fiber.Ctx) error {
	memberID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid member id",
		})
	}

	profiles, err := bh.uc.GetByMember(context.Background(), memberID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    profiles,
	})
}
