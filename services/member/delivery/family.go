package delivery

import (
	"context"
	"strconv"

	"memberhub/domain"

	"github.com/gofiber/fiber/v2"
)

type familyRecordHandler struct {
	uc domain.FamilyRecordUseCase
}

func NewFamilyRecordHandler(app *fiber.App, uc domain.FamilyRecordUseCase) {
	handler := &familyRecordHandler{
		uc: uc,
	}

	route := app.Group("/member/:id/family")
	route.Post("/", handler.UpsertFamilyRecord)
	route.Get("/", handler.GetFamilyRecord)
}

func (fh *familyRecordHandler) UpsertFamilyRecord(c *fiber.Ctx) error {
	memberID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid member id",
		})
	}

	var input domain.FamilyInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	record, err := fh.uc.UpsertByMember(context.Background(), memberID, &input)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Family record saved successfully",
		"data":    record,
	})
}

func (fh *familyRecordHandler) GetFamilyRecord(c *fiber.Ctx) error {
	memberID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid member id",
		})
	}

	record, err := fh.uc.GetByMember(context.Background(), memberID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    record,
	})
}
