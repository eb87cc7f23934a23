package delivery

import (
	"context"
	"strconv"

	"memberhub/domain"
	"memberhub/middleware"

	"github.com/gofiber/fiber/v2"
)

type notificationHandler struct {
	uc domain.NotificationUseCase
}

func NewNotificationHandler(app *fiber.App, uc domain.NotificationUseCase) {
	handler := &notificationHandler{
		uc: uc,
	}

	app.Get("/member/:id/notifications", middleware.AuthRequired, handler.GetNotifications)
	app.Put("/notification/read/:id", middleware.AuthRequired, handler.MarkRead)
}

func (nh *notificationHandler) GetNotifications(c *fiber.Ctx) error {
	memberID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid member id",
		})
	}

	notifications, err := nh.uc.GetByMember(context.Background(), memberID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    notifications,
	})
}

func (nh *notificationHandler) MarkRead(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid notification id",
		})
	}

	if err := nh.uc.MarkRead(context.Background(), id); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Notification marked as read",
	})
}
