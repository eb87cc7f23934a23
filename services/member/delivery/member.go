package delivery

import (
	"context"
	"strconv"

	"memberhub/domain"

	"github.com/gofiber/fiber/v2"
	qrcode "github.com/skip2/go-qrcode"
)

type memberHandler struct {
	uc     domain.MemberUseCase
	stager domain.AssetStager
}

func NewMemberHandler(app *fiber.App, uc domain.MemberUseCase, stager domain.AssetStager) {
	handler := &memberHandler{
		uc:     uc,
		stager: stager,
	}

	route := app.Group("/member")
	route.Post("/register", handler.RegisterMember)
	route.Get("/get/:id", handler.GetMemberDetail)
	route.Put("/modify/:id", handler.ModifyMember)
	route.Delete("/rm/:id", handler.DeleteMember)
	route.Get("/card/:id", handler.MemberCard)
}

// RegisterMember accepts the compound registration form. Multipart
// submissions stage their files first; orchestration only starts once
// staging has fully completed.
func (mh *memberHandler) RegisterMember(c *fiber.Ctx) error {
	var req domain.RegisterRequest
	var assets *domain.StagedAssets

	form, err := c.MultipartForm()
	if err == nil && form != nil {
		req = domain.RegisterRequest{
			Name:          c.FormValue("name"),
			Email:         c.FormValue("email"),
			Password:      c.FormValue("password"),
			Telephone:     c.FormValue("telephone"),
			Address:       c.FormValue("address"),
			About:         c.FormValue("about"),
			MaritalStatus: c.FormValue("marital_status"),
			ReferralCode:  c.FormValue("referral_code"),
			ReferralName:  c.FormValue("referral_name"),
		}
		if v := c.FormValue("business_profiles"); v != "" {
			req.BusinessProfiles = v
		}
		if v := c.FormValue("family_details"); v != "" {
			req.FamilyDetails = v
		}

		assets, err = mh.stager.Stage(form)
		if err != nil {
			return respondError(c, err)
		}
	} else {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
				"message": "Invalid request body",
			})
		}
	}

	ctx := context.Background()
	res, err := mh.uc.Register(ctx, &req, assets)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Member registered successfully",
		"data":    res,
	})
}

func (mh *memberHandler) GetMemberDetail(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid member id",
		})
	}

	detail, err := mh.uc.GetMemberDetail(context.Background(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    detail,
	})
}

func (mh *memberHandler) ModifyMember(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid member id",
		})
	}

	var patch domain.MemberUpdate
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid request body",
		})
	}

	if err := mh.uc.UpdateMember(context.Background(), id, &patch); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Member updated successfully",
	})
}

func (mh *memberHandler) DeleteMember(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid member id",
		})
	}

	if err := mh.uc.DeleteMember(context.Background(), id); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Member deleted successfully",
	})
}

// MemberCard renders the member's application identifier as a QR image.
func (mh *memberHandler) MemberCard(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Invalid member id",
		})
	}

	detail, err := mh.uc.GetMemberDetail(context.Background(), id)
	if err != nil {
		return respondError(c, err)
	}

	png, err := qrcode.Encode(detail.Member.MemberNo, qrcode.Medium, 256)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"message": "Failed to render member card",
		})
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
