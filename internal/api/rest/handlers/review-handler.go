package handlers

import (
	"github.com/gofiber/fiber/v2"

	"scholarstream/server/internal/api/rest/middleware"
	"scholarstream/server/internal/dto"
	"scholarstream/server/internal/helper/utils"
	"scholarstream/server/internal/services"
)

type ReviewHandler struct {
	svc services.ReviewService
}

func NewReviewHandler(svc services.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

func (h *ReviewHandler) SetupRoutes(app *fiber.App, guards middleware.Guards) {
	app.Get("/reviews", h.List)
	app.Post("/reviews", guards.Auth, h.Create)
	app.Put("/reviews/:id", guards.Auth, h.Update)
	app.Delete("/reviews/:id", guards.Auth, h.Delete)
}

func (h *ReviewHandler) List(ctx *fiber.Ctx) error {
	filter := dto.ReviewFilter{
		ScholarshipID:  ctx.Query("scholarshipId"),
		AuthorEmail:    ctx.Query("userEmail"),
		ModeratorEmail: ctx.Query("postByEmail"),
	}

	result, err := h.svc.List(filter)
	if err != nil {
		return utils.ResponseAppError(ctx, err, "")
	}
	return ctx.JSON(result)
}

func (h *ReviewHandler) Create(ctx *fiber.Ctx) error {
	var requestBody dto.CreateReviewRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	insertedID, err := h.svc.Create(requestBody)
	if err != nil {
		return utils.ResponseAppError(ctx, err, "")
	}
	return ctx.JSON(fiber.Map{"success": true, "insertedId": insertedID})
}

func (h *ReviewHandler) Update(ctx *fiber.Ctx) error {
	var requestBody dto.UpdateReviewRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	if err := h.svc.Update(ctx.Params("id"), requestBody); err != nil {
		return utils.ResponseAppError(ctx, err, "")
	}
	return ctx.JSON(fiber.Map{"success": true, "message": "Review updated successfully"})
}

func (h *ReviewHandler) Delete(ctx *fiber.Ctx) error {
	deleted, err := h.svc.Delete(ctx.Params("id"))
	if err != nil {
		return utils.ResponseAppError(ctx, err, "")
	}
	return ctx.JSON(fiber.Map{"success": true, "deletedCount": deleted})
}
