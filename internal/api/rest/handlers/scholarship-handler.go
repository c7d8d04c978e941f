package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"scholarstream/server/internal/api/rest/middleware"
	"scholarstream/server/internal/domain"
	"scholarstream/server/internal/dto"
	"scholarstream/server/internal/helper/utils"
	"scholarstream/server/internal/services"
)

type ScholarshipHandler struct {
	svc services.ScholarshipService
}

func NewScholarshipHandler(svc services.ScholarshipService) *ScholarshipHandler {
	return &ScholarshipHandler{svc: svc}
}

func (h *ScholarshipHandler) SetupRoutes(app *fiber.App, guards middleware.Guards) {
	// static segments before the :ownerEmail param route
	app.Get("/scholarships/top", h.Featured)
	app.Get("/scholarships/recommended", h.Recommended)
	app.Get("/scholarships", h.List)
	app.Get("/scholarships/:ownerEmail", guards.Auth, h.ListByOwner)
	app.Post("/scholarships", guards.Auth, guards.Moderator, h.Create)
	app.Delete("/scholarships/delete/:id", guards.Auth, guards.Moderator, h.Delete)

	app.Get("/scholarship/data/:id", h.GetByID)
	app.Put("/scholarship/update/:id", guards.Auth, guards.Moderator, h.Update)
}

func (h *ScholarshipHandler) List(ctx *fiber.Ctx) error {
	query := dto.ScholarshipQuery{
		Search:   ctx.Query("search"),
		Category: ctx.Query("category"),
		SortBy:   ctx.Query("sortBy"),
		Order:    ctx.Query("order"),
		Page:     ctx.QueryInt("page", 1),
		Limit:    ctx.QueryInt("limit", 9),
	}

	result, err := h.svc.List(query)
	if err != nil {
		return utils.ResponseAppError(ctx, err, "")
	}
	return ctx.JSON(result)
}

func (h *ScholarshipHandler) ListByOwner(ctx *fiber.Ctx) error {
	result, err := h.svc.ListByOwner(ctx.Params("ownerEmail"))
	if err != nil {
		return utils.ResponseAppError(ctx, err, "")
	}
	return ctx.JSON(result)
}

func (h *ScholarshipHandler) Recommended(ctx *fiber.Ctx) error {
	result, err := h.svc.ListRecommended(ctx.Query("category"), ctx.Query("exclude"))
	if err != nil {
		return utils.ResponseAppError(ctx, err, "")
	}
	return ctx.JSON(result)
}

func (h *ScholarshipHandler) Featured(ctx *fiber.Ctx) error {
	result, err := h.svc.ListFeatured(ctx.QueryInt("limit", 6))
	if err != nil {
		return utils.ResponseAppError(ctx, err, "")
	}
	return ctx.JSON(result)
}

func (h *ScholarshipHandler) Create(ctx *fiber.Ctx) error {
	var requestBody dto.CreateScholarshipRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	insertedID, err := h.svc.Create(requestBody)
	if err != nil {
		return utils.ResponseAppError(ctx, err, "")
	}
	return ctx.JSON(fiber.Map{"success": true, "insertedId": insertedID})
}

func (h *ScholarshipHandler) GetByID(ctx *fiber.Ctx) error {
	result, err := h.svc.GetByID(ctx.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return utils.ResponseError(ctx, fiber.StatusNotFound, "No scholarship found")
		}
		return utils.ResponseAppError(ctx, err, "")
	}
	return ctx.JSON(result)
}

func (h *ScholarshipHandler) Update(ctx *fiber.Ctx) error {
	patch := map[string]interface{}{}
	if err := ctx.BodyParser(&patch); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	if err := h.svc.Update(ctx.Params("id"), patch); err != nil {
		return utils.ResponseAppError(ctx, err, "")
	}
	return ctx.JSON(fiber.Map{"success": true, "message": "Updated successfully"})
}

func (h *ScholarshipHandler) Delete(ctx *fiber.Ctx) error {
	deleted, err := h.svc.Delete(ctx.Params("id"))
	if err != nil {
		return utils.ResponseAppError(ctx, err, "")
	}
	return ctx.JSON(fiber.Map{"success": true, "deletedCount": deleted})
}
