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

type ApplicationHandler struct {
	svc services.ApplicationService
}

func NewApplicationHandler(svc services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

func (h *ApplicationHandler) SetupRoutes(app *fiber.App, guards middleware.Guards) {
	app.Post("/applications", guards.Auth, h.Create)
	app.Get("/applications/user", guards.Auth, h.ListByApplicant)
	app.Get("/applications/data/:id", guards.Auth, h.GetByID)
	app.Get("/applications/:issuerEmail", guards.Auth, guards.Moderator, h.ListByIssuer)
	app.Put("/applications/:id/status", guards.Auth, guards.Moderator, h.UpdateStatus)
	app.Put("/applications/:id/feedback", guards.Auth, guards.Moderator, h.UpdateFeedback)
	app.Put("/applications/:id", guards.Auth, guards.Moderator, h.UpdateFull)

	// guarded withdrawal vs the administrative override
	app.Delete("/applications/delete/:id", guards.Auth, guards.Admin, h.ForceDelete)
	app.Delete("/applications/:id", guards.Auth, h.DeleteIfPending)
}

func (h *ApplicationHandler) Create(ctx *fiber.Ctx) error {
	var requestBody dto.CreateApplicationRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	insertedID, err := h.svc.Create(requestBody)
	if err != nil {
		if errors.Is(err, domain.ErrMissingFields) {
			return utils.ResponseError(ctx, fiber.StatusBadRequest, "Missing required fields")
		}
		return utils.ResponseAppError(ctx, err, "")
	}
	return ctx.JSON(fiber.Map{"success": true, "insertedId": insertedID})
}

func (h *ApplicationHandler) ListByApplicant(ctx *fiber.Ctx) error {
	email := ctx.Query("email")
	result, err := h.svc.ListByApplicant(email)
	if err != nil {
		if errors.Is(err, domain.ErrMissingParameter) {
			return utils.ResponseError(ctx, fiber.StatusBadRequest, "email query parameter is required")
		}
		return utils.ResponseAppError(ctx, err, "")
	}
	return ctx.JSON(result)
}

func (h *ApplicationHandler) ListByIssuer(ctx *fiber.Ctx) error {
	result, err := h.svc.ListByIssuer(ctx.Params("issuerEmail"))
	if err != nil {
		return utils.ResponseAppError(ctx, err, "")
	}
	return ctx.JSON(result)
}

func (h *ApplicationHandler) GetByID(ctx *fiber.Ctx) error {
	result, err := h.svc.GetByID(ctx.Params("id"))
	if err != nil {
		return utils.ResponseAppError(ctx, err, "")
	}
	return ctx.JSON(result)
}

func (h *ApplicationHandler) UpdateStatus(ctx *fiber.Ctx) error {
	var requestBody dto.UpdateStatusRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	if err := h.svc.UpdateStatus(ctx.Params("id"), requestBody.Status); err != nil {
		if errors.Is(err, domain.ErrInvalidStatus) {
			return utils.ResponseError(ctx, fiber.StatusBadRequest, "Invalid status value")
		}
		return utils.ResponseAppError(ctx, err, "")
	}
	return ctx.JSON(fiber.Map{"success": true, "message": "Status updated successfully"})
}

func (h *ApplicationHandler) UpdateFeedback(ctx *fiber.Ctx) error {
	var requestBody dto.UpdateFeedbackRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	if err := h.svc.UpdateFeedback(ctx.Params("id"), requestBody.Feedback); err != nil {
		return utils.ResponseAppError(ctx, err, "")
	}
	return ctx.JSON(fiber.Map{"success": true, "message": "Feedback updated successfully"})
}

func (h *ApplicationHandler) UpdateFull(ctx *fiber.Ctx) error {
	patch := map[string]interface{}{}
	if err := ctx.BodyParser(&patch); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	if err := h.svc.UpdateFull(ctx.Params("id"), patch); err != nil {
		return utils.ResponseAppError(ctx, err, "")
	}
	return ctx.JSON(fiber.Map{"success": true, "message": "Updated successfully"})
}

func (h *ApplicationHandler) DeleteIfPending(ctx *fiber.Ctx) error {
	deleted, err := h.svc.DeleteIfPending(ctx.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidState) {
			return utils.ResponseError(ctx, fiber.StatusBadRequest, "Only pending applications can be deleted")
		}
		return utils.ResponseAppError(ctx, err, "")
	}
	return ctx.JSON(fiber.Map{"success": true, "deletedCount": deleted})
}

func (h *ApplicationHandler) ForceDelete(ctx *fiber.Ctx) error {
	deleted, err := h.svc.ForceDelete(ctx.Params("id"))
	if err != nil {
		return utils.ResponseAppError(ctx, err, "")
	}
	return ctx.JSON(fiber.Map{"success": true, "deletedCount": deleted})
}
