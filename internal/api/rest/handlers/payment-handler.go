package handlers

import (
	"github.com/gofiber/fiber/v2"

	"scholarstream/server/internal/api/rest/middleware"
	"scholarstream/server/internal/clients/paygate"
	"scholarstream/server/internal/dto"
	"scholarstream/server/internal/helper/utils"
	"scholarstream/server/internal/services"
)

type PaymentHandler struct {
	svc     services.PaymentService
	gateway *paygate.Client
}

func NewPaymentHandler(svc services.PaymentService, gateway *paygate.Client) *PaymentHandler {
	return &PaymentHandler{svc: svc, gateway: gateway}
}

func (h *PaymentHandler) SetupRoutes(app *fiber.App, guards middleware.Guards) {
	app.Post("/payments", guards.Auth, h.Record)
	app.Get("/payments/user", guards.Auth, h.ListByEmail)
	app.Post("/create-payment-intent", guards.Auth, h.CreatePaymentIntent)
}

func (h *PaymentHandler) Record(ctx *fiber.Ctx) error {
	var requestBody dto.RecordPaymentRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	insertedID, err := h.svc.Record(requestBody)
	if err != nil {
		return utils.ResponseAppError(ctx, err, "")
	}
	return ctx.JSON(fiber.Map{"success": true, "insertedId": insertedID})
}

func (h *PaymentHandler) ListByEmail(ctx *fiber.Ctx) error {
	result, err := h.svc.ListByEmail(ctx.Query("email"))
	if err != nil {
		return utils.ResponseAppError(ctx, err, "")
	}
	return ctx.JSON(result)
}

// CreatePaymentIntent asks the external gateway for a client-side
// charge secret. Recording the completed payment is a separate call.
func (h *PaymentHandler) CreatePaymentIntent(ctx *fiber.Ctx) error {
	var requestBody dto.CreatePaymentIntentRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	fees, err := utils.CoerceFloat(requestBody.Fees)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "fees must be numeric")
	}

	secret, err := h.gateway.CreateIntent(fees, requestBody.Email)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return ctx.JSON(fiber.Map{"clientSecret": secret})
}
