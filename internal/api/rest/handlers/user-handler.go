package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"scholarstream/server/internal/api/rest/middleware"
	"scholarstream/server/internal/domain"
	"scholarstream/server/internal/dto"
	"scholarstream/server/internal/helper"
	"scholarstream/server/internal/helper/utils"
	"scholarstream/server/internal/services"
)

type UserHandler struct {
	svc  services.UserService
	auth helper.Auth
}

func NewUserHandler(svc services.UserService, auth helper.Auth) *UserHandler {
	return &UserHandler{svc: svc, auth: auth}
}

func (h *UserHandler) SetupRoutes(app *fiber.App, guards middleware.Guards) {
	// identity boundary
	app.Post("/jwt", h.IssueToken)
	app.Post("/logout", h.Logout)

	app.Post("/users", h.Create)
	app.Get("/users", guards.Auth, guards.Admin, h.List)
	app.Get("/users/:email", guards.Auth, h.GetByEmail)
	app.Put("/users/:userId/role", guards.Auth, guards.Admin, h.SetRole)
}

// IssueToken signs a short-lived token for an identity already
// verified upstream and sets it as an httpOnly cookie.
func (h *UserHandler) IssueToken(ctx *fiber.Ctx) error {
	var requestBody dto.TokenRequest
	if err := ctx.BodyParser(&requestBody); err != nil || requestBody.Email == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "email is required")
	}

	token, err := h.auth.GenerateToken(requestBody.Email)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusInternalServerError, "could not generate token")
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Expires:  time.Now().Add(1 * time.Hour),
	})

	return ctx.JSON(fiber.Map{"success": true})
}

func (h *UserHandler) Logout(ctx *fiber.Ctx) error {
	ctx.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    "",
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
	return ctx.JSON(fiber.Map{"success": true})
}

func (h *UserHandler) List(ctx *fiber.Ctx) error {
	users, err := h.svc.List()
	if err != nil {
		return utils.ResponseAppError(ctx, err, "")
	}
	return ctx.JSON(users)
}

func (h *UserHandler) GetByEmail(ctx *fiber.Ctx) error {
	user, err := h.svc.GetByEmail(ctx.Params("email"))
	if err != nil {
		return utils.ResponseAppError(ctx, err, "")
	}
	return ctx.JSON(user)
}

func (h *UserHandler) Create(ctx *fiber.Ctx) error {
	var requestBody dto.CreateUserRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	user, err := h.svc.Create(requestBody)
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return utils.ResponseError(ctx, fiber.StatusConflict, "User already exists")
		}
		return utils.ResponseAppError(ctx, err, "")
	}
	return ctx.JSON(fiber.Map{"success": true, "insertedId": user.ID})
}

func (h *UserHandler) SetRole(ctx *fiber.Ctx) error {
	var requestBody dto.SetRoleRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Invalid role value")
	}

	if err := h.svc.SetRole(ctx.Params("userId"), requestBody.Role); err != nil {
		return utils.ResponseAppError(ctx, err, "")
	}
	return ctx.JSON(fiber.Map{"success": true, "message": "Role updated successfully"})
}
