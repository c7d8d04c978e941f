package handlers

import (
	"github.com/gofiber/fiber/v2"

	"scholarstream/server/internal/api/rest/middleware"
	"scholarstream/server/internal/services"
)

type AnalyticsHandler struct {
	svc services.AnalyticsService
}

func NewAnalyticsHandler(svc services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

func (h *AnalyticsHandler) SetupRoutes(app *fiber.App, guards middleware.Guards) {
	app.Get("/home/stats", h.HomeStats)
	app.Get("/analytics/stats", guards.Auth, guards.Moderator, h.DashboardStats)
}

func (h *AnalyticsHandler) HomeStats(ctx *fiber.Ctx) error {
	return ctx.JSON(h.svc.HomeStats())
}

func (h *AnalyticsHandler) DashboardStats(ctx *fiber.Ctx) error {
	return ctx.JSON(h.svc.DashboardStats())
}
