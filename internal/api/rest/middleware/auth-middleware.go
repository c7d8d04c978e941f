package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"scholarstream/server/internal/helper"
	"scholarstream/server/internal/helper/utils"
	"scholarstream/server/internal/services"
)

// AuthRequired verifies the caller's token from the cookie or the
// Authorization header and stashes the identity in locals.
func AuthRequired(auth helper.Auth) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		// 1) try cookie first
		tokenStr := strings.TrimSpace(ctx.Cookies("token"))

		// 2) fallback to Authorization header
		if tokenStr == "" {
			tokenStr = strings.TrimSpace(ctx.Get("Authorization"))
		}

		user, err := auth.VerifyToken(tokenStr)
		if err != nil {
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, "Unauthorized")
		}

		ctx.Locals("email", user.Email)
		ctx.Locals("user", user)
		return ctx.Next()
	}
}

// RequireCapability runs the access policy before the handler body.
// Applied uniformly to every mutating or ownership-scoped route.
func RequireCapability(policy services.AccessService, cap services.Capability) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		email, _ := ctx.Locals("email").(string)
		if err := policy.Authorize(email, cap); err != nil {
			return utils.ResponseAppError(ctx, err, "")
		}
		return ctx.Next()
	}
}

// Guards bundles the route guards built once at startup.
type Guards struct {
	Auth      fiber.Handler // valid token required
	Moderator fiber.Handler // Moderator or Admin
	Admin     fiber.Handler // Admin only
}

func NewGuards(auth helper.Auth, policy services.AccessService) Guards {
	return Guards{
		Auth:      AuthRequired(auth),
		Moderator: RequireCapability(policy, services.CapabilityModeratorOrAdmin),
		Admin:     RequireCapability(policy, services.CapabilityAdminOnly),
	}
}
