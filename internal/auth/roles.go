package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/fiskfix/workorder-service/pkg/util"
)

// RequireElevated ensures the resolved principal holds an elevated role.
// Must run behind AuthMiddleware.Handle; an unresolved principal is a
// programming error and is rejected the same way.
func RequireElevated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.User == nil || !principal.User.Role.Elevated() {
			return apperrors.NewForbidden("not authorized as an admin")
		}
		return c.Next()
	}
}
