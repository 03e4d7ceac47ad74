package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"internlink/app/model"
	"internlink/app/utils"
	"internlink/helper"
)

// JWT verifies the bearer token and stores the resolved identity in the
// request locals. Everything about the caller is derived here, once; the
// handlers only ever read model.AuthUser back out.
func JWT(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return helper.Error(c, fiber.StatusUnauthorized, "missing Authorization header")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return helper.Error(c, fiber.StatusUnauthorized, "invalid token format, expected: Bearer <token>")
		}

		claims, err := utils.ParseToken(parts[1], secret)
		if err != nil {
			return helper.Error(c, fiber.StatusUnauthorized, "invalid or expired token")
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			return helper.Error(c, fiber.StatusUnauthorized, "token carries a malformed user id")
		}
		role, err := model.ParseRole(claims.Role)
		if err != nil {
			return helper.Error(c, fiber.StatusUnauthorized, "token carries an unknown role")
		}

		c.Locals(helper.AuthUserKey, model.AuthUser{ID: userID, Role: role})
		return c.Next()
	}
}

// RequireRole gates a route on the caller's role. Must be mounted after JWT.
func RequireRole(roles ...model.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := helper.GetAuthUser(c)
		if err != nil {
			return helper.Error(c, fiber.StatusUnauthorized, "login required")
		}
		for _, r := range roles {
			if user.Role == r {
				return c.Next()
			}
		}
		return helper.Error(c, fiber.StatusForbidden, "this action is not available to your role")
	}
}
