package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"internlink/app/model"
)

// AuthUserKey is the locals key under which the JWT middleware stores the
// resolved caller identity.
const AuthUserKey = "authUser"

// GetAuthUser returns the request-scoped identity set by the JWT middleware.
func GetAuthUser(c *fiber.Ctx) (model.AuthUser, error) {
	u, ok := c.Locals(AuthUserKey).(model.AuthUser)
	if !ok || u.ID.IsZero() {
		return model.AuthUser{}, errors.New("caller identity missing from request context")
	}
	return u, nil
}
