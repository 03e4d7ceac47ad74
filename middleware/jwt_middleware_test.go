package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"internlink/app/model"
	"internlink/app/utils"
	"internlink/helper"
)

var testSecret = []byte("test-secret")

func protectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/employer-only", JWT(testSecret), RequireRole(model.RoleEmployer), func(c *fiber.Ctx) error {
		user, err := helper.GetAuthUser(c)
		if err != nil {
			return helper.Error(c, fiber.StatusUnauthorized, err.Error())
		}
		return c.SendString(user.ID.Hex())
	})
	return app
}

func request(t *testing.T, app *fiber.App, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/employer-only", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func TestJWTMiddleware(t *testing.T) {
	app := protectedApp()
	userID := primitive.NewObjectID()

	t.Run("missing header", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/employer-only", nil))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Errorf("expected 401, got %d", resp.StatusCode)
		}
	})

	t.Run("malformed token", func(t *testing.T) {
		resp := request(t, app, "not.a.token")
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Errorf("expected 401, got %d", resp.StatusCode)
		}
	})

	t.Run("wrong signing key", func(t *testing.T) {
		token, err := utils.GenerateToken(userID.Hex(), "employer", []byte("other-secret"), time.Hour)
		if err != nil {
			t.Fatalf("sign failed: %v", err)
		}
		resp := request(t, app, token)
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Errorf("expected 401, got %d", resp.StatusCode)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := utils.GenerateToken(userID.Hex(), "employer", testSecret, -time.Minute)
		if err != nil {
			t.Fatalf("sign failed: %v", err)
		}
		resp := request(t, app, token)
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Errorf("expected 401, got %d", resp.StatusCode)
		}
	})

	t.Run("unknown role claim", func(t *testing.T) {
		token, err := utils.GenerateToken(userID.Hex(), "superuser", testSecret, time.Hour)
		if err != nil {
			t.Fatalf("sign failed: %v", err)
		}
		resp := request(t, app, token)
		if resp.StatusCode != fiber.StatusUnauthorized {
			t.Errorf("expected 401, got %d", resp.StatusCode)
		}
	})

	t.Run("authenticated but wrong role", func(t *testing.T) {
		token, err := utils.GenerateToken(userID.Hex(), "student", testSecret, time.Hour)
		if err != nil {
			t.Fatalf("sign failed: %v", err)
		}
		resp := request(t, app, token)
		if resp.StatusCode != fiber.StatusForbidden {
			t.Errorf("expected 403, got %d", resp.StatusCode)
		}
	})

	t.Run("employer passes both gates", func(t *testing.T) {
		token, err := utils.GenerateToken(userID.Hex(), "employer", testSecret, time.Hour)
		if err != nil {
			t.Fatalf("sign failed: %v", err)
		}
		resp := request(t, app, token)
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
	})
}
