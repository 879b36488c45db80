package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"app/config"
	"app/models"
)

// Helper to create an app with a pre-local middleware that sets userRole
func makeAppWithRole(role string, check func(*fiber.Ctx) error) *fiber.App {
	app := fiber.New()

	// Insert a middleware to set role before the requirement middleware
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userRole", role)
		return c.Next()
	})

	app.Use(check)

	app.Get("/test", func(c *fiber.Ctx) error {
		return c.Status(200).SendString("ok")
	})

	return app
}

func TestMerchantRequired_AllowsMerchant(t *testing.T) {
	app := makeAppWithRole("merchant", MerchantRequired)
	req := httptest.NewRequest("GET", "/test", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app test error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200 for merchant role, got %d", resp.StatusCode)
	}
}

func TestMerchantRequired_DeniesNonMerchant(t *testing.T) {
	app := makeAppWithRole("staff", MerchantRequired)
	req := httptest.NewRequest("GET", "/test", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app test error: %v", err)
	}
	if resp.StatusCode != 403 {
		t.Fatalf("expected 403 for non-merchant role, got %d", resp.StatusCode)
	}
}

func makeJWTApp() *fiber.App {
	app := fiber.New()
	app.Use(JWTMiddleware)
	app.Get("/test", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("userID").(string))
	})
	return app
}

func TestJWTMiddleware_MissingHeader(t *testing.T) {
	app := makeJWTApp()
	req := httptest.NewRequest("GET", "/test", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app test error: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Fatalf("expected 401 without token, got %d", resp.StatusCode)
	}
}

func TestJWTMiddleware_ValidToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	claims := models.JwtClaims{
		UserID: "merchant-1",
		Role:   "merchant",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	app := makeJWTApp()
	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app test error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200 with valid token, got %d", resp.StatusCode)
	}
}

func TestJWTMiddleware_BadToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	app := makeJWTApp()
	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app test error: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Fatalf("expected 401 with bad token, got %d", resp.StatusCode)
	}
}
