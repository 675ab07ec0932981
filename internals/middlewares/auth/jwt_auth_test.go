// internals/middlewares/auth/jwt_auth_test.go
package auth

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const testSecret = "middleware-test-secret"

func signedAccessToken(t *testing.T) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id":  uuid.NewString(),
		"admin_id": uuid.NewString(),
		"role":     "admin",
		"typ":      "access",
		"exp":      time.Now().Add(10 * time.Minute).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return raw
}

func newTestApp(checker func(string) (bool, error)) *fiber.App {
	app := fiber.New()
	app.Use(AuthJWT(AuthJWTOpts{
		Secret:           testSecret,
		BlacklistChecker: checker,
	}))
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	return app
}

func doGet(t *testing.T, app *fiber.App, token string) int {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, "/ping", nil)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestAuthJWT(t *testing.T) {
	token := signedAccessToken(t)

	t.Run("valid token lolos", func(t *testing.T) {
		app := newTestApp(func(string) (bool, error) { return false, nil })
		if got := doGet(t, app, token); got != fiber.StatusOK {
			t.Fatalf("status = %d, want 200", got)
		}
	})

	t.Run("tanpa token", func(t *testing.T) {
		app := newTestApp(func(string) (bool, error) { return false, nil })
		if got := doGet(t, app, ""); got != fiber.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", got)
		}
	})

	t.Run("token di-blacklist", func(t *testing.T) {
		app := newTestApp(func(string) (bool, error) { return true, nil })
		if got := doGet(t, app, token); got != fiber.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", got)
		}
	})

	// Checker error tidak boleh meloloskan token yang mungkin sudah dicabut.
	t.Run("checker error menolak", func(t *testing.T) {
		app := newTestApp(func(string) (bool, error) { return false, errors.New("db down") })
		if got := doGet(t, app, token); got != fiber.StatusServiceUnavailable {
			t.Fatalf("status = %d, want 503", got)
		}
	})

	t.Run("refresh token ditolak sebagai access", func(t *testing.T) {
		claims := jwt.MapClaims{
			"user_id": uuid.NewString(),
			"typ":     "refresh",
			"exp":     time.Now().Add(10 * time.Minute).Unix(),
		}
		refresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		if err != nil {
			t.Fatalf("sign token: %v", err)
		}
		app := newTestApp(func(string) (bool, error) { return false, nil })
		if got := doGet(t, app, refresh); got != fiber.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", got)
		}
	})
}
