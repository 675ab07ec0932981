// internals/middlewares/auth/jwt_auth.go
package auth

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	helperAuth "gasku_backend/internals/helpers/auth"
)

type AuthJWTOpts struct {
	Secret              string
	BlacklistChecker    func(rawToken string) (bool, error) // return true if blacklisted
	AllowCookieFallback bool                                // pakai cookie access_token jika tidak ada Bearer
}

func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret wajib diisi")
	}

	return func(c *fiber.Ctx) error {
		// 1) Ambil token: Authorization: Bearer xxx (atau cookie jika diizinkan)
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		// 2) Cek blacklist (opsional). Gagal cek = tolak, jangan
		// meloloskan token yang mungkin sudah dicabut.
		if o.BlacklistChecker != nil {
			black, err := o.BlacklistChecker(raw)
			if err != nil {
				log.Printf("[ERROR] cek blacklist token gagal: %v", err)
				return fiber.NewError(fiber.StatusServiceUnavailable, "Tidak dapat memverifikasi token")
			}
			if black {
				return fiber.NewError(fiber.StatusUnauthorized, "Token revoked")
			}
		}

		// 3) Parse + verifikasi algoritma
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}

		// refresh token tidak boleh dipakai sebagai access token
		if typ, _ := claims["typ"].(string); typ != "" && typ != "access" {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token type")
		}

		c.Locals("jwt_claims", claims)
		c.Locals("raw_token", raw)

		// === HYDRATE LOCALS YANG DIHARAPKAN HELPER ===
		helperAuth.HydrateLocalsFromClaims(c, claims)

		return c.Next()
	}
}
