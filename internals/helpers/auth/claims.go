// file: internals/helpers/auth/claims.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Locals keys & roles
   ========================= */

const (
	LocUserID      = "user_id"
	LocAdminID     = "admin_id"
	LocRole        = "role"
	LocUserName    = "user_name"
	LocPermissions = "permissions"
)

const (
	// RoleOwner adalah super-admin: bisa lintas tenant.
	RoleOwner = "owner"
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// HydrateLocalsFromClaims menyalin klaim JWT yang dipakai guard ke c.Locals.
// Dipanggil sekali oleh middleware AuthJWT.
func HydrateLocalsFromClaims(c *fiber.Ctx, claims jwt.MapClaims) {
	if v, ok := claims["user_id"].(string); ok && v != "" {
		c.Locals(LocUserID, v)
	}
	if v, ok := claims["admin_id"].(string); ok && v != "" {
		c.Locals(LocAdminID, v)
	}
	if v, ok := claims["role"].(string); ok && v != "" {
		c.Locals(LocRole, strings.ToLower(strings.TrimSpace(v)))
	}
	if v, ok := claims["user_name"].(string); ok && v != "" {
		c.Locals(LocUserName, v)
	}
	if v, ok := claims["permissions"]; ok {
		c.Locals(LocPermissions, v)
	}
}

/* =========================
   Identity resolvers
   ========================= */

func UserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(LocUserID).(string)
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user tidak dikenali")
	}
	return id, nil
}

func Role(c *fiber.Ctx) string {
	r, _ := c.Locals(LocRole).(string)
	return r
}

func IsOwner(c *fiber.Ctx) bool { return Role(c) == RoleOwner }
func IsAdmin(c *fiber.Ctx) bool { return Role(c) == RoleAdmin }

/* =========================
   Tenant scope
   ========================= */

// TenantScope mengembalikan admin_id milik user aktif. bypass=true hanya
// untuk owner (super-admin) yang boleh melihat lintas tenant.
func TenantScope(c *fiber.Ctx) (adminID uuid.UUID, bypass bool, err error) {
	if IsOwner(c) {
		return uuid.Nil, true, nil
	}
	raw, _ := c.Locals(LocAdminID).(string)
	id, perr := uuid.Parse(strings.TrimSpace(raw))
	if perr != nil || id == uuid.Nil {
		return uuid.Nil, false, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - tenant tidak dikenali")
	}
	return id, false, nil
}

// ScopeTenant menambahkan filter tenant ke query. column harus nama kolom
// admin_id pada tabel terkait (mis. "customer_admin_id"). Owner = tanpa filter.
func ScopeTenant(q *gorm.DB, c *fiber.Ctx, column string) (*gorm.DB, error) {
	adminID, bypass, err := TenantScope(c)
	if err != nil {
		return nil, err
	}
	if bypass {
		return q, nil
	}
	return q.Where(column+" = ?", adminID), nil
}
