// file: internals/helpers/auth/permission.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* =========================
   Per-module permission levels
   ========================= */

const (
	PermNoAccess = "no-access"
	PermView     = "view"
	PermEdit     = "edit"
	PermHidden   = "hidden"
)

// Modul yang dikenal guard. Level disimpan di klaim "permissions"
// sebagai map module → level.
const (
	ModCustomers = "customers"
	ModCylinders = "cylinders"
	ModBilling   = "billing"
	ModExpenses  = "expenses"
	ModInventory = "inventory"
	ModReports   = "reports"
	ModTemplates = "templates"
	ModUsers     = "users"
)

// PermissionLevel membaca level efektif user aktif untuk sebuah modul.
// Owner/admin selalu edit; staff mengikuti klaim permissions.
func PermissionLevel(c *fiber.Ctx, module string) string {
	switch Role(c) {
	case RoleOwner, RoleAdmin:
		return PermEdit
	}

	perms, ok := c.Locals(LocPermissions).(map[string]any)
	if !ok {
		return PermNoAccess
	}
	lv, _ := perms[module].(string)
	lv = strings.ToLower(strings.TrimSpace(lv))
	switch lv {
	case PermView, PermEdit, PermHidden, PermNoAccess:
		return lv
	}
	return PermNoAccess
}

// RequireView: guard paling atas untuk semua endpoint baca.
// hidden diperlakukan sama dengan no-access untuk akses langsung.
func RequireView(c *fiber.Ctx, module string) error {
	switch PermissionLevel(c, module) {
	case PermView, PermEdit:
		return nil
	}
	return fiber.NewError(fiber.StatusForbidden, "Akses ditolak")
}

// RequireEdit: guard untuk semua endpoint tulis.
func RequireEdit(c *fiber.Ctx, module string) error {
	if PermissionLevel(c, module) == PermEdit {
		return nil
	}
	return fiber.NewError(fiber.StatusForbidden, "Akses ditolak")
}
