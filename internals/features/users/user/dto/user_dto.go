// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	helperAuth "gasku_backend/internals/helpers/auth"
)

/* =========================================================
   REQUEST: staff management
   ========================================================= */

type CreateStaffRequest struct {
	UserName     string `json:"user_name"     validate:"required,min=2,max=80"`
	UserEmail    string `json:"user_email"    validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required,min=8,max=72"`

	// module → no-access|view|edit|hidden
	UserPermissions map[string]string `json:"user_permissions"`
}

type UpdatePermissionsRequest struct {
	UserPermissions map[string]string `json:"user_permissions" validate:"required"`
}

type SetActiveRequest struct {
	UserIsActive *bool `json:"user_is_active" validate:"required"`
}

var knownModules = map[string]struct{}{
	helperAuth.ModCustomers: {},
	helperAuth.ModCylinders: {},
	helperAuth.ModBilling:   {},
	helperAuth.ModExpenses:  {},
	helperAuth.ModInventory: {},
	helperAuth.ModReports:   {},
	helperAuth.ModTemplates: {},
	helperAuth.ModUsers:     {},
}

var knownLevels = map[string]struct{}{
	helperAuth.PermNoAccess: {},
	helperAuth.PermView:     {},
	helperAuth.PermEdit:     {},
	helperAuth.PermHidden:   {},
}

// ValidatePermissions menolak nama modul/level yang tidak dikenal supaya
// typo tidak diam-diam jadi no-access.
func ValidatePermissions(perms map[string]string) error {
	for mod, level := range perms {
		if _, ok := knownModules[strings.ToLower(mod)]; !ok {
			return fiber.NewError(fiber.StatusBadRequest, "Modul tidak dikenal: "+mod)
		}
		if _, ok := knownLevels[strings.ToLower(level)]; !ok {
			return fiber.NewError(fiber.StatusBadRequest, "Level akses tidak dikenal: "+level)
		}
	}
	return nil
}
