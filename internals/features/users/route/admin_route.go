// file: internals/features/users/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "gasku_backend/internals/features/users/user/controller"
)

// UserAdminRoutes: profil sendiri + manajemen staff per tenant.
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := &userController.UserController{
		DB:        db,
		Validator: validator.New(),
	}

	r := admin.Group("/users")
	r.Get("/me", ctrl.Me)
	r.Post("/staff", ctrl.CreateStaff)
	r.Get("/staff", ctrl.ListStaff)
	r.Put("/staff/:id/permissions", ctrl.UpdatePermissions)
	r.Patch("/staff/:id/active", ctrl.SetActive)
}
