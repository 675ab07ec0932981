// file: internals/features/expenses/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	expenseController "gasku_backend/internals/features/expenses/expense/controller"
)

func ExpenseAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := &expenseController.ExpenseController{
		DB:        db,
		Validator: validator.New(),
	}

	r := admin.Group("/expenses")
	r.Post("/", ctrl.Create)
	r.Get("/", ctrl.List)
	r.Get("/monthly/:month", ctrl.Monthly)
	r.Patch("/:id", ctrl.Patch)
	r.Delete("/:id", ctrl.Delete)
}
