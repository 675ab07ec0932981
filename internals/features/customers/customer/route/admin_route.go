// file: internals/features/customers/customer/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	customerController "gasku_backend/internals/features/customers/customer/controller"
)

func AdminCustomerRoutes(r fiber.Router, db *gorm.DB) {
	ctl := customerController.NewCustomerController(db)

	customers := r.Group("/customers")
	{
		customers.Post("/", ctl.Create)
		customers.Get("/", ctl.List)
		customers.Get("/:id", ctl.GetByID)
		customers.Patch("/:id", ctl.Patch)
		customers.Post("/:id/disable", ctl.Disable)
	}
}
