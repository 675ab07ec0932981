// file: internals/features/inventory/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	stockController "gasku_backend/internals/features/inventory/stock/controller"
)

func InventoryAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := &stockController.StockController{
		DB:        db,
		Validator: validator.New(),
	}

	r := admin.Group("/inventory")
	r.Get("/stock", ctrl.Stock)
	r.Post("/purchases", ctrl.CreatePurchase)
	r.Get("/purchases", ctrl.ListPurchases)
	r.Delete("/purchases/:id", ctrl.DeletePurchase)
}
