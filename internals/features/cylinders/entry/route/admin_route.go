// file: internals/features/cylinders/entry/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	entryController "gasku_backend/internals/features/cylinders/entry/controller"
)

// CylinderAdminRoutes: entry tabung + render bill (PDF/HTML).
func CylinderAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := &entryController.CylinderEntryController{
		DB:        db,
		Validator: validator.New(),
	}

	r := admin.Group("/cylinders")
	r.Post("/", ctrl.Create)
	r.Get("/", ctrl.List)

	// route statis dulu supaya tidak tertelan "/:id"
	r.Get("/daily/:date", ctrl.Daily)
	r.Get("/daily/:date/bill", ctrl.DailyBillPDF)

	r.Get("/:id", ctrl.GetByID)
	r.Delete("/:id", ctrl.Delete)
	r.Get("/:id/bill", ctrl.EntryBillPDF)
	r.Get("/:id/bill/preview", ctrl.EntryBillPreview)
}
