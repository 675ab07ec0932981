// file: internals/features/reports/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	reportController "gasku_backend/internals/features/reports/report/controller"
)

func ReportAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := &reportController.ReportController{
		DB:        db,
		Validator: validator.New(),
	}

	r := admin.Group("/reports")
	r.Get("/dashboard", ctrl.Dashboard)
	r.Get("/monthly/:month", ctrl.Monthly)
	r.Get("/monthly/:month/pdf", ctrl.MonthlyPDF)
}
