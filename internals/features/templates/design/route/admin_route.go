// file: internals/features/templates/design/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	designController "gasku_backend/internals/features/templates/design/controller"
)

func AdminDesignRoutes(r fiber.Router, db *gorm.DB) {
	ctl := designController.NewDesignController(db)

	settings := r.Group("/settings")
	{
		settings.Get("/", ctl.GetSettings)
		settings.Patch("/", ctl.UpdateSettings)
	}

	// kind: bill | report
	designs := r.Group("/templates/:kind")
	{
		designs.Get("/design", ctl.GetDesign)
		designs.Put("/design", ctl.SaveDesign)
		designs.Post("/design/logo", ctl.UploadLogo)
	}
}
