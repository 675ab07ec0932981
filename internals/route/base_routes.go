// file: internals/route/base_routes.go
package route

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "gasku_backend/internals/helpers"
)

var startedAt = time.Now()

// BaseRoutes: endpoint non-bisnis (health dengan ping DB, uptime).
func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/api/health", func(c *fiber.Ctx) error {
		dbStatus := "up"
		if sqlDB, err := db.DB(); err != nil {
			dbStatus = "down"
		} else if err := sqlDB.PingContext(c.UserContext()); err != nil {
			dbStatus = "down"
		}

		status := fiber.Map{
			"status":   "ok",
			"database": dbStatus,
			"uptime":   time.Since(startedAt).Round(time.Second).String(),
			"time":     time.Now().Format(time.RFC3339),
		}
		if dbStatus != "up" {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"success": false,
				"message": "Database tidak terjangkau",
				"data":    status,
			})
		}
		return helper.JsonOK(c, "Service sehat", status)
	})
}
