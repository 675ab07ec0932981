// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gasku_backend/internals/configs"
	billingRoute "gasku_backend/internals/features/billing/route"
	customerRoute "gasku_backend/internals/features/customers/customer/route"
	cylinderRoute "gasku_backend/internals/features/cylinders/entry/route"
	expenseRoute "gasku_backend/internals/features/expenses/route"
	inventoryRoute "gasku_backend/internals/features/inventory/route"
	reportRoute "gasku_backend/internals/features/reports/route"
	templateRoute "gasku_backend/internals/features/templates/design/route"
	tokenService "gasku_backend/internals/features/users/token/service"
	userRoute "gasku_backend/internals/features/users/route"
	authMw "gasku_backend/internals/middlewares/auth"
)

// SetupRoutes merangkai seluruh route aplikasi:
//
//	/api/auth  → publik (register/login/refresh/reset), rate-limited
//	/api/a     → semua fitur bisnis, di belakang AuthJWT
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	api := app.Group("/api")

	// ===== PUBLIC =====
	userRoute.AuthPublicRoutes(api, db)

	// ===== PROTECTED =====
	admin := api.Group("/a", authMw.AuthJWT(authMw.AuthJWTOpts{
		Secret: configs.JWTSecret,
		BlacklistChecker: func(raw string) (bool, error) {
			return tokenService.IsBlacklisted(db, raw)
		},
		AllowCookieFallback: true,
	}))

	userRoute.AuthProtectedRoutes(admin, db)
	userRoute.UserAdminRoutes(admin, db)
	customerRoute.AdminCustomerRoutes(admin, db)
	cylinderRoute.CylinderAdminRoutes(admin, db)
	billingRoute.BillingAdminRoutes(admin, db)
	expenseRoute.ExpenseAdminRoutes(admin, db)
	inventoryRoute.InventoryAdminRoutes(admin, db)
	reportRoute.ReportAdminRoutes(admin, db)
	templateRoute.AdminDesignRoutes(admin, db)
}
