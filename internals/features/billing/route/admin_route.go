// file: internals/features/billing/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	billController "gasku_backend/internals/features/billing/bill/controller"
	invoiceController "gasku_backend/internals/features/billing/invoice/controller"
	paymentController "gasku_backend/internals/features/billing/payment/controller"
)

// BillingAdminRoutes: bills (read-only), payments (append-only), invoices.
func BillingAdminRoutes(admin fiber.Router, db *gorm.DB) {
	v := validator.New()

	bills := &billController.BillController{DB: db, Validator: v}
	payments := &paymentController.PaymentController{DB: db, Validator: v}
	invoices := &invoiceController.InvoiceController{DB: db, Validator: v}

	b := admin.Group("/bills")
	b.Get("/", bills.List)
	b.Get("/:id", bills.GetByID)

	p := admin.Group("/payments")
	p.Post("/", payments.Create)
	p.Get("/", payments.List)

	i := admin.Group("/invoices")
	i.Post("/", invoices.Generate)
	i.Get("/", invoices.List)
	i.Delete("/:id", invoices.Delete)
}
