// file: internals/features/billing/invoice/controller/invoice_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gasku_backend/internals/features/billing/invoice/model"
	invoiceService "gasku_backend/internals/features/billing/invoice/service"
	helper "gasku_backend/internals/helpers"
	helperAuth "gasku_backend/internals/helpers/auth"
)

type InvoiceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

type generateInvoiceRequest struct {
	InvoiceBillID uuid.UUID `json:"invoice_bill_id" validate:"required"`
}

/* =========================================================
   GENERATE /api/a/invoices
   1:1 dengan bill — regenerasi ditolak selama invoice lama ada.
   Nomor: INV-<YYYYMM bulan bill>-<urutan per tenant>.
   ========================================================= */

func (ctrl *InvoiceController) Generate(c *fiber.Ctx) error {
	if err := helperAuth.RequireEdit(c, helperAuth.ModBilling); err != nil {
		return helper.FromFiberError(c, err)
	}

	adminID, bypass, err := helperAuth.TenantScope(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if bypass {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tenant tidak dikenali")
	}

	var req generateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	invoice, err := invoiceService.Generate(ctrl.DB, adminID, req.InvoiceBillID)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Invoice berhasil dibuat", invoice)
}

func (ctrl *InvoiceController) List(c *fiber.Ctx) error {
	if err := helperAuth.RequireView(c, helperAuth.ModBilling); err != nil {
		return helper.FromFiberError(c, err)
	}

	q := ctrl.DB.Model(&model.Invoice{})
	q, err := helperAuth.ScopeTenant(q, c, "invoice_admin_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if billStr := c.Query("bill"); billStr != "" {
		billID, err := uuid.Parse(billStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Parameter bill harus UUID")
		}
		q = q.Where("invoice_bill_id = ?", billID)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []model.Invoice
	if err := q.
		Order("invoice_generated_at DESC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "Daftar invoice", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// Delete melepas nomor 1:1 supaya bill bisa dibuatkan invoice baru.
func (ctrl *InvoiceController) Delete(c *fiber.Ctx) error {
	if err := helperAuth.RequireEdit(c, helperAuth.ModBilling); err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID invoice tidak valid")
	}

	q := ctrl.DB.Where("invoice_id = ?", id)
	q, err = helperAuth.ScopeTenant(q, c, "invoice_admin_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := q.Delete(&model.Invoice{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Invoice tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Invoice berhasil dihapus", fiber.Map{"invoice_id": id})
}
