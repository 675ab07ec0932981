// file: internals/features/billing/payment/controller/payment_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	billModel "gasku_backend/internals/features/billing/bill/model"
	billService "gasku_backend/internals/features/billing/bill/service"
	"gasku_backend/internals/features/billing/payment/dto"
	"gasku_backend/internals/features/billing/payment/model"
	helper "gasku_backend/internals/helpers"
	helperAuth "gasku_backend/internals/helpers/auth"
)

type PaymentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

/* =========================================================
   CREATE /api/a/payments
   Append-only: pembayaran tercatat, status bill di-refresh dalam
   satu transaksi. Tidak ada update/delete payment.
   ========================================================= */

func (ctrl *PaymentController) Create(c *fiber.Ctx) error {
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

	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !req.PaymentAmount.IsPositive() {
		return helper.JsonError(c, fiber.StatusBadRequest, "payment_amount harus lebih dari 0")
	}

	payment := req.ToModel(adminID)

	var bill billModel.Bill
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("bill_id = ? AND bill_admin_id = ? AND bill_deleted_at IS NULL", payment.PaymentBillID, adminID).
			First(&bill).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Bill tidak ditemukan")
			}
			return err
		}
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		return billService.RefreshStatus(tx, &bill)
	})
	if txErr != nil {
		if fe, ok := txErr.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.WritePGError(c, txErr)
	}

	return helper.JsonCreated(c, "Pembayaran berhasil dicatat", fiber.Map{
		"payment":     payment,
		"bill_status": bill.BillStatus,
	})
}

/* =========================================================
   LIST /api/a/payments?bill=<uuid>
   ========================================================= */

func (ctrl *PaymentController) List(c *fiber.Ctx) error {
	if err := helperAuth.RequireView(c, helperAuth.ModBilling); err != nil {
		return helper.FromFiberError(c, err)
	}

	q := ctrl.DB.Model(&model.Payment{})
	q, err := helperAuth.ScopeTenant(q, c, "payment_admin_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if billStr := c.Query("bill"); billStr != "" {
		billID, err := uuid.Parse(billStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Parameter bill harus UUID")
		}
		q = q.Where("payment_bill_id = ?", billID)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []model.Payment
	if err := q.
		Order("payment_paid_at DESC, payment_created_at DESC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "Daftar pembayaran", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
