// file: internals/features/billing/invoice/service/invoice_service.go
package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	billModel "gasku_backend/internals/features/billing/bill/model"
	"gasku_backend/internals/features/billing/invoice/model"
)

/* =========================================================
   Generate: 1:1 dengan bill — regenerasi ditolak selama
   invoice lama ada; hapus dulu untuk membuat ulang.
   ========================================================= */

func Generate(db *gorm.DB, adminID, billID uuid.UUID) (*model.Invoice, error) {
	var invoice model.Invoice
	txErr := db.Transaction(func(tx *gorm.DB) error {
		var bill billModel.Bill
		if err := tx.
			Where("bill_id = ? AND bill_admin_id = ? AND bill_deleted_at IS NULL", billID, adminID).
			First(&bill).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Bill tidak ditemukan")
			}
			return err
		}

		var existing int64
		if err := tx.Model(&model.Invoice{}).
			Where("invoice_bill_id = ?", bill.BillID).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return fiber.NewError(fiber.StatusConflict, "Bill sudah memiliki invoice; hapus dulu untuk membuat ulang")
		}

		// urutan = suffix tertinggi per tenant per bulan + 1; jumlah baris
		// tidak dipakai karena nomor yang sudah dihapus meninggalkan celah
		prefix := NumberPrefix(bill.BillMonth)
		var numbers []string
		if err := tx.Model(&model.Invoice{}).
			Where("invoice_admin_id = ?", adminID).
			Where("invoice_number LIKE ?", prefix+"-%").
			Pluck("invoice_number", &numbers).Error; err != nil {
			return err
		}

		invoice = model.Invoice{
			InvoiceAdminID: adminID,
			InvoiceBillID:  bill.BillID,
			InvoiceNumber:  NextNumber(bill.BillMonth, MaxSuffix(numbers)),
		}
		return tx.Create(&invoice).Error
	})
	if txErr != nil {
		return nil, txErr
	}
	return &invoice, nil
}
