// file: internals/features/cylinders/entry/service/entry_service.go
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	billService "gasku_backend/internals/features/billing/bill/service"
	model "gasku_backend/internals/features/cylinders/entry/model"
)

/* =========================================================
   RECEIPT GUARD
   Pengembalian tidak boleh melebihi tabung yang masih beredar
   untuk kombinasi (customer, label, unit_price, date).
   ========================================================= */

// MaxReceivable menghitung sisa tabung yang masih bisa dikembalikan.
func MaxReceivable(tx *gorm.DB, adminID, customerID uuid.UUID, label string, unitPrice decimal.Decimal, date time.Time) (int, error) {
	type sumRow struct{ Total int64 }

	base := func(entryType string) *gorm.DB {
		return tx.Model(&model.CylinderEntry{}).
			Scopes(model.ScopeAlive).
			Where("cylinder_entry_admin_id = ?", adminID).
			Where("cylinder_entry_customer_id = ?", customerID).
			Where("cylinder_entry_label = ?", label).
			Where("cylinder_entry_unit_price = ?", unitPrice).
			Where("cylinder_entry_date = ?", date.Format("2006-01-02")).
			Where("cylinder_entry_type = ?", entryType)
	}

	var delivered, received sumRow
	if err := base(model.EntryTypeDelivered).
		Select("COALESCE(SUM(cylinder_entry_quantity), 0) AS total").
		Scan(&delivered).Error; err != nil {
		return 0, err
	}
	if err := base(model.EntryTypeReceived).
		Select("COALESCE(SUM(cylinder_entry_quantity), 0) AS total").
		Scan(&received).Error; err != nil {
		return 0, err
	}
	return int(delivered.Total - received.Total), nil
}

// OverReceiptError membangun pesan 400 yang menyebut jumlah yang dicoba dan maksimumnya.
func OverReceiptError(attempted, maxAllowed int) error {
	if maxAllowed < 0 {
		maxAllowed = 0
	}
	return fiber.NewError(
		fiber.StatusBadRequest,
		fmt.Sprintf("cannot receive %d cylinder(s): only %d delivered and still outstanding for this customer, label, price and date", attempted, maxAllowed),
	)
}

/* =========================================================
   MUTATIONS
   Create/Delete berjalan dalam satu transaksi dengan
   sinkronisasi bill bulan berjalan.
   ========================================================= */

func CreateEntry(db *gorm.DB, e *model.CylinderEntry) error {
	if e.CylinderEntryQuantity <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "cylinder_entry_quantity harus lebih dari 0")
	}
	if e.CylinderEntryUnitPrice.IsNegative() {
		return fiber.NewError(fiber.StatusBadRequest, "cylinder_entry_unit_price tidak boleh negatif")
	}
	if e.CylinderEntryType != model.EntryTypeDelivered && e.CylinderEntryType != model.EntryTypeReceived {
		return fiber.NewError(fiber.StatusBadRequest, "cylinder_entry_type harus DELIVERED atau RECEIVED")
	}

	e.CylinderEntryAmount = e.CylinderEntryUnitPrice.Mul(decimal.NewFromInt(int64(e.CylinderEntryQuantity)))

	return db.Transaction(func(tx *gorm.DB) error {
		if e.CylinderEntryType == model.EntryTypeReceived {
			maxAllowed, err := MaxReceivable(tx, e.CylinderEntryAdminID, e.CylinderEntryCustomerID, e.CylinderEntryLabel, e.CylinderEntryUnitPrice, e.CylinderEntryDate)
			if err != nil {
				return err
			}
			if e.CylinderEntryQuantity > maxAllowed {
				return OverReceiptError(e.CylinderEntryQuantity, maxAllowed)
			}
		}

		if err := tx.Create(e).Error; err != nil {
			return err
		}

		if e.CylinderEntryType == model.EntryTypeDelivered {
			return billService.SyncBill(tx, e.CylinderEntryAdminID, e.CylinderEntryCustomerID, billService.MonthOf(e.CylinderEntryDate))
		}
		return nil
	})
}

func DeleteEntry(db *gorm.DB, e *model.CylinderEntry) error {
	return db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("cylinder_entry_id = ?", e.CylinderEntryID).Delete(&model.CylinderEntry{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Entry tidak ditemukan")
		}
		if e.CylinderEntryType == model.EntryTypeDelivered {
			return billService.SyncBill(tx, e.CylinderEntryAdminID, e.CylinderEntryCustomerID, billService.MonthOf(e.CylinderEntryDate))
		}
		return nil
	})
}

// FindScoped memuat satu entry milik tenant.
func FindScoped(db *gorm.DB, adminID uuid.UUID, bypass bool, id uuid.UUID) (*model.CylinderEntry, error) {
	q := db.Scopes(model.ScopeAlive).Where("cylinder_entry_id = ?", id)
	if !bypass {
		q = q.Where("cylinder_entry_admin_id = ?", adminID)
	}
	var e model.CylinderEntry
	if err := q.First(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Entry tidak ditemukan")
		}
		return nil, err
	}
	return &e, nil
}
