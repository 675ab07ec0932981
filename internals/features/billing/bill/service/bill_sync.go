// file: internals/features/billing/bill/service/bill_sync.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	billModel "gasku_backend/internals/features/billing/bill/model"
	entryModel "gasku_backend/internals/features/cylinders/entry/model"
)

/* =========================================================
   Bill auto-sync.

   Dipanggil SETIAP create/delete entry DELIVERED, di dalam
   transaksi yang sama dengan mutasi entry-nya — recompute dan
   mutasi entry commit/rollback bersama, jadi dua request untuk
   pelanggan yang sama tidak bisa saling menimpa hasil hitung.
   ========================================================= */

// MonthOf memotong tanggal ke tanggal 1 bulan tersebut (UTC, date-only).
func MonthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

type entryAgg struct {
	Qty    int             `gorm:"column:qty"`
	Amount decimal.Decimal `gorm:"column:amount"`
}

// SyncBill merekompute rollup bill (count tabung + tagihan bulan berjalan)
// untuk satu (tenant, customer, bulan) dari entry DELIVERED yang tersisa,
// membawa saldo bulan sebelumnya, lalu upsert + refresh status.
func SyncBill(tx *gorm.DB, adminID, customerID uuid.UUID, month time.Time) error {
	month = MonthOf(month)
	nextMonth := month.AddDate(0, 1, 0)

	// agregasi entry DELIVERED bulan ini
	var agg entryAgg
	err := entryModel.ScopeAlive(tx).
		Select("COALESCE(SUM(cylinder_entry_quantity),0) AS qty, COALESCE(SUM(cylinder_entry_amount),0) AS amount").
		Where("cylinder_entry_admin_id = ? AND cylinder_entry_customer_id = ?", adminID, customerID).
		Where("cylinder_entry_type = ?", entryModel.EntryTypeDelivered).
		Where("cylinder_entry_date >= ? AND cylinder_entry_date < ?", month, nextMonth).
		Scan(&agg).Error
	if err != nil {
		return err
	}

	// saldo carry-forward dari bill bulan sebelumnya (raw, kredit ikut terbawa)
	carry, err := previousRemaining(tx, adminID, customerID, month)
	if err != nil {
		return err
	}

	// upsert bill bulan ini
	var bill billModel.Bill
	err = tx.Where(
		"bill_admin_id = ? AND bill_customer_id = ? AND bill_month = ?",
		adminID, customerID, month,
	).First(&bill).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		bill = billModel.Bill{
			BillAdminID:    adminID,
			BillCustomerID: customerID,
			BillMonth:      month,
		}
	case err != nil:
		return err
	}

	bill.BillCylinderCount = agg.Qty
	bill.BillCurrentMonthBill = agg.Amount
	bill.BillLastMonthRemaining = carry

	paid, err := PaymentsSum(tx, adminID, bill.BillID)
	if err != nil {
		return err
	}
	bill.BillStatus = StatusFor(bill.BillLastMonthRemaining.Add(bill.BillCurrentMonthBill), paid)

	return tx.Save(&bill).Error
}

// RefreshStatus menghitung ulang status sebuah bill dari ledger payments.
// Dipanggil setelah payment baru dicatat.
func RefreshStatus(tx *gorm.DB, bill *billModel.Bill) error {
	paid, err := PaymentsSum(tx, bill.BillAdminID, bill.BillID)
	if err != nil {
		return err
	}
	bill.BillStatus = StatusFor(bill.BillLastMonthRemaining.Add(bill.BillCurrentMonthBill), paid)
	return tx.Model(bill).Update("bill_status", bill.BillStatus).Error
}

// PaymentsSum: total pembayaran terhadap satu bill.
func PaymentsSum(tx *gorm.DB, adminID, billID uuid.UUID) (decimal.Decimal, error) {
	if billID == uuid.Nil {
		return decimal.Zero, nil
	}
	var sum decimal.Decimal
	err := tx.Table("payments").
		Select("COALESCE(SUM(payment_amount),0)").
		Where("payment_admin_id = ? AND payment_bill_id = ?", adminID, billID).
		Scan(&sum).Error
	return sum, err
}

// OutstandingRemaining: total sisa tagihan milik satu pelanggan, dipakai
// bill harian sebagai "remaining payment". Clamped ≥ 0.
// Hanya bill TERAKHIR (bulan tertinggi) yang dihitung: setiap bill sudah
// membawa sisa bulan sebelumnya di bill_last_month_remaining, jadi
// menjumlahkan semua bulan akan menghitung carry yang sama dua kali.
func OutstandingRemaining(tx *gorm.DB, adminID, customerID uuid.UUID) (decimal.Decimal, error) {
	var head billModel.Bill
	err := tx.Where("bill_admin_id = ? AND bill_customer_id = ?", adminID, customerID).
		Order("bill_month DESC").
		First(&head).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, err
	}

	paid, err := PaymentsSum(tx, adminID, head.BillID)
	if err != nil {
		return decimal.Zero, err
	}
	return ClampedRemaining(head.BillLastMonthRemaining, head.BillCurrentMonthBill, paid), nil
}

func previousRemaining(tx *gorm.DB, adminID, customerID uuid.UUID, month time.Time) (decimal.Decimal, error) {
	prevMonth := month.AddDate(0, -1, 0)

	var prev billModel.Bill
	err := tx.Where(
		"bill_admin_id = ? AND bill_customer_id = ? AND bill_month = ?",
		adminID, customerID, prevMonth,
	).First(&prev).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, err
	}

	paid, err := PaymentsSum(tx, adminID, prev.BillID)
	if err != nil {
		return decimal.Zero, err
	}
	return RemainingBalance(prev.BillLastMonthRemaining, prev.BillCurrentMonthBill, paid), nil
}
