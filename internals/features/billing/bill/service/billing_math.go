// file: internals/features/billing/bill/service/billing_math.go
package service

import (
	"github.com/shopspring/decimal"

	billModel "gasku_backend/internals/features/billing/bill/model"
)

// Aritmetika billing murni. Satu-satunya definisi "sisa tagihan" di
// seluruh repo — API, renderer, dan report semuanya lewat sini.

// RemainingBalance = (lastMonthRemaining + currentMonthBill) − paid.
// Bisa negatif saat pembayaran melebihi total (kredit pelanggan).
func RemainingBalance(lastMonthRemaining, currentMonthBill, paid decimal.Decimal) decimal.Decimal {
	return lastMonthRemaining.Add(currentMonthBill).Sub(paid)
}

// ClampedRemaining: sisa tagihan untuk tampilan agregat — tidak pernah
// negatif.
func ClampedRemaining(lastMonthRemaining, currentMonthBill, paid decimal.Decimal) decimal.Decimal {
	rem := RemainingBalance(lastMonthRemaining, currentMonthBill, paid)
	if rem.IsNegative() {
		return decimal.Zero
	}
	return rem
}

// StatusFor menurunkan status bill dari total tagihan dan total bayar.
func StatusFor(total, paid decimal.Decimal) string {
	if paid.LessThanOrEqual(decimal.Zero) {
		return billModel.BillStatusNotPaid
	}
	if paid.GreaterThanOrEqual(total) {
		return billModel.BillStatusPaid
	}
	return billModel.BillStatusPartiallyPaid
}
