// file: internals/features/billing/bill/dto/bill_dto.go
package dto

import (
	"github.com/shopspring/decimal"

	model "gasku_backend/internals/features/billing/bill/model"
)

/* =========================================================
   RESPONSE
   ========================================================= */

// BillResponse = row bill + angka turunan (paid/remaining) yang
// dihitung ulang dari ledger payments, bukan disimpan.
type BillResponse struct {
	model.Bill

	BillTotal     decimal.Decimal `json:"bill_total"`
	BillPaid      decimal.Decimal `json:"bill_paid"`
	BillRemaining decimal.Decimal `json:"bill_remaining"`

	BillCustomerName string `json:"bill_customer_name,omitempty"`
	BillCustomerCode string `json:"bill_customer_code,omitempty"`
}

func NewBillResponse(b model.Bill, paid decimal.Decimal, custCode, custName string) BillResponse {
	total := b.BillLastMonthRemaining.Add(b.BillCurrentMonthBill)
	return BillResponse{
		Bill:             b,
		BillTotal:        total,
		BillPaid:         paid,
		BillRemaining:    total.Sub(paid),
		BillCustomerName: custName,
		BillCustomerCode: custCode,
	}
}
