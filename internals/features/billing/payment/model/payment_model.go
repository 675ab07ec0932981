// file: internals/features/billing/payment/model/payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

/* =========================
   Model: payments (append-only ledger)
   ========================= */

// Payment adalah satu pembayaran terhadap sebuah Bill. Ledger ini
// append-only: tidak ada endpoint update/delete, dan sisa tagihan SELALU
// dihitung ulang dari sum(payments) — field pembayaran di entry tabung
// hanyalah catatan operasional, bukan sumber kebenaran.
type Payment struct {
	PaymentID uuid.UUID `json:"payment_id" gorm:"column:payment_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// tenant scope
	PaymentAdminID uuid.UUID `json:"payment_admin_id" gorm:"column:payment_admin_id;type:uuid;not null;index"`

	PaymentBillID uuid.UUID `json:"payment_bill_id" gorm:"column:payment_bill_id;type:uuid;not null;index;constraint:OnDelete:CASCADE"`

	PaymentAmount decimal.Decimal `json:"payment_amount" gorm:"column:payment_amount;type:numeric(14,2);not null"`
	PaymentMethod string          `json:"payment_method" gorm:"column:payment_method;type:varchar(30);not null;default:'cash'"`
	PaymentNote   *string         `json:"payment_note,omitempty" gorm:"column:payment_note;type:text"`

	PaymentPaidAt    time.Time `json:"payment_paid_at"    gorm:"column:payment_paid_at;not null"`
	PaymentCreatedAt time.Time `json:"payment_created_at" gorm:"column:payment_created_at;autoCreateTime"`
}

func (Payment) TableName() string { return "payments" }
