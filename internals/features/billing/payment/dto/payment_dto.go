// file: internals/features/billing/payment/dto/payment_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "gasku_backend/internals/features/billing/payment/model"
)

/* =========================================================
   REQUEST: Create (ledger append-only, tidak ada update/delete)
   ========================================================= */

type CreatePaymentRequest struct {
	PaymentBillID uuid.UUID       `json:"payment_bill_id" validate:"required"`
	PaymentAmount decimal.Decimal `json:"payment_amount"  validate:"required"`
	PaymentMethod *string         `json:"payment_method"  validate:"omitempty,max=30"`
	PaymentNote   *string         `json:"payment_note"`

	// default: sekarang
	PaymentPaidAt *time.Time `json:"payment_paid_at"`
}

func (r *CreatePaymentRequest) ToModel(adminID uuid.UUID) *model.Payment {
	p := &model.Payment{
		PaymentAdminID: adminID,
		PaymentBillID:  r.PaymentBillID,
		PaymentAmount:  r.PaymentAmount,
		PaymentMethod:  "cash",
		PaymentNote:    r.PaymentNote,
		PaymentPaidAt:  time.Now(),
	}
	if r.PaymentMethod != nil && strings.TrimSpace(*r.PaymentMethod) != "" {
		p.PaymentMethod = strings.ToLower(strings.TrimSpace(*r.PaymentMethod))
	}
	if r.PaymentPaidAt != nil {
		p.PaymentPaidAt = *r.PaymentPaidAt
	}
	return p
}
