// file: internals/features/cylinders/entry/dto/cylinder_entry_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "gasku_backend/internals/features/cylinders/entry/model"
)

/* =========================================================
   REQUEST: Create
   ========================================================= */

type CreateCylinderEntryRequest struct {
	// salah satu wajib: id langsung, atau referensi "CODE · Name"
	CylinderEntryCustomerID  *uuid.UUID `json:"cylinder_entry_customer_id"`
	CylinderEntryCustomerRef *string    `json:"cylinder_entry_customer_ref"`

	CylinderEntryType  string `json:"cylinder_entry_type"  validate:"required,oneof=DELIVERED RECEIVED"`
	CylinderEntryLabel string `json:"cylinder_entry_label" validate:"required,max=40"`

	CylinderEntryQuantity  int             `json:"cylinder_entry_quantity"   validate:"required"`
	CylinderEntryUnitPrice decimal.Decimal `json:"cylinder_entry_unit_price"`

	// "YYYY-MM-DD"
	CylinderEntryDate string `json:"cylinder_entry_date" validate:"required,datetime=2006-01-02"`

	// catatan operasional untuk RECEIVED
	CylinderEntryCashReceived *decimal.Decimal `json:"cylinder_entry_cash_received"`
	CylinderEntryPaymentNote  *string          `json:"cylinder_entry_payment_note"`
}

// CustomerRef mengembalikan referensi pelanggan yang dipakai resolver.
func (r *CreateCylinderEntryRequest) CustomerRef() (string, error) {
	if r.CylinderEntryCustomerID != nil && *r.CylinderEntryCustomerID != uuid.Nil {
		return r.CylinderEntryCustomerID.String(), nil
	}
	if r.CylinderEntryCustomerRef != nil && strings.TrimSpace(*r.CylinderEntryCustomerRef) != "" {
		return strings.TrimSpace(*r.CylinderEntryCustomerRef), nil
	}
	return "", fiber.NewError(fiber.StatusBadRequest, "cylinder_entry_customer_id atau cylinder_entry_customer_ref wajib diisi")
}

func (r *CreateCylinderEntryRequest) ToModel(adminID, customerID uuid.UUID) (*model.CylinderEntry, error) {
	date, err := time.Parse("2006-01-02", r.CylinderEntryDate)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "cylinder_entry_date harus berformat YYYY-MM-DD")
	}

	e := &model.CylinderEntry{
		CylinderEntryAdminID:    adminID,
		CylinderEntryCustomerID: customerID,
		CylinderEntryType:       strings.ToUpper(strings.TrimSpace(r.CylinderEntryType)),
		CylinderEntryLabel:      strings.TrimSpace(r.CylinderEntryLabel),
		CylinderEntryQuantity:   r.CylinderEntryQuantity,
		CylinderEntryUnitPrice:  r.CylinderEntryUnitPrice,
		CylinderEntryDate:       date,
	}
	if e.CylinderEntryType == model.EntryTypeReceived {
		e.CylinderEntryCashReceived = r.CylinderEntryCashReceived
		e.CylinderEntryPaymentNote = r.CylinderEntryPaymentNote
	}
	return e, nil
}
