// file: internals/features/customers/customer/dto/customer_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	model "gasku_backend/internals/features/customers/customer/model"
)

/* =========================================================
   REQUEST: Create
   ========================================================= */

type CreateCustomerRequest struct {
	CustomerCode string `json:"customer_code" validate:"required,max=30"`
	CustomerName string `json:"customer_name" validate:"required,max=120"`

	CustomerPhones  []string `json:"customer_phones"  validate:"omitempty,dive,max=30"`
	CustomerAddress *string  `json:"customer_address"`
	CustomerType    *string  `json:"customer_type"    validate:"omitempty,max=40"`
}

func (r *CreateCustomerRequest) ToModel(adminID uuid.UUID) *model.Customer {
	return &model.Customer{
		CustomerAdminID:  adminID,
		CustomerCode:     strings.ToUpper(strings.TrimSpace(r.CustomerCode)),
		CustomerName:     strings.TrimSpace(r.CustomerName),
		CustomerPhones:   pq.StringArray(r.CustomerPhones),
		CustomerAddress:  r.CustomerAddress,
		CustomerType:     r.CustomerType,
		CustomerIsActive: true,
	}
}

/* =========================================================
   REQUEST: Patch
   ========================================================= */

type PatchCustomerRequest struct {
	CustomerName    *string  `json:"customer_name"    validate:"omitempty,max=120"`
	CustomerPhones  []string `json:"customer_phones"  validate:"omitempty,dive,max=30"`
	CustomerAddress *string  `json:"customer_address"`
	CustomerType    *string  `json:"customer_type"    validate:"omitempty,max=40"`
	// soft enable/disable, bukan delete
	CustomerIsActive *bool `json:"customer_is_active"`
}

func (r *PatchCustomerRequest) ApplyTo(m *model.Customer) {
	if r.CustomerName != nil {
		m.CustomerName = strings.TrimSpace(*r.CustomerName)
	}
	if r.CustomerPhones != nil {
		m.CustomerPhones = pq.StringArray(r.CustomerPhones)
	}
	if r.CustomerAddress != nil {
		m.CustomerAddress = r.CustomerAddress
	}
	if r.CustomerType != nil {
		m.CustomerType = r.CustomerType
	}
	if r.CustomerIsActive != nil {
		m.CustomerIsActive = *r.CustomerIsActive
	}
}
