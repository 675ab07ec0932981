// file: internals/features/billing/invoice/model/invoice_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================
   Model: invoices
   ========================= */

// Invoice adalah artefak bernomor yang terikat 1:1 dengan sebuah Bill.
// Selama masih ada, regenerasi untuk bill yang sama ditolak; hapus dulu
// untuk membuat ulang.
type Invoice struct {
	InvoiceID uuid.UUID `json:"invoice_id" gorm:"column:invoice_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// tenant scope; nomor hanya unik di dalam satu tenant
	InvoiceAdminID uuid.UUID `json:"invoice_admin_id" gorm:"column:invoice_admin_id;type:uuid;not null;uniqueIndex:uq_invoices_tenant_number,priority:1"`

	// 1:1 dengan bill
	InvoiceBillID uuid.UUID `json:"invoice_bill_id" gorm:"column:invoice_bill_id;type:uuid;not null;uniqueIndex:uq_invoices_bill;constraint:OnDelete:CASCADE"`

	InvoiceNumber string `json:"invoice_number" gorm:"column:invoice_number;type:varchar(40);not null;uniqueIndex:uq_invoices_tenant_number,priority:2"`

	InvoiceGeneratedAt time.Time `json:"invoice_generated_at" gorm:"column:invoice_generated_at;autoCreateTime"`
}

func (Invoice) TableName() string { return "invoices" }
