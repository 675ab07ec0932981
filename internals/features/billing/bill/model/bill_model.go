// file: internals/features/billing/bill/model/bill_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

/* =========================
   Status
   ========================= */

const (
	BillStatusNotPaid       = "NOT_PAID"
	BillStatusPartiallyPaid = "PARTIALLY_PAID"
	BillStatusPaid          = "PAID"
)

/* =========================
   Model: bills
   ========================= */

// Bill adalah rollup tagihan bulanan per pelanggan. Satu baris per
// (tenant, customer, bulan). Di-mutate oleh auto-sync saat entry
// DELIVERED dibuat/dihapus — bukan oleh user langsung.
type Bill struct {
	BillID uuid.UUID `json:"bill_id" gorm:"column:bill_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// tenant scope
	BillAdminID uuid.UUID `json:"bill_admin_id" gorm:"column:bill_admin_id;type:uuid;not null;uniqueIndex:uq_bills_tenant_customer_month;index"`

	BillCustomerID uuid.UUID `json:"bill_customer_id" gorm:"column:bill_customer_id;type:uuid;not null;uniqueIndex:uq_bills_tenant_customer_month;constraint:OnDelete:CASCADE"`

	// tanggal 1 di bulan tagihan (date)
	BillMonth time.Time `json:"bill_month" gorm:"column:bill_month;type:date;not null;uniqueIndex:uq_bills_tenant_customer_month"`

	BillLastMonthRemaining decimal.Decimal `json:"bill_last_month_remaining" gorm:"column:bill_last_month_remaining;type:numeric(14,2);not null;default:0"`
	BillCurrentMonthBill   decimal.Decimal `json:"bill_current_month_bill"   gorm:"column:bill_current_month_bill;type:numeric(14,2);not null;default:0"`
	BillCylinderCount      int             `json:"bill_cylinder_count"       gorm:"column:bill_cylinder_count;not null;default:0"`

	BillStatus string `json:"bill_status" gorm:"column:bill_status;type:varchar(20);not null;default:'NOT_PAID'"`

	BillCreatedAt time.Time      `json:"bill_created_at" gorm:"column:bill_created_at;autoCreateTime"`
	BillUpdatedAt time.Time      `json:"bill_updated_at" gorm:"column:bill_updated_at;autoUpdateTime"`
	BillDeletedAt gorm.DeletedAt `json:"-"               gorm:"column:bill_deleted_at;index"`
}

func (Bill) TableName() string { return "bills" }
