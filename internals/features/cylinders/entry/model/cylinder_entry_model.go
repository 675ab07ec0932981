// file: internals/features/cylinders/entry/model/cylinder_entry_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

/* =========================
   Tipe entry
   ========================= */

const (
	EntryTypeDelivered = "DELIVERED"
	EntryTypeReceived  = "RECEIVED"
)

/* =========================
   Model: cylinder_entries
   ========================= */

// CylinderEntry: satu event pengantaran (DELIVERED) atau pengembalian
// (RECEIVED) tabung. Field pembayaran pada entry RECEIVED adalah catatan
// operasional; sumber kebenaran finansial tetap ledger payments.
type CylinderEntry struct {
	CylinderEntryID uuid.UUID `json:"cylinder_entry_id" gorm:"column:cylinder_entry_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// tenant scope
	CylinderEntryAdminID uuid.UUID `json:"cylinder_entry_admin_id" gorm:"column:cylinder_entry_admin_id;type:uuid;not null;index"`

	CylinderEntryCustomerID uuid.UUID `json:"cylinder_entry_customer_id" gorm:"column:cylinder_entry_customer_id;type:uuid;not null;index;constraint:OnDelete:CASCADE"`

	CylinderEntryType string `json:"cylinder_entry_type" gorm:"column:cylinder_entry_type;type:varchar(10);not null;index"`

	// kelas fisik tabung, mis. "11.8kg" / "45.4kg"
	CylinderEntryLabel string `json:"cylinder_entry_label" gorm:"column:cylinder_entry_label;type:varchar(40);not null"`

	CylinderEntryQuantity  int             `json:"cylinder_entry_quantity"   gorm:"column:cylinder_entry_quantity;not null"`
	CylinderEntryUnitPrice decimal.Decimal `json:"cylinder_entry_unit_price" gorm:"column:cylinder_entry_unit_price;type:numeric(14,2);not null"`
	// amount = quantity × unit_price, dihitung saat create
	CylinderEntryAmount decimal.Decimal `json:"cylinder_entry_amount" gorm:"column:cylinder_entry_amount;type:numeric(14,2);not null"`

	// tanggal pengantaran/pengembalian (date)
	CylinderEntryDate time.Time `json:"cylinder_entry_date" gorm:"column:cylinder_entry_date;type:date;not null;index"`

	// catatan operasional untuk RECEIVED (bukan transaksi finansial)
	CylinderEntryCashReceived *decimal.Decimal `json:"cylinder_entry_cash_received,omitempty" gorm:"column:cylinder_entry_cash_received;type:numeric(14,2)"`
	CylinderEntryPaymentNote  *string          `json:"cylinder_entry_payment_note,omitempty"  gorm:"column:cylinder_entry_payment_note;type:text"`

	CylinderEntryCreatedAt time.Time      `json:"cylinder_entry_created_at" gorm:"column:cylinder_entry_created_at;autoCreateTime"`
	CylinderEntryUpdatedAt time.Time      `json:"cylinder_entry_updated_at" gorm:"column:cylinder_entry_updated_at;autoUpdateTime"`
	CylinderEntryDeletedAt gorm.DeletedAt `json:"-"                         gorm:"column:cylinder_entry_deleted_at;index"`
}

func (CylinderEntry) TableName() string { return "cylinder_entries" }

// ScopeAlive: hanya baris yang belum soft-delete.
func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Model(&CylinderEntry{}).Where("cylinder_entry_deleted_at IS NULL")
}
