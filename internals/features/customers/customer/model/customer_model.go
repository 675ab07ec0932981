// file: internals/features/customers/customer/model/customer_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* =========================
   Model: customers
   ========================= */

// Customer: pelanggan distributor LPG. Tidak pernah dihapus keras —
// dinonaktifkan via CustomerIsActive supaya histori entry/bill tetap utuh.
type Customer struct {
	CustomerID uuid.UUID `json:"customer_id" gorm:"column:customer_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// tenant scope
	CustomerAdminID uuid.UUID `json:"customer_admin_id" gorm:"column:customer_admin_id;type:uuid;not null;uniqueIndex:uq_customers_tenant_code;index"`

	CustomerCode string `json:"customer_code" gorm:"column:customer_code;type:varchar(30);not null;uniqueIndex:uq_customers_tenant_code"`
	CustomerName string `json:"customer_name" gorm:"column:customer_name;type:varchar(120);not null"`

	CustomerPhones  pq.StringArray `json:"customer_phones,omitempty"  gorm:"column:customer_phones;type:text[]"`
	CustomerAddress *string        `json:"customer_address,omitempty" gorm:"column:customer_address;type:text"`

	// kategori bebas: home / commercial / reseller dsb.
	CustomerType *string `json:"customer_type,omitempty" gorm:"column:customer_type;type:varchar(40)"`

	CustomerIsActive bool `json:"customer_is_active" gorm:"column:customer_is_active;not null;default:true"`

	CustomerCreatedAt time.Time      `json:"customer_created_at" gorm:"column:customer_created_at;autoCreateTime"`
	CustomerUpdatedAt time.Time      `json:"customer_updated_at" gorm:"column:customer_updated_at;autoUpdateTime"`
	CustomerDeletedAt gorm.DeletedAt `json:"-"                   gorm:"column:customer_deleted_at;index"`
}

func (Customer) TableName() string { return "customers" }

// ScopeAlive: hanya baris yang belum soft-delete.
func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Model(&Customer{}).Where("customer_deleted_at IS NULL")
}
