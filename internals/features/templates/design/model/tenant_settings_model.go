// file: internals/features/templates/design/model/tenant_settings_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================
   Model: tenant_settings
   ========================= */

// TenantSettings menyimpan konfigurasi per tenant, termasuk blob desain
// bill & report (JSON utuh, dibaca/ditulis wholesale tanpa skema relasional).
type TenantSettings struct {
	TenantSettingsID uuid.UUID `json:"tenant_settings_id" gorm:"column:tenant_settings_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// tenant scope — satu baris per tenant
	TenantSettingsAdminID uuid.UUID `json:"tenant_settings_admin_id" gorm:"column:tenant_settings_admin_id;type:uuid;not null;uniqueIndex:uq_tenant_settings_admin"`

	TenantSettingsBusinessName    string         `json:"tenant_settings_business_name"              gorm:"column:tenant_settings_business_name;type:varchar(120);not null;default:''"`
	TenantSettingsBusinessAddress *string        `json:"tenant_settings_business_address,omitempty" gorm:"column:tenant_settings_business_address;type:text"`
	TenantSettingsBusinessPhone   *string        `json:"tenant_settings_business_phone,omitempty"   gorm:"column:tenant_settings_business_phone;type:varchar(30)"`
	TenantSettingsNotifyEmails    pq.StringArray `json:"tenant_settings_notify_emails,omitempty"    gorm:"column:tenant_settings_notify_emails;type:text[]"`

	// blob desain — dinormalisasi hanya saat dibaca (service.Normalize)
	TenantSettingsBillDesign   datatypes.JSON `json:"tenant_settings_bill_design,omitempty"   gorm:"column:tenant_settings_bill_design;type:jsonb"`
	TenantSettingsReportDesign datatypes.JSON `json:"tenant_settings_report_design,omitempty" gorm:"column:tenant_settings_report_design;type:jsonb"`

	TenantSettingsCreatedAt time.Time      `json:"tenant_settings_created_at" gorm:"column:tenant_settings_created_at;autoCreateTime"`
	TenantSettingsUpdatedAt time.Time      `json:"tenant_settings_updated_at" gorm:"column:tenant_settings_updated_at;autoUpdateTime"`
	TenantSettingsDeletedAt gorm.DeletedAt `json:"-"                          gorm:"column:tenant_settings_deleted_at;index"`
}

func (TenantSettings) TableName() string { return "tenant_settings" }
