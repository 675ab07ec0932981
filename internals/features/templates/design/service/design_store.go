// file: internals/features/templates/design/service/design_store.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	model "gasku_backend/internals/features/templates/design/model"
)

// DesignKind membedakan dua blob desain pada settings tenant.
type DesignKind string

const (
	KindBill   DesignKind = "bill"
	KindReport DesignKind = "report"
)

// GetSettings mengambil baris settings tenant; nil jika belum ada.
func GetSettings(db *gorm.DB, adminID uuid.UUID) (*model.TenantSettings, error) {
	var ts model.TenantSettings
	err := db.First(&ts, "tenant_settings_admin_id = ?", adminID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

// GetDesign memuat + menormalisasi desain tenant. Belum pernah disimpan
// atau blob rusak → full default (kontrak: baca tidak pernah gagal karena
// isi blob).
func GetDesign(db *gorm.DB, adminID uuid.UUID, kind DesignKind) (Design, error) {
	ts, err := GetSettings(db, adminID)
	if err != nil {
		return DefaultDesign(), err
	}
	if ts == nil {
		return DefaultDesign(), nil
	}
	switch kind {
	case KindReport:
		return Normalize(ts.TenantSettingsReportDesign), nil
	default:
		return Normalize(ts.TenantSettingsBillDesign), nil
	}
}

// SaveDesign menulis blob desain wholesale (upsert satu baris per tenant).
// Payload disimpan apa adanya; sanitasi terjadi saat dibaca oleh Normalize.
func SaveDesign(db *gorm.DB, adminID uuid.UUID, kind DesignKind, raw datatypes.JSON) error {
	col := "tenant_settings_bill_design"
	if kind == KindReport {
		col = "tenant_settings_report_design"
	}

	ts := model.TenantSettings{TenantSettingsAdminID: adminID}
	switch kind {
	case KindReport:
		ts.TenantSettingsReportDesign = raw
	default:
		ts.TenantSettingsBillDesign = raw
	}

	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tenant_settings_admin_id"}},
		DoUpdates: clause.AssignmentColumns([]string{col, "tenant_settings_updated_at"}),
	}).Create(&ts).Error
}
