// file: internals/features/templates/design/controller/design_controller.go
package controller

import (
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	dto "gasku_backend/internals/features/templates/design/dto"
	model "gasku_backend/internals/features/templates/design/model"
	service "gasku_backend/internals/features/templates/design/service"
	helper "gasku_backend/internals/helpers"
	helperAuth "gasku_backend/internals/helpers/auth"
)

type DesignController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewDesignController(db *gorm.DB) *DesignController {
	return &DesignController{
		DB:        db,
		Validator: validator.New(),
	}
}

func designKind(c *fiber.Ctx) (service.DesignKind, error) {
	switch strings.ToLower(strings.TrimSpace(c.Params("kind"))) {
	case "bill":
		return service.KindBill, nil
	case "report":
		return service.KindReport, nil
	}
	return "", fiber.NewError(fiber.StatusBadRequest, "kind harus bill atau report")
}

// ========== Get design (normalized + raw) ==========
func (ctl *DesignController) GetDesign(c *fiber.Ctx) error {
	if err := helperAuth.RequireView(c, helperAuth.ModTemplates); err != nil {
		return helper.FromFiberError(c, err)
	}
	kind, err := designKind(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	adminID, bypass, err := helperAuth.TenantScope(c)
	if err != nil || bypass {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tenant tidak dikenali")
	}

	ts, err := service.GetSettings(ctl.DB, adminID)
	if err != nil {
		return helper.WritePGError(c, err)
	}

	var raw datatypes.JSON
	if ts != nil {
		if kind == service.KindReport {
			raw = ts.TenantSettingsReportDesign
		} else {
			raw = ts.TenantSettingsBillDesign
		}
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"design": service.Normalize(raw),
		"raw":    raw,
	})
}

// ========== Save design (wholesale) ==========
func (ctl *DesignController) SaveDesign(c *fiber.Ctx) error {
	if err := helperAuth.RequireEdit(c, helperAuth.ModTemplates); err != nil {
		return helper.FromFiberError(c, err)
	}
	kind, err := designKind(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	adminID, bypass, err := helperAuth.TenantScope(c)
	if err != nil || bypass {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tenant tidak dikenali")
	}

	var req dto.SaveDesignRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !json.Valid(req.Design) {
		return helper.JsonError(c, fiber.StatusBadRequest, "design harus JSON valid")
	}

	if err := service.SaveDesign(ctl.DB, adminID, kind, datatypes.JSON(req.Design)); err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonUpdated(c, "Desain tersimpan", fiber.Map{
		"design": service.Normalize(req.Design),
	})
}

// ========== Upload logo → data-URI di blob desain ==========
func (ctl *DesignController) UploadLogo(c *fiber.Ctx) error {
	if err := helperAuth.RequireEdit(c, helperAuth.ModTemplates); err != nil {
		return helper.FromFiberError(c, err)
	}
	kind, err := designKind(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	adminID, bypass, err := helperAuth.TenantScope(c)
	if err != nil || bypass {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tenant tidak dikenali")
	}

	fh, err := c.FormFile("logo")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "file logo wajib diunggah (field: logo)")
	}

	uri, err := service.LogoToDataURI(fh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// merge ke blob tersimpan tanpa mengganggu key lain
	ts, err := service.GetSettings(ctl.DB, adminID)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	blob := map[string]any{}
	if ts != nil {
		raw := ts.TenantSettingsBillDesign
		if kind == service.KindReport {
			raw = ts.TenantSettingsReportDesign
		}
		if len(raw) > 0 {
			_ = json.Unmarshal(raw, &blob)
		}
	}
	blob["logo_data_uri"] = uri
	merged, err := json.Marshal(blob)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if err := service.SaveDesign(ctl.DB, adminID, kind, datatypes.JSON(merged)); err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonUpdated(c, "Logo tersimpan", fiber.Map{"logo_data_uri": uri})
}

// ========== Settings umum tenant ==========
func (ctl *DesignController) GetSettings(c *fiber.Ctx) error {
	if err := helperAuth.RequireView(c, helperAuth.ModTemplates); err != nil {
		return helper.FromFiberError(c, err)
	}
	adminID, bypass, err := helperAuth.TenantScope(c)
	if err != nil || bypass {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tenant tidak dikenali")
	}

	ts, err := service.GetSettings(ctl.DB, adminID)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	if ts == nil {
		ts = &model.TenantSettings{TenantSettingsAdminID: adminID}
	}
	return helper.JsonOK(c, "ok", ts)
}

func (ctl *DesignController) UpdateSettings(c *fiber.Ctx) error {
	if err := helperAuth.RequireEdit(c, helperAuth.ModTemplates); err != nil {
		return helper.FromFiberError(c, err)
	}
	adminID, bypass, err := helperAuth.TenantScope(c)
	if err != nil || bypass {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tenant tidak dikenali")
	}

	var req dto.UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	ts, err := service.GetSettings(ctl.DB, adminID)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	if ts == nil {
		ts = &model.TenantSettings{TenantSettingsAdminID: adminID}
	}
	if req.BusinessName != nil {
		ts.TenantSettingsBusinessName = strings.TrimSpace(*req.BusinessName)
	}
	if req.BusinessAddress != nil {
		ts.TenantSettingsBusinessAddress = req.BusinessAddress
	}
	if req.BusinessPhone != nil {
		ts.TenantSettingsBusinessPhone = req.BusinessPhone
	}
	if req.NotifyEmails != nil {
		ts.TenantSettingsNotifyEmails = req.NotifyEmails
	}

	if err := ctl.DB.Save(ts).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Settings tersimpan", ts)
}
