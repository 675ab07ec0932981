// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"gasku_backend/internals/features/users/user/dto"
	"gasku_backend/internals/features/users/user/model"
	helper "gasku_backend/internals/helpers"
	helperAuth "gasku_backend/internals/helpers/auth"
)

type UserController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

/* =========================================================
   ME /api/a/users/me
   ========================================================= */

func (ctrl *UserController) Me(c *fiber.Ctx) error {
	userID, err := helperAuth.UserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var user model.User
	if err := ctrl.DB.Scopes(model.ScopeAlive).
		Where("user_id = ?", userID).
		First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}
	return helper.JsonOK(c, "Profil user", user)
}

/* =========================================================
   STAFF MANAGEMENT (admin/owner saja)
   ========================================================= */

func (ctrl *UserController) CreateStaff(c *fiber.Ctx) error {
	adminID, err := ctrl.requireTenantAdmin(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if err := dto.ValidatePermissions(req.UserPermissions); err != nil {
		return helper.FromFiberError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.UserEmail))
	var count int64
	if err := ctrl.DB.Model(&model.User{}).Scopes(model.ScopeAlive).
		Where("user_email = ?", email).
		Count(&count).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if count > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	permsJSON, _ := json.Marshal(req.UserPermissions)
	staff := model.User{
		UserAdminID:     adminID,
		UserName:        strings.TrimSpace(req.UserName),
		UserEmail:       email,
		UserPassword:    string(hash),
		UserRole:        model.RoleStaff,
		UserPermissions: datatypes.JSON(permsJSON),
		UserIsActive:    true,
	}
	if err := ctrl.DB.Create(&staff).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Staff berhasil dibuat", staff)
}

func (ctrl *UserController) ListStaff(c *fiber.Ctx) error {
	adminID, err := ctrl.requireTenantAdmin(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.User{}).Scopes(model.ScopeAlive).
		Where("user_admin_id = ?", adminID).
		Where("user_role = ?", model.RoleStaff)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []model.User
	if err := q.
		Order("user_created_at ASC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "Daftar staff", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// UpdatePermissions mengganti map permission staff secara utuh. Perubahan
// efektif saat staff menerbitkan access token baru (login/refresh).
func (ctrl *UserController) UpdatePermissions(c *fiber.Ctx) error {
	adminID, err := ctrl.requireTenantAdmin(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	staff, err := ctrl.loadStaff(c, adminID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.UpdatePermissionsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if err := dto.ValidatePermissions(req.UserPermissions); err != nil {
		return helper.FromFiberError(c, err)
	}

	permsJSON, _ := json.Marshal(req.UserPermissions)
	if err := ctrl.DB.Model(staff).
		Update("user_permissions", datatypes.JSON(permsJSON)).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	staff.UserPermissions = datatypes.JSON(permsJSON)
	return helper.JsonUpdated(c, "Permission staff diperbarui", staff)
}

func (ctrl *UserController) SetActive(c *fiber.Ctx) error {
	adminID, err := ctrl.requireTenantAdmin(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	staff, err := ctrl.loadStaff(c, adminID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.SetActiveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := ctrl.DB.Model(staff).
		Update("user_is_active", *req.UserIsActive).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	staff.UserIsActive = *req.UserIsActive
	return helper.JsonUpdated(c, "Status staff diperbarui", staff)
}

/* =========================================================
   INTERNAL
   ========================================================= */

// requireTenantAdmin: hanya admin (atau owner yang menyebut tenant lewat
// claim) yang boleh mengelola staff.
func (ctrl *UserController) requireTenantAdmin(c *fiber.Ctx) (uuid.UUID, error) {
	if !helperAuth.IsAdmin(c) && !helperAuth.IsOwner(c) {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Akses ditolak")
	}
	adminID, bypass, err := helperAuth.TenantScope(c)
	if err != nil {
		return uuid.Nil, err
	}
	if bypass {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Tenant tidak dikenali")
	}
	return adminID, nil
}

func (ctrl *UserController) loadStaff(c *fiber.Ctx, adminID uuid.UUID) (*model.User, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID user tidak valid")
	}

	var staff model.User
	if err := ctrl.DB.Scopes(model.ScopeAlive).
		Where("user_id = ?", id).
		Where("user_admin_id = ?", adminID).
		Where("user_role = ?", model.RoleStaff).
		First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Staff tidak ditemukan")
		}
		return nil, err
	}
	return &staff, nil
}
