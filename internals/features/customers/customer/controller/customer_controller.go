// file: internals/features/customers/customer/controller/customer_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "gasku_backend/internals/features/customers/customer/dto"
	model "gasku_backend/internals/features/customers/customer/model"
	helper "gasku_backend/internals/helpers"
	helperAuth "gasku_backend/internals/helpers/auth"
)

type CustomerController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{
		DB:        db,
		Validator: validator.New(),
	}
}

// ========== Create ==========
func (ctl *CustomerController) Create(c *fiber.Ctx) error {
	if err := helperAuth.RequireEdit(c, helperAuth.ModCustomers); err != nil {
		return helper.FromFiberError(c, err)
	}
	adminID, bypass, err := helperAuth.TenantScope(c)
	if err != nil || bypass {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tenant tidak dikenali")
	}

	var req dto.CreateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	cust := req.ToModel(adminID)
	if err := ctl.DB.Create(cust).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Pelanggan dibuat", cust)
}

// ========== List (paginated + search) ==========
func (ctl *CustomerController) List(c *fiber.Ctx) error {
	if err := helperAuth.RequireView(c, helperAuth.ModCustomers); err != nil {
		return helper.FromFiberError(c, err)
	}

	q, err := helperAuth.ScopeTenant(model.ScopeAlive(ctl.DB), c, "customer_admin_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where("customer_code ILIKE ? OR customer_name ILIKE ?", like, like)
	}
	if onlyActive := c.QueryBool("active", false); onlyActive {
		q = q.Where("customer_is_active = TRUE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)
	var customers []model.Customer
	if err := q.Order("customer_code ASC").Offset(p.Offset).Limit(p.Limit).Find(&customers).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonList(c, "ok", customers, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// ========== Detail ==========
func (ctl *CustomerController) GetByID(c *fiber.Ctx) error {
	if err := helperAuth.RequireView(c, helperAuth.ModCustomers); err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "customer_id invalid")
	}

	q, err := helperAuth.ScopeTenant(model.ScopeAlive(ctl.DB), c, "customer_admin_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var cust model.Customer
	if err := q.First(&cust, "customer_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pelanggan tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	return helper.JsonOK(c, "ok", cust)
}

// ========== Patch (termasuk soft enable/disable) ==========
func (ctl *CustomerController) Patch(c *fiber.Ctx) error {
	if err := helperAuth.RequireEdit(c, helperAuth.ModCustomers); err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "customer_id invalid")
	}

	q, err := helperAuth.ScopeTenant(model.ScopeAlive(ctl.DB), c, "customer_admin_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var cust model.Customer
	if err := q.First(&cust, "customer_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pelanggan tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	var req dto.PatchCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	req.ApplyTo(&cust)
	if err := ctl.DB.Save(&cust).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonUpdated(c, "Pelanggan diperbarui", cust)
}

// ========== Disable (soft, bukan hard delete) ==========
func (ctl *CustomerController) Disable(c *fiber.Ctx) error {
	if err := helperAuth.RequireEdit(c, helperAuth.ModCustomers); err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "customer_id invalid")
	}

	q, err := helperAuth.ScopeTenant(model.ScopeAlive(ctl.DB), c, "customer_admin_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := q.Where("customer_id = ?", id).Update("customer_is_active", false)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Pelanggan tidak ditemukan")
	}

	return helper.JsonUpdated(c, "Pelanggan dinonaktifkan", fiber.Map{"customer_id": id})
}
