// file: internals/features/inventory/stock/controller/stock_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gasku_backend/internals/features/inventory/stock/dto"
	"gasku_backend/internals/features/inventory/stock/model"
	"gasku_backend/internals/features/inventory/stock/service"
	helper "gasku_backend/internals/helpers"
	helperAuth "gasku_backend/internals/helpers/auth"
)

type StockController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

/* =========================================================
   PURCHASES
   ========================================================= */

func (ctrl *StockController) CreatePurchase(c *fiber.Ctx) error {
	if err := helperAuth.RequireEdit(c, helperAuth.ModInventory); err != nil {
		return helper.FromFiberError(c, err)
	}

	adminID, bypass, err := helperAuth.TenantScope(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if bypass {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tenant tidak dikenali")
	}

	var req dto.CreateStockPurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.StockPurchaseQuantity <= 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "stock_purchase_quantity harus lebih dari 0")
	}
	if req.StockPurchaseUnitCost.IsNegative() {
		return helper.JsonError(c, fiber.StatusBadRequest, "stock_purchase_unit_cost tidak boleh negatif")
	}

	purchase, err := req.ToModel(adminID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctrl.DB.Create(purchase).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Pembelian stok berhasil dicatat", purchase)
}

func (ctrl *StockController) ListPurchases(c *fiber.Ctx) error {
	if err := helperAuth.RequireView(c, helperAuth.ModInventory); err != nil {
		return helper.FromFiberError(c, err)
	}

	q := ctrl.DB.Model(&model.StockPurchase{}).Scopes(model.ScopeAlive)
	q, err := helperAuth.ScopeTenant(q, c, "stock_purchase_admin_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if label := strings.TrimSpace(c.Query("label")); label != "" {
		q = q.Where("stock_purchase_label = ?", label)
	}
	if from := strings.TrimSpace(c.Query("date_from")); from != "" {
		q = q.Where("stock_purchase_date >= ?", from)
	}
	if to := strings.TrimSpace(c.Query("date_to")); to != "" {
		q = q.Where("stock_purchase_date <= ?", to)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []model.StockPurchase
	if err := q.
		Order("stock_purchase_date DESC, stock_purchase_created_at DESC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "Daftar pembelian stok", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

func (ctrl *StockController) DeletePurchase(c *fiber.Ctx) error {
	if err := helperAuth.RequireEdit(c, helperAuth.ModInventory); err != nil {
		return helper.FromFiberError(c, err)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pembelian tidak valid")
	}

	q := ctrl.DB.Where("stock_purchase_id = ?", id)
	q, err = helperAuth.ScopeTenant(q, c, "stock_purchase_admin_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := q.Delete(&model.StockPurchase{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Pembelian tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Pembelian stok berhasil dihapus", fiber.Map{"stock_purchase_id": id})
}

/* =========================================================
   SNAPSHOT /api/a/inventory/stock
   ========================================================= */

func (ctrl *StockController) Stock(c *fiber.Ctx) error {
	if err := helperAuth.RequireView(c, helperAuth.ModInventory); err != nil {
		return helper.FromFiberError(c, err)
	}

	adminID, bypass, err := helperAuth.TenantScope(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if bypass {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tenant tidak dikenali")
	}

	stocks, err := service.Snapshot(ctrl.DB, adminID)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Snapshot stok", fiber.Map{"stocks": stocks})
}
