// file: internals/features/expenses/expense/controller/expense_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"gasku_backend/internals/features/expenses/expense/dto"
	"gasku_backend/internals/features/expenses/expense/model"
	helper "gasku_backend/internals/helpers"
	helperAuth "gasku_backend/internals/helpers/auth"
)

type ExpenseController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

/* =========================================================
   CREATE /api/a/expenses
   ========================================================= */

func (ctrl *ExpenseController) Create(c *fiber.Ctx) error {
	if err := helperAuth.RequireEdit(c, helperAuth.ModExpenses); err != nil {
		return helper.FromFiberError(c, err)
	}

	adminID, bypass, err := helperAuth.TenantScope(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if bypass {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tenant tidak dikenali")
	}

	var req dto.CreateExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if !req.ExpenseAmount.IsPositive() {
		return helper.JsonError(c, fiber.StatusBadRequest, "expense_amount harus lebih dari 0")
	}

	expense, err := req.ToModel(adminID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctrl.DB.Create(expense).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Pengeluaran berhasil dicatat", expense)
}

/* =========================================================
   LIST /api/a/expenses
   filter: category, month ("YYYY-MM"), date_from, date_to
   ========================================================= */

func (ctrl *ExpenseController) List(c *fiber.Ctx) error {
	if err := helperAuth.RequireView(c, helperAuth.ModExpenses); err != nil {
		return helper.FromFiberError(c, err)
	}

	q := ctrl.DB.Model(&model.Expense{}).Scopes(model.ScopeAlive)
	q, err := helperAuth.ScopeTenant(q, c, "expense_admin_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if cat := strings.ToLower(strings.TrimSpace(c.Query("category"))); cat != "" {
		q = q.Where("expense_category = ?", cat)
	}
	if m := strings.TrimSpace(c.Query("month")); m != "" {
		month, err := time.Parse("2006-01", m)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "month harus berformat YYYY-MM")
		}
		q = q.Where("expense_date >= ? AND expense_date < ?",
			month.Format("2006-01-02"), month.AddDate(0, 1, 0).Format("2006-01-02"))
	}
	if from := strings.TrimSpace(c.Query("date_from")); from != "" {
		q = q.Where("expense_date >= ?", from)
	}
	if to := strings.TrimSpace(c.Query("date_to")); to != "" {
		q = q.Where("expense_date <= ?", to)
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []model.Expense
	if err := q.
		Order("expense_date DESC, expense_created_at DESC").
		Limit(paging.PerPage).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "Daftar pengeluaran", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* =========================================================
   MONTHLY /api/a/expenses/monthly/:month  ("YYYY-MM")
   Total per kategori + grand total.
   ========================================================= */

func (ctrl *ExpenseController) Monthly(c *fiber.Ctx) error {
	if err := helperAuth.RequireView(c, helperAuth.ModExpenses); err != nil {
		return helper.FromFiberError(c, err)
	}

	month, err := time.Parse("2006-01", c.Params("month"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Bulan harus berformat YYYY-MM")
	}

	q := ctrl.DB.Model(&model.Expense{}).Scopes(model.ScopeAlive).
		Where("expense_date >= ? AND expense_date < ?",
			month.Format("2006-01-02"), month.AddDate(0, 1, 0).Format("2006-01-02"))
	q, err = helperAuth.ScopeTenant(q, c, "expense_admin_id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	type catRow struct {
		ExpenseCategory string          `json:"expense_category"`
		Total           decimal.Decimal `json:"total"`
		Count           int64           `json:"count"`
	}
	var cats []catRow
	if err := q.
		Select("expense_category, COALESCE(SUM(expense_amount), 0) AS total, COUNT(*) AS count").
		Group("expense_category").
		Order("total DESC").
		Scan(&cats).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	grand := decimal.Zero
	for _, r := range cats {
		grand = grand.Add(r.Total)
	}

	return helper.JsonOK(c, "Rekap pengeluaran bulanan", fiber.Map{
		"month":      month.Format("2006-01"),
		"categories": cats,
		"total":      grand,
	})
}

func (ctrl *ExpenseController) Patch(c *fiber.Ctx) error {
	if err := helperAuth.RequireEdit(c, helperAuth.ModExpenses); err != nil {
		return helper.FromFiberError(c, err)
	}

	expense, err := ctrl.loadExpense(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.PatchExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if err := req.ApplyTo(expense); err != nil {
		return helper.FromFiberError(c, err)
	}
	if !expense.ExpenseAmount.IsPositive() {
		return helper.JsonError(c, fiber.StatusBadRequest, "expense_amount harus lebih dari 0")
	}

	if err := ctrl.DB.Save(expense).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Pengeluaran berhasil diperbarui", expense)
}

func (ctrl *ExpenseController) Delete(c *fiber.Ctx) error {
	if err := helperAuth.RequireEdit(c, helperAuth.ModExpenses); err != nil {
		return helper.FromFiberError(c, err)
	}

	expense, err := ctrl.loadExpense(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctrl.DB.Delete(expense).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Pengeluaran berhasil dihapus", fiber.Map{"expense_id": expense.ExpenseID})
}

func (ctrl *ExpenseController) loadExpense(c *fiber.Ctx) (*model.Expense, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID pengeluaran tidak valid")
	}

	q := ctrl.DB.Scopes(model.ScopeAlive).Where("expense_id = ?", id)
	q, err = helperAuth.ScopeTenant(q, c, "expense_admin_id")
	if err != nil {
		return nil, err
	}

	var expense model.Expense
	if err := q.First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Pengeluaran tidak ditemukan")
		}
		return nil, err
	}
	return &expense, nil
}
