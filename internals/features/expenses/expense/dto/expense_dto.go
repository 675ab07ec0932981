// file: internals/features/expenses/expense/dto/expense_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "gasku_backend/internals/features/expenses/expense/model"
)

/* =========================================================
   REQUEST: Create
   ========================================================= */

type CreateExpenseRequest struct {
	ExpenseTitle    string          `json:"expense_title"    validate:"required,max=120"`
	ExpenseCategory *string         `json:"expense_category" validate:"omitempty,max=40"`
	ExpenseAmount   decimal.Decimal `json:"expense_amount"   validate:"required"`
	ExpenseNote     *string         `json:"expense_note"`
	ExpenseDate     string          `json:"expense_date"     validate:"required,datetime=2006-01-02"`
}

func (r *CreateExpenseRequest) ToModel(adminID uuid.UUID) (*model.Expense, error) {
	date, err := time.Parse("2006-01-02", r.ExpenseDate)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "expense_date harus berformat YYYY-MM-DD")
	}
	e := &model.Expense{
		ExpenseAdminID:  adminID,
		ExpenseTitle:    strings.TrimSpace(r.ExpenseTitle),
		ExpenseCategory: "general",
		ExpenseAmount:   r.ExpenseAmount,
		ExpenseNote:     r.ExpenseNote,
		ExpenseDate:     date,
	}
	if r.ExpenseCategory != nil && strings.TrimSpace(*r.ExpenseCategory) != "" {
		e.ExpenseCategory = strings.ToLower(strings.TrimSpace(*r.ExpenseCategory))
	}
	return e, nil
}

/* =========================================================
   REQUEST: Patch (partial)
   ========================================================= */

type PatchExpenseRequest struct {
	ExpenseTitle    *string          `json:"expense_title"    validate:"omitempty,max=120"`
	ExpenseCategory *string          `json:"expense_category" validate:"omitempty,max=40"`
	ExpenseAmount   *decimal.Decimal `json:"expense_amount"`
	ExpenseNote     *string          `json:"expense_note"`
	ExpenseDate     *string          `json:"expense_date"     validate:"omitempty,datetime=2006-01-02"`
}

func (r *PatchExpenseRequest) ApplyTo(e *model.Expense) error {
	if r.ExpenseTitle != nil {
		e.ExpenseTitle = strings.TrimSpace(*r.ExpenseTitle)
	}
	if r.ExpenseCategory != nil {
		e.ExpenseCategory = strings.ToLower(strings.TrimSpace(*r.ExpenseCategory))
	}
	if r.ExpenseAmount != nil {
		e.ExpenseAmount = *r.ExpenseAmount
	}
	if r.ExpenseNote != nil {
		e.ExpenseNote = r.ExpenseNote
	}
	if r.ExpenseDate != nil {
		date, err := time.Parse("2006-01-02", *r.ExpenseDate)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "expense_date harus berformat YYYY-MM-DD")
		}
		e.ExpenseDate = date
	}
	return nil
}
