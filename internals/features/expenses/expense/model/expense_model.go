// file: internals/features/expenses/expense/model/expense_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

/* =========================
   Model: expenses
   ========================= */

// Expense: pengeluaran operasional distributor (bensin, gaji, servis,
// dll). Berdiri sendiri dari billing pelanggan.
type Expense struct {
	ExpenseID uuid.UUID `json:"expense_id" gorm:"column:expense_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// tenant scope
	ExpenseAdminID uuid.UUID `json:"expense_admin_id" gorm:"column:expense_admin_id;type:uuid;not null;index"`

	ExpenseTitle    string          `json:"expense_title"    gorm:"column:expense_title;type:varchar(120);not null"`
	ExpenseCategory string          `json:"expense_category" gorm:"column:expense_category;type:varchar(40);not null;default:'general';index"`
	ExpenseAmount   decimal.Decimal `json:"expense_amount"   gorm:"column:expense_amount;type:numeric(14,2);not null"`
	ExpenseNote     *string         `json:"expense_note,omitempty" gorm:"column:expense_note;type:text"`

	ExpenseDate time.Time `json:"expense_date" gorm:"column:expense_date;type:date;not null;index"`

	ExpenseCreatedAt time.Time      `json:"expense_created_at" gorm:"column:expense_created_at;autoCreateTime"`
	ExpenseUpdatedAt time.Time      `json:"expense_updated_at" gorm:"column:expense_updated_at;autoUpdateTime"`
	ExpenseDeletedAt gorm.DeletedAt `json:"-"                  gorm:"column:expense_deleted_at;index"`
}

func (Expense) TableName() string { return "expenses" }

func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Where("expense_deleted_at IS NULL")
}
