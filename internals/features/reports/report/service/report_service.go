// file: internals/features/reports/report/service/report_service.go
package service

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	billModel "gasku_backend/internals/features/billing/bill/model"
	billService "gasku_backend/internals/features/billing/bill/service"
	paymentModel "gasku_backend/internals/features/billing/payment/model"
	customerModel "gasku_backend/internals/features/customers/customer/model"
	entryModel "gasku_backend/internals/features/cylinders/entry/model"
	expenseModel "gasku_backend/internals/features/expenses/expense/model"
)

/* =========================================================
   DASHBOARD
   ========================================================= */

type DashboardStats struct {
	ActiveCustomers int64 `json:"active_customers"`

	TodayDelivered int64 `json:"today_delivered"`
	TodayReceived  int64 `json:"today_received"`

	MonthBilled   decimal.Decimal `json:"month_billed"`
	MonthPaid     decimal.Decimal `json:"month_paid"`
	MonthExpenses decimal.Decimal `json:"month_expenses"`

	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
}

func Dashboard(db *gorm.DB, adminID uuid.UUID, now time.Time) (*DashboardStats, error) {
	stats := &DashboardStats{
		MonthBilled:      decimal.Zero,
		MonthPaid:        decimal.Zero,
		MonthExpenses:    decimal.Zero,
		TotalOutstanding: decimal.Zero,
	}

	if err := db.Model(&customerModel.Customer{}).Scopes(customerModel.ScopeAlive).
		Where("customer_admin_id = ?", adminID).
		Where("customer_is_active = TRUE").
		Count(&stats.ActiveCustomers).Error; err != nil {
		return nil, err
	}

	today := now.Format("2006-01-02")
	qtyToday := func(entryType string) (int64, error) {
		var row struct{ Total int64 }
		err := db.Model(&entryModel.CylinderEntry{}).Scopes(entryModel.ScopeAlive).
			Where("cylinder_entry_admin_id = ?", adminID).
			Where("cylinder_entry_type = ?", entryType).
			Where("cylinder_entry_date = ?", today).
			Select("COALESCE(SUM(cylinder_entry_quantity), 0) AS total").
			Scan(&row).Error
		return row.Total, err
	}
	var err error
	if stats.TodayDelivered, err = qtyToday(entryModel.EntryTypeDelivered); err != nil {
		return nil, err
	}
	if stats.TodayReceived, err = qtyToday(entryModel.EntryTypeReceived); err != nil {
		return nil, err
	}

	month := billService.MonthOf(now)
	monthStart := month.Format("2006-01-02")
	monthEnd := month.AddDate(0, 1, 0).Format("2006-01-02")

	var billed struct{ Total decimal.Decimal }
	if err := db.Model(&billModel.Bill{}).
		Where("bill_admin_id = ? AND bill_deleted_at IS NULL", adminID).
		Where("bill_month = ?", monthStart).
		Select("COALESCE(SUM(bill_current_month_bill), 0) AS total").
		Scan(&billed).Error; err != nil {
		return nil, err
	}
	stats.MonthBilled = billed.Total

	var paid struct{ Total decimal.Decimal }
	if err := db.Model(&paymentModel.Payment{}).
		Where("payment_admin_id = ?", adminID).
		Where("payment_paid_at >= ? AND payment_paid_at < ?", monthStart, monthEnd).
		Select("COALESCE(SUM(payment_amount), 0) AS total").
		Scan(&paid).Error; err != nil {
		return nil, err
	}
	stats.MonthPaid = paid.Total

	var spent struct{ Total decimal.Decimal }
	if err := db.Model(&expenseModel.Expense{}).Scopes(expenseModel.ScopeAlive).
		Where("expense_admin_id = ?", adminID).
		Where("expense_date >= ? AND expense_date < ?", monthStart, monthEnd).
		Select("COALESCE(SUM(expense_amount), 0) AS total").
		Scan(&spent).Error; err != nil {
		return nil, err
	}
	stats.MonthExpenses = spent.Total

	var outstanding decimal.Decimal
	if outstanding, err = totalOutstanding(db, adminID); err != nil {
		return nil, err
	}
	stats.TotalOutstanding = outstanding

	return stats, nil
}

// totalOutstanding menjumlahkan sisa ter-clamp dari bill TERAKHIR tiap
// pelanggan. Bill yang lebih lama tidak ikut: carry-nya sudah terbawa di
// bill_last_month_remaining bill berikutnya, menjumlahkan semuanya berarti
// menghitung hutang yang sama dua kali.
func totalOutstanding(db *gorm.DB, adminID uuid.UUID) (decimal.Decimal, error) {
	var bills []billModel.Bill
	if err := db.Raw(`
		SELECT DISTINCT ON (bill_customer_id) *
		FROM bills
		WHERE bill_admin_id = ? AND bill_deleted_at IS NULL
		ORDER BY bill_customer_id, bill_month DESC`, adminID).
		Scan(&bills).Error; err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for i := range bills {
		if bills[i].BillStatus == billModel.BillStatusPaid {
			continue
		}
		paid, err := billService.PaymentsSum(db, adminID, bills[i].BillID)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(billService.ClampedRemaining(
			bills[i].BillLastMonthRemaining, bills[i].BillCurrentMonthBill, paid))
	}
	return total, nil
}

/* =========================================================
   MONTHLY REPORT
   Satu baris per pelanggan yang punya bill pada bulan tsb.
   ========================================================= */

type MonthlyRow struct {
	CustomerCode string `json:"customer_code"`
	CustomerName string `json:"customer_name"`

	CylinderCount int `json:"cylinder_count"`

	LastMonthRemaining decimal.Decimal `json:"last_month_remaining"`
	CurrentMonthBill   decimal.Decimal `json:"current_month_bill"`
	Paid               decimal.Decimal `json:"paid"`
	Remaining          decimal.Decimal `json:"remaining"`

	Status string `json:"status"`
}

type MonthlyReport struct {
	Month time.Time    `json:"month"`
	Rows  []MonthlyRow `json:"rows"`

	TotalBilled    decimal.Decimal `json:"total_billed"`
	TotalPaid      decimal.Decimal `json:"total_paid"`
	TotalRemaining decimal.Decimal `json:"total_remaining"`
	TotalCylinders int             `json:"total_cylinders"`
}

func Monthly(db *gorm.DB, adminID uuid.UUID, month time.Time) (*MonthlyReport, error) {
	month = billService.MonthOf(month)

	var bills []billModel.Bill
	if err := db.
		Where("bill_admin_id = ? AND bill_deleted_at IS NULL", adminID).
		Where("bill_month = ?", month.Format("2006-01-02")).
		Find(&bills).Error; err != nil {
		return nil, err
	}

	report := &MonthlyReport{
		Month:          month,
		Rows:           []MonthlyRow{},
		TotalBilled:    decimal.Zero,
		TotalPaid:      decimal.Zero,
		TotalRemaining: decimal.Zero,
	}
	if len(bills) == 0 {
		return report, nil
	}

	custIDs := make([]uuid.UUID, 0, len(bills))
	for _, b := range bills {
		custIDs = append(custIDs, b.BillCustomerID)
	}
	var custs []customerModel.Customer
	if err := db.
		Where("customer_admin_id = ?", adminID).
		Where("customer_id IN ?", custIDs).
		Find(&custs).Error; err != nil {
		return nil, err
	}
	custBy := make(map[uuid.UUID]customerModel.Customer, len(custs))
	for _, cu := range custs {
		custBy[cu.CustomerID] = cu
	}

	for i := range bills {
		b := bills[i]
		paid, err := billService.PaymentsSum(db, adminID, b.BillID)
		if err != nil {
			return nil, err
		}
		remaining := billService.RemainingBalance(b.BillLastMonthRemaining, b.BillCurrentMonthBill, paid)

		cu := custBy[b.BillCustomerID]
		report.Rows = append(report.Rows, MonthlyRow{
			CustomerCode:       cu.CustomerCode,
			CustomerName:       cu.CustomerName,
			CylinderCount:      b.BillCylinderCount,
			LastMonthRemaining: b.BillLastMonthRemaining,
			CurrentMonthBill:   b.BillCurrentMonthBill,
			Paid:               paid,
			Remaining:          remaining,
			Status:             b.BillStatus,
		})

		report.TotalBilled = report.TotalBilled.Add(b.BillCurrentMonthBill)
		report.TotalPaid = report.TotalPaid.Add(paid)
		// agregat di-clamp per baris: kredit satu pelanggan tidak boleh
		// mengurangi hutang pelanggan lain
		report.TotalRemaining = report.TotalRemaining.Add(
			billService.ClampedRemaining(b.BillLastMonthRemaining, b.BillCurrentMonthBill, paid))
		report.TotalCylinders += b.BillCylinderCount
	}

	sort.Slice(report.Rows, func(i, j int) bool {
		return report.Rows[i].CustomerName < report.Rows[j].CustomerName
	})
	return report, nil
}
