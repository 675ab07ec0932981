// file: internals/databases/migrate.go
package database

import (
	"log"
	"os"

	billModel "gasku_backend/internals/features/billing/bill/model"
	invoiceModel "gasku_backend/internals/features/billing/invoice/model"
	paymentModel "gasku_backend/internals/features/billing/payment/model"
	customerModel "gasku_backend/internals/features/customers/customer/model"
	entryModel "gasku_backend/internals/features/cylinders/entry/model"
	expenseModel "gasku_backend/internals/features/expenses/expense/model"
	stockModel "gasku_backend/internals/features/inventory/stock/model"
	settingsModel "gasku_backend/internals/features/templates/design/model"
	authModel "gasku_backend/internals/features/users/auth/model"
	tokenModel "gasku_backend/internals/features/users/token/model"
	userModel "gasku_backend/internals/features/users/user/model"
)

// AutoMigrate hanya untuk dev/staging (DB_AUTO_MIGRATE=true).
// Production memakai migrasi SQL terkelola.
func AutoMigrate() {
	if os.Getenv("DB_AUTO_MIGRATE") != "true" {
		return
	}
	log.Println("🛠 AutoMigrate aktif...")

	err := DB.AutoMigrate(
		&userModel.User{},
		&tokenModel.TokenBlacklist{},
		&authModel.PasswordResetOTP{},
		&settingsModel.TenantSettings{},
		&customerModel.Customer{},
		&entryModel.CylinderEntry{},
		&billModel.Bill{},
		&paymentModel.Payment{},
		&invoiceModel.Invoice{},
		&expenseModel.Expense{},
		&stockModel.StockPurchase{},
	)
	if err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ AutoMigrate selesai.")
}
