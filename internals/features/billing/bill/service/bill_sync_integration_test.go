// file: internals/features/billing/bill/service/bill_sync_integration_test.go
package service

import (
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	billModel "gasku_backend/internals/features/billing/bill/model"
	paymentModel "gasku_backend/internals/features/billing/payment/model"
	entryModel "gasku_backend/internals/features/cylinders/entry/model"
)

// Test integrasi butuh Postgres khusus test. Set TEST_DATABASE_URL untuk
// menjalankannya; tanpa itu di-skip supaya database live aman.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	_ = godotenv.Load("../../../../../.env")

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL belum di-set — test integrasi dilewati")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("koneksi test DB: %v", err)
	}
	if err := db.AutoMigrate(&entryModel.CylinderEntry{}, &billModel.Bill{}, &paymentModel.Payment{}); err != nil {
		t.Fatalf("migrasi test DB: %v", err)
	}
	if err := db.Exec("TRUNCATE TABLE payments, bills, cylinder_entries CASCADE").Error; err != nil {
		t.Fatalf("bersihkan test DB: %v", err)
	}
	return db
}

func seedDelivered(t *testing.T, db *gorm.DB, adminID, custID uuid.UUID, qty int, price int64, date time.Time) {
	t.Helper()
	unit := decimal.NewFromInt(price)
	e := &entryModel.CylinderEntry{
		CylinderEntryAdminID:    adminID,
		CylinderEntryCustomerID: custID,
		CylinderEntryType:       entryModel.EntryTypeDelivered,
		CylinderEntryLabel:      "45kg",
		CylinderEntryQuantity:   qty,
		CylinderEntryUnitPrice:  unit,
		CylinderEntryAmount:     unit.Mul(decimal.NewFromInt(int64(qty))),
		CylinderEntryDate:       date,
	}
	if err := db.Create(e).Error; err != nil {
		t.Fatalf("seed entry: %v", err)
	}
}

// Mei belum dibayar (sisa 1000), Juni membawa carry 1000 + tagihan 2000.
// Outstanding pelanggan = 3000, bukan 4000: carry Mei sudah ada di dalam
// bill Juni, menjumlahkan kedua bulan menghitung hutang yang sama dua kali.
func TestOutstandingRemainingCarryChain(t *testing.T) {
	db := setupTestDB(t)
	adminID, custID := uuid.New(), uuid.New()
	may := time.Date(2025, time.May, 15, 0, 0, 0, 0, time.UTC)
	jun := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

	seedDelivered(t, db, adminID, custID, 2, 500, may) // 1000
	if err := SyncBill(db, adminID, custID, MonthOf(may)); err != nil {
		t.Fatalf("sync Mei: %v", err)
	}

	seedDelivered(t, db, adminID, custID, 4, 500, jun) // 2000
	if err := SyncBill(db, adminID, custID, MonthOf(jun)); err != nil {
		t.Fatalf("sync Juni: %v", err)
	}

	var junBill billModel.Bill
	if err := db.Where(
		"bill_admin_id = ? AND bill_customer_id = ? AND bill_month = ?",
		adminID, custID, MonthOf(jun).Format("2006-01-02"),
	).First(&junBill).Error; err != nil {
		t.Fatalf("load bill Juni: %v", err)
	}
	if !junBill.BillLastMonthRemaining.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("carry Juni = %s, want 1000", junBill.BillLastMonthRemaining)
	}

	out, err := OutstandingRemaining(db, adminID, custID)
	if err != nil {
		t.Fatalf("outstanding: %v", err)
	}
	if !out.Equal(decimal.NewFromInt(3000)) {
		t.Fatalf("outstanding = %s, want 3000 (carry tidak boleh dihitung dua kali)", out)
	}

	// bayar lunas lewat bill Juni → outstanding 0
	pay := &paymentModel.Payment{
		PaymentAdminID: adminID,
		PaymentBillID:  junBill.BillID,
		PaymentAmount:  decimal.NewFromInt(3000),
		PaymentPaidAt:  jun,
	}
	if err := db.Create(pay).Error; err != nil {
		t.Fatalf("seed payment: %v", err)
	}
	if err := RefreshStatus(db, &junBill); err != nil {
		t.Fatalf("refresh status: %v", err)
	}

	out, err = OutstandingRemaining(db, adminID, custID)
	if err != nil {
		t.Fatalf("outstanding lunas: %v", err)
	}
	if !out.IsZero() {
		t.Fatalf("outstanding setelah lunas = %s, want 0", out)
	}
}
