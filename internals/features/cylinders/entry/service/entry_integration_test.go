// file: internals/features/cylinders/entry/service/entry_integration_test.go
package service

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	billModel "gasku_backend/internals/features/billing/bill/model"
	paymentModel "gasku_backend/internals/features/billing/payment/model"
	"gasku_backend/internals/features/cylinders/entry/model"
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
	if err := db.AutoMigrate(&model.CylinderEntry{}, &billModel.Bill{}, &paymentModel.Payment{}); err != nil {
		t.Fatalf("migrasi test DB: %v", err)
	}
	if err := db.Exec("TRUNCATE TABLE payments, bills, cylinder_entries CASCADE").Error; err != nil {
		t.Fatalf("bersihkan test DB: %v", err)
	}
	return db
}

func newEntry(adminID, custID uuid.UUID, typ string, qty int, price int64, date time.Time) *model.CylinderEntry {
	return &model.CylinderEntry{
		CylinderEntryAdminID:    adminID,
		CylinderEntryCustomerID: custID,
		CylinderEntryType:       typ,
		CylinderEntryLabel:      "45kg",
		CylinderEntryQuantity:   qty,
		CylinderEntryUnitPrice:  decimal.NewFromInt(price),
		CylinderEntryDate:       date,
	}
}

func loadBill(t *testing.T, db *gorm.DB, adminID, custID uuid.UUID, monthStart time.Time) *billModel.Bill {
	t.Helper()
	var bill billModel.Bill
	err := db.Where(
		"bill_admin_id = ? AND bill_customer_id = ? AND bill_month = ?",
		adminID, custID, monthStart.Format("2006-01-02"),
	).First(&bill).Error
	if err != nil {
		t.Fatalf("load bill: %v", err)
	}
	return &bill
}

func TestCreateAndDeleteEntrySyncsBill(t *testing.T) {
	db := setupTestDB(t)
	adminID, custID := uuid.New(), uuid.New()
	date := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)
	monthStart := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	first := newEntry(adminID, custID, model.EntryTypeDelivered, 10, 500, date)
	if err := CreateEntry(db, first); err != nil {
		t.Fatalf("create pertama: %v", err)
	}

	bill := loadBill(t, db, adminID, custID, monthStart)
	if bill.BillCylinderCount != 10 || !bill.BillCurrentMonthBill.Equal(decimal.NewFromInt(5000)) {
		t.Fatalf("bill setelah create = %d tabung / %s", bill.BillCylinderCount, bill.BillCurrentMonthBill)
	}
	if bill.BillStatus != billModel.BillStatusNotPaid {
		t.Fatalf("status = %q", bill.BillStatus)
	}

	second := newEntry(adminID, custID, model.EntryTypeDelivered, 2, 500, date)
	if err := CreateEntry(db, second); err != nil {
		t.Fatalf("create kedua: %v", err)
	}
	if bill = loadBill(t, db, adminID, custID, monthStart); bill.BillCylinderCount != 12 {
		t.Fatalf("bill setelah create kedua = %d tabung", bill.BillCylinderCount)
	}

	// hapus entry → bill bulan itu direkompute dalam transaksi yang sama
	if err := DeleteEntry(db, second); err != nil {
		t.Fatalf("delete: %v", err)
	}
	bill = loadBill(t, db, adminID, custID, monthStart)
	if bill.BillCylinderCount != 10 || !bill.BillCurrentMonthBill.Equal(decimal.NewFromInt(5000)) {
		t.Fatalf("bill setelah delete = %d tabung / %s", bill.BillCylinderCount, bill.BillCurrentMonthBill)
	}
}

func TestCreateEntryOverReceiptRejected(t *testing.T) {
	db := setupTestDB(t)
	adminID, custID := uuid.New(), uuid.New()
	date := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

	if err := CreateEntry(db, newEntry(adminID, custID, model.EntryTypeDelivered, 5, 500, date)); err != nil {
		t.Fatalf("deliver: %v", err)
	}
	if err := CreateEntry(db, newEntry(adminID, custID, model.EntryTypeReceived, 3, 500, date)); err != nil {
		t.Fatalf("receive 3 dari 5: %v", err)
	}

	// sisa outstanding tinggal 2 — terima 3 lagi harus ditolak
	err := CreateEntry(db, newEntry(adminID, custID, model.EntryTypeReceived, 3, 500, date))
	fe, ok := err.(*fiber.Error)
	if !ok || fe.Code != fiber.StatusBadRequest {
		t.Fatalf("over-receipt: err = %v, want 400", err)
	}
	if !strings.Contains(fe.Message, "only 2") {
		t.Fatalf("pesan harus menyebut sisa yang boleh diterima: %q", fe.Message)
	}

	// kombinasi lain (label beda) tidak punya pengantaran → max 0
	other := newEntry(adminID, custID, model.EntryTypeReceived, 1, 500, date)
	other.CylinderEntryLabel = "15kg"
	if err := CreateEntry(db, other); err == nil {
		t.Fatal("receive tanpa pengantaran harus ditolak")
	}
}
