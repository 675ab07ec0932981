// file: internals/features/billing/invoice/service/invoice_integration_test.go
package service

import (
	"os"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	billModel "gasku_backend/internals/features/billing/bill/model"
	"gasku_backend/internals/features/billing/invoice/model"
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
	if err := db.AutoMigrate(&billModel.Bill{}, &model.Invoice{}); err != nil {
		t.Fatalf("migrasi test DB: %v", err)
	}
	if err := db.Exec("TRUNCATE TABLE invoices, bills CASCADE").Error; err != nil {
		t.Fatalf("bersihkan test DB: %v", err)
	}
	return db
}

func seedBill(t *testing.T, db *gorm.DB, adminID uuid.UUID, monthTime time.Time) *billModel.Bill {
	t.Helper()
	bill := &billModel.Bill{
		BillAdminID:    adminID,
		BillCustomerID: uuid.New(),
		BillMonth:      monthTime,
	}
	if err := db.Create(bill).Error; err != nil {
		t.Fatalf("seed bill: %v", err)
	}
	return bill
}

func TestGenerateInvoiceOnePerBill(t *testing.T) {
	db := setupTestDB(t)
	jun := month(2025, time.June)
	tenant := uuid.New()
	bill := seedBill(t, db, tenant, jun)

	inv, err := Generate(db, tenant, bill.BillID)
	if err != nil {
		t.Fatalf("generate pertama: %v", err)
	}
	if inv.InvoiceNumber != "INV-202506-0001" {
		t.Fatalf("nomor pertama = %q", inv.InvoiceNumber)
	}

	// 1:1 — selama invoice masih ada, regenerasi ditolak
	_, err = Generate(db, tenant, bill.BillID)
	fe, ok := err.(*fiber.Error)
	if !ok || fe.Code != fiber.StatusConflict {
		t.Fatalf("generate kedua: err = %v, want 409", err)
	}

	// hapus → slot 1:1 terbuka lagi
	if err := db.Delete(&model.Invoice{}, "invoice_id = ?", inv.InvoiceID).Error; err != nil {
		t.Fatalf("hapus invoice: %v", err)
	}
	inv2, err := Generate(db, tenant, bill.BillID)
	if err != nil {
		t.Fatalf("generate setelah hapus: %v", err)
	}
	if inv2.InvoiceNumber != "INV-202506-0002" {
		t.Fatalf("nomor setelah hapus = %q", inv2.InvoiceNumber)
	}
}

func TestGenerateInvoiceNumbersPerTenant(t *testing.T) {
	db := setupTestDB(t)
	jun := month(2025, time.June)
	tenantA := uuid.New()
	tenantB := uuid.New()

	invA, err := Generate(db, tenantA, seedBill(t, db, tenantA, jun).BillID)
	if err != nil {
		t.Fatalf("tenant A: %v", err)
	}

	// nomor unik per tenant: tenant kedua juga mulai dari -0001 di bulan
	// yang sama tanpa bentrok unique index
	invB, err := Generate(db, tenantB, seedBill(t, db, tenantB, jun).BillID)
	if err != nil {
		t.Fatalf("tenant B: %v", err)
	}
	if invA.InvoiceNumber != "INV-202506-0001" || invB.InvoiceNumber != "INV-202506-0001" {
		t.Fatalf("nomor = %q / %q, keduanya harus INV-202506-0001", invA.InvoiceNumber, invB.InvoiceNumber)
	}
}

func TestGenerateInvoiceAfterDeletingLowerNumber(t *testing.T) {
	db := setupTestDB(t)
	jun := month(2025, time.June)
	tenant := uuid.New()

	b1 := seedBill(t, db, tenant, jun)
	b2 := seedBill(t, db, tenant, jun)

	inv1, err := Generate(db, tenant, b1.BillID)
	if err != nil {
		t.Fatalf("generate b1: %v", err)
	}
	if _, err := Generate(db, tenant, b2.BillID); err != nil {
		t.Fatalf("generate b2: %v", err)
	}

	// hapus -0001 saat -0002 masih ada: nomor berikutnya harus -0003,
	// bukan -0002 lagi (itu bentrok dan memblokir regenerasi selamanya)
	if err := db.Delete(&model.Invoice{}, "invoice_id = ?", inv1.InvoiceID).Error; err != nil {
		t.Fatalf("hapus invoice: %v", err)
	}
	inv3, err := Generate(db, tenant, b1.BillID)
	if err != nil {
		t.Fatalf("regenerasi b1: %v", err)
	}
	if inv3.InvoiceNumber != "INV-202506-0003" {
		t.Fatalf("nomor regenerasi = %q, want INV-202506-0003", inv3.InvoiceNumber)
	}
}
