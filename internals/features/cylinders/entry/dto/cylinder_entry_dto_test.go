// file: internals/features/cylinders/entry/dto/cylinder_entry_dto_test.go
package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	model "gasku_backend/internals/features/cylinders/entry/model"
)

func strPtr(s string) *string { return &s }

func TestCustomerRefPriority(t *testing.T) {
	id := uuid.New()

	// id menang atas ref
	req := CreateCylinderEntryRequest{
		CylinderEntryCustomerID:  &id,
		CylinderEntryCustomerRef: strPtr("C001 · Hotel Faisal"),
	}
	ref, err := req.CustomerRef()
	if err != nil {
		t.Fatalf("CustomerRef: %v", err)
	}
	if ref != id.String() {
		t.Errorf("ref = %q, want id", ref)
	}

	// hanya ref
	req2 := CreateCylinderEntryRequest{CylinderEntryCustomerRef: strPtr("  C001 · Hotel Faisal ")}
	ref2, err := req2.CustomerRef()
	if err != nil {
		t.Fatalf("CustomerRef: %v", err)
	}
	if ref2 != "C001 · Hotel Faisal" {
		t.Errorf("ref2 = %q", ref2)
	}

	// dua-duanya kosong → 400
	req3 := CreateCylinderEntryRequest{}
	if _, err := req3.CustomerRef(); err == nil {
		t.Error("tanpa id/ref harus error")
	}
}

func TestToModel(t *testing.T) {
	adminID, custID := uuid.New(), uuid.New()
	cash := decimal.NewFromInt(2000)

	req := CreateCylinderEntryRequest{
		CylinderEntryType:         "received",
		CylinderEntryLabel:        " 45kg ",
		CylinderEntryQuantity:     4,
		CylinderEntryUnitPrice:    decimal.NewFromInt(500),
		CylinderEntryDate:         "2025-06-10",
		CylinderEntryCashReceived: &cash,
		CylinderEntryPaymentNote:  strPtr("partial"),
	}

	e, err := req.ToModel(adminID, custID)
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if e.CylinderEntryType != model.EntryTypeReceived {
		t.Errorf("type = %q", e.CylinderEntryType)
	}
	if e.CylinderEntryLabel != "45kg" {
		t.Errorf("label = %q", e.CylinderEntryLabel)
	}
	if e.CylinderEntryDate.Format("2006-01-02") != "2025-06-10" {
		t.Errorf("date = %s", e.CylinderEntryDate)
	}
	if e.CylinderEntryCashReceived == nil || !e.CylinderEntryCashReceived.Equal(cash) {
		t.Error("cash_received hilang untuk RECEIVED")
	}

	// catatan pembayaran tidak dibawa ke DELIVERED
	req.CylinderEntryType = "DELIVERED"
	e2, err := req.ToModel(adminID, custID)
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if e2.CylinderEntryCashReceived != nil || e2.CylinderEntryPaymentNote != nil {
		t.Error("field pembayaran harus nil untuk DELIVERED")
	}

	// tanggal rusak
	req.CylinderEntryDate = "10-06-2025"
	if _, err := req.ToModel(adminID, custID); err == nil {
		t.Error("tanggal salah format harus error")
	}
}
