// file: internals/features/cylinders/entry/service/entry_service_test.go
package service

import (
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestOverReceiptError(t *testing.T) {
	err := OverReceiptError(12, 7)

	fe, ok := err.(*fiber.Error)
	if !ok {
		t.Fatalf("want *fiber.Error, got %T", err)
	}
	if fe.Code != fiber.StatusBadRequest {
		t.Errorf("Code = %d, want 400", fe.Code)
	}
	// pesan wajib menyebut jumlah yang dicoba DAN maksimumnya
	if !strings.Contains(fe.Message, "12") {
		t.Errorf("pesan tidak memuat jumlah yang dicoba: %q", fe.Message)
	}
	if !strings.Contains(fe.Message, "7") {
		t.Errorf("pesan tidak memuat maksimum: %q", fe.Message)
	}
}

func TestOverReceiptErrorNegativeMax(t *testing.T) {
	err := OverReceiptError(3, -2)
	fe := err.(*fiber.Error)
	// maksimum negatif (data historis aneh) ditampilkan sebagai 0
	if !strings.Contains(fe.Message, "only 0") {
		t.Errorf("maksimum negatif harus tampil 0: %q", fe.Message)
	}
}
