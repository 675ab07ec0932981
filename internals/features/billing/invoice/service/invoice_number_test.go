// file: internals/features/billing/invoice/service/invoice_number_test.go
package service

import (
	"testing"
	"time"
)

func month(y int, m time.Month) time.Time {
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func TestNumberPrefix(t *testing.T) {
	if got := NumberPrefix(month(2025, time.June)); got != "INV-202506" {
		t.Fatalf("NumberPrefix = %q", got)
	}
}

func TestNumberSuffix(t *testing.T) {
	tests := []struct {
		number string
		want   int64
	}{
		{"INV-202506-0001", 1},
		{"INV-202506-0042", 42},
		{"INV-202506-10000", 10000}, // lewat 4 digit tetap terbaca
		{"INV-202506-", 0},
		{"tanpa-strip-akhir", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := NumberSuffix(tt.number); got != tt.want {
			t.Errorf("NumberSuffix(%q) = %d, want %d", tt.number, got, tt.want)
		}
	}
}

func TestNextNumber(t *testing.T) {
	jun := month(2025, time.June)

	if got := NextNumber(jun, 0); got != "INV-202506-0001" {
		t.Fatalf("tenant baru harus mulai dari 0001, got %q", got)
	}

	// Menghapus nomor lama tidak boleh membuat nomor berikutnya tabrakan:
	// -0001 dihapus, -0002 masih ada → berikutnya -0003, bukan -0002 lagi.
	remaining := []string{"INV-202506-0002"}
	if got := NextNumber(jun, MaxSuffix(remaining)); got != "INV-202506-0003" {
		t.Fatalf("setelah hapus suffix rendah, got %q, want INV-202506-0003", got)
	}

	// Urutan berjalan per bulan, bukan per jumlah baris.
	nums := []string{"INV-202506-0001", "INV-202506-0005", "INV-202506-0003"}
	if got := NextNumber(jun, MaxSuffix(nums)); got != "INV-202506-0006" {
		t.Fatalf("NextNumber dari max suffix = %q, want INV-202506-0006", got)
	}

	if got := NextNumber(jun, 9999); got != "INV-202506-10000" {
		t.Fatalf("suffix boleh melebar melewati 4 digit, got %q", got)
	}
}

func TestMaxSuffixEmpty(t *testing.T) {
	if got := MaxSuffix(nil); got != 0 {
		t.Fatalf("MaxSuffix(nil) = %d", got)
	}
}
