// file: internals/features/billing/bill/service/billing_math_test.go
package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	billModel "gasku_backend/internals/features/billing/bill/model"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestRemainingBalance(t *testing.T) {
	cases := []struct {
		name                string
		last, current, paid decimal.Decimal
		want                decimal.Decimal
	}{
		{"contoh dasar", d(1000), d(2000), d(1500), d(1500)},
		{"lunas persis", d(0), d(2000), d(2000), d(0)},
		{"lebih bayar jadi negatif", d(0), d(2000), d(2500), d(-500)},
		{"tanpa pembayaran", d(500), d(1000), d(0), d(1500)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := RemainingBalance(tc.last, tc.current, tc.paid)
			if !got.Equal(tc.want) {
				t.Errorf("RemainingBalance = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestClampedRemaining(t *testing.T) {
	if got := ClampedRemaining(d(0), d(2000), d(2500)); !got.Equal(d(0)) {
		t.Errorf("lebih bayar harus clamp ke 0, got %s", got)
	}
	if got := ClampedRemaining(d(1000), d(2000), d(1500)); !got.Equal(d(1500)) {
		t.Errorf("sisa positif berubah: %s", got)
	}
}

func TestStatusFor(t *testing.T) {
	cases := []struct {
		name        string
		total, paid decimal.Decimal
		want        string
	}{
		{"belum bayar", d(3000), d(0), billModel.BillStatusNotPaid},
		{"bayar sebagian", d(3000), d(1500), billModel.BillStatusPartiallyPaid},
		{"lunas persis", d(3000), d(3000), billModel.BillStatusPaid},
		{"lebih bayar", d(3000), d(3500), billModel.BillStatusPaid},
		{"bayar 0 untuk tagihan 0", d(0), d(0), billModel.BillStatusNotPaid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StatusFor(tc.total, tc.paid); got != tc.want {
				t.Errorf("StatusFor(%s, %s) = %q, want %q", tc.total, tc.paid, got, tc.want)
			}
		})
	}
}

func TestMonthOf(t *testing.T) {
	in := time.Date(2025, time.June, 17, 13, 45, 0, 0, time.FixedZone("PKT", 5*3600))
	got := MonthOf(in)
	want := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("MonthOf = %s, want %s", got, want)
	}
}
