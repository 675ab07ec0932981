// file: internals/features/billing/render/format_test.go
package render

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFormatPKR(t *testing.T) {
	cases := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{"nol", decimal.Zero, "Rs 0"},
		{"tiga digit", decimal.NewFromInt(500), "Rs 500"},
		{"ribuan", decimal.NewFromInt(5000), "Rs 5,000"},
		{"jutaan", decimal.NewFromInt(1234567), "Rs 1,234,567"},
		{"pecahan dibulatkan", decimal.NewFromFloat(1499.5), "Rs 1,500"},
		{"pecahan ke bawah", decimal.NewFromFloat(1499.4), "Rs 1,499"},
		{"negatif", decimal.NewFromInt(-1250), "-Rs 1,250"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatPKR(tc.amount); got != tc.want {
				t.Errorf("FormatPKR(%s) = %q, want %q", tc.amount, got, tc.want)
			}
		})
	}
}

func TestFormatQty(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{25000, "25,000"},
	}
	for _, tc := range cases {
		if got := FormatQty(tc.in); got != tc.want {
			t.Errorf("FormatQty(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(d); got != "07 Mar 2025" {
		t.Errorf("FormatDate = %q, want %q", got, "07 Mar 2025")
	}
}
