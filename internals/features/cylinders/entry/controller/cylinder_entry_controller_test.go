// file: internals/features/cylinders/entry/controller/cylinder_entry_controller_test.go
package controller

import (
	"testing"
	"time"

	customerModel "gasku_backend/internals/features/customers/customer/model"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hotel Faisal", "hotel-faisal"},
		{"  Ali & Sons  ", "ali-sons"},
		{"Café Noor", "caf-noor"},
		{"ABC-123", "abc-123"},
		{"///", ""},
	}
	for _, tc := range cases {
		if got := slugify(tc.in); got != tc.want {
			t.Errorf("slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBillFilename(t *testing.T) {
	date := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

	cust := &customerModel.Customer{CustomerName: "Hotel Faisal"}
	if got := billFilename(cust, date); got != "cylinder-bill-hotel-faisal-2025-06-10.pdf" {
		t.Errorf("billFilename = %q", got)
	}
	if got := billFilename(nil, date); got != "cylinder-bill-all-2025-06-10.pdf" {
		t.Errorf("billFilename(nil) = %q", got)
	}
}
