// file: internals/features/customers/customer/service/ref_parser_test.go
package service

import "testing"

func TestSplitRef(t *testing.T) {
	cases := []struct {
		name     string
		ref      string
		wantCode string
		wantName string
	}{
		{"bentuk normal", "C001 · Hotel Faisal", "C001", "Hotel Faisal"},
		{"tanpa spasi", "C001·Hotel Faisal", "C001", "Hotel Faisal"},
		{"middle-dot ganda di nama", "C001 · Hotel · Faisal", "C001", "Hotel   Faisal"},
		{"tanpa pemisah", "C001", "C001", ""},
		{"kosong", "", "", ""},
		{"hanya pemisah", "·", "", ""},
		{"spasi berlebih", "  C001  ·  Hotel Faisal  ", "C001", "Hotel Faisal"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, name := SplitRef(tc.ref)
			if code != tc.wantCode || name != tc.wantName {
				t.Errorf("SplitRef(%q) = (%q, %q), want (%q, %q)", tc.ref, code, name, tc.wantCode, tc.wantName)
			}
		})
	}
}
