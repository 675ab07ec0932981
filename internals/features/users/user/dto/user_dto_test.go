// file: internals/features/users/user/dto/user_dto_test.go
package dto

import "testing"

func TestValidatePermissions(t *testing.T) {
	cases := []struct {
		name    string
		perms   map[string]string
		wantErr bool
	}{
		{"kosong valid", map[string]string{}, false},
		{"nil valid", nil, false},
		{"lengkap valid", map[string]string{
			"customers": "edit",
			"cylinders": "view",
			"billing":   "no-access",
			"reports":   "hidden",
		}, false},
		{"modul typo", map[string]string{"cylinder": "view"}, true},
		{"level typo", map[string]string{"billing": "read"}, true},
		{"case-insensitive", map[string]string{"Billing": "VIEW"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePermissions(tc.perms)
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidatePermissions(%v) err = %v, wantErr %v", tc.perms, err, tc.wantErr)
			}
		})
	}
}
