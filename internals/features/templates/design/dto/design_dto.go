// file: internals/features/templates/design/dto/design_dto.go
package dto

import (
	"encoding/json"

	"github.com/lib/pq"
)

/* =========================================================
   REQUEST: Save design (blob disimpan wholesale)
   ========================================================= */

// SaveDesignRequest membawa blob desain apa adanya. Tidak ada validasi
// skema di sisi tulis; nilai rusak disanitasi saat dibaca (Normalize).
type SaveDesignRequest struct {
	Design json.RawMessage `json:"design" validate:"required"`
}

/* =========================================================
   REQUEST: Update settings umum tenant
   ========================================================= */

type UpdateSettingsRequest struct {
	BusinessName    *string        `json:"business_name"    validate:"omitempty,max=120"`
	BusinessAddress *string        `json:"business_address"`
	BusinessPhone   *string        `json:"business_phone"   validate:"omitempty,max=30"`
	NotifyEmails    pq.StringArray `json:"notify_emails"    validate:"omitempty,dive,email"`
}
