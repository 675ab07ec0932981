// file: internals/features/users/auth/model/password_reset_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================
   Model: password_reset_otp
   ========================= */

// PasswordResetOTP: kode 6 digit sekali pakai yang dikirim via email.
// Berlaku 10 menit; ditandai used setelah sukses dipakai.
type PasswordResetOTP struct {
	PasswordResetID uuid.UUID `json:"password_reset_id" gorm:"column:password_reset_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	PasswordResetUserID uuid.UUID `json:"password_reset_user_id" gorm:"column:password_reset_user_id;type:uuid;not null;index"`

	PasswordResetCode string `json:"-" gorm:"column:password_reset_code;type:varchar(6);not null"`

	PasswordResetExpiresAt time.Time `json:"password_reset_expires_at" gorm:"column:password_reset_expires_at;not null;index"`
	PasswordResetUsed      bool      `json:"password_reset_used"       gorm:"column:password_reset_used;not null;default:false"`

	PasswordResetCreatedAt time.Time `json:"password_reset_created_at" gorm:"column:password_reset_created_at;autoCreateTime"`
}

func (PasswordResetOTP) TableName() string { return "password_reset_otp" }
