// file: internals/features/users/token/model/token_blacklist_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================
   Model: token_blacklist
   ========================= */

// TokenBlacklist menampung refresh/access token yang sudah di-logout
// sebelum kedaluwarsa alami. Baris yang lewat expiry dibersihkan
// scheduler.
type TokenBlacklist struct {
	TokenBlacklistID uuid.UUID `json:"token_blacklist_id" gorm:"column:token_blacklist_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	TokenBlacklistToken string `json:"-" gorm:"column:token_blacklist_token;type:text;not null;uniqueIndex:uq_token_blacklist_token"`

	TokenBlacklistExpiredAt time.Time `json:"token_blacklist_expired_at" gorm:"column:token_blacklist_expired_at;not null;index"`
	TokenBlacklistCreatedAt time.Time `json:"token_blacklist_created_at" gorm:"column:token_blacklist_created_at;autoCreateTime"`
}

func (TokenBlacklist) TableName() string { return "token_blacklist" }
