// file: internals/features/users/token/service/token_service.go
package service

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gasku_backend/internals/configs"
	tokenModel "gasku_backend/internals/features/users/token/model"
	userModel "gasku_backend/internals/features/users/user/model"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)

/* =========================================================
   ISSUE
   ========================================================= */

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"` // detik, untuk access token
}

// IssuePair menerbitkan access + refresh token untuk satu user.
// Claims access token = persis yang dibaca guard (user_id, admin_id,
// role, user_name, permissions, typ).
func IssuePair(u *userModel.User) (*TokenPair, error) {
	now := time.Now()

	access, err := signToken(jwt.MapClaims{
		"user_id":     u.UserID.String(),
		"admin_id":    u.UserAdminID.String(),
		"role":        u.UserRole,
		"user_name":   u.UserName,
		"permissions": permissionsMap(u),
		"typ":         "access",
		"iat":         now.Unix(),
		"exp":         now.Add(AccessTokenTTL).Unix(),
	}, configs.JWTSecret)
	if err != nil {
		return nil, err
	}

	refresh, err := signToken(jwt.MapClaims{
		"user_id": u.UserID.String(),
		"typ":     "refresh",
		"iat":     now.Unix(),
		"exp":     now.Add(RefreshTokenTTL).Unix(),
	}, configs.JWTRefreshSecret)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(AccessTokenTTL.Seconds()),
	}, nil
}

func signToken(claims jwt.MapClaims, secret string) (string, error) {
	if strings.TrimSpace(secret) == "" {
		return "", errors.New("JWT secret belum dikonfigurasi")
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(secret))
}

func permissionsMap(u *userModel.User) map[string]string {
	perms := map[string]string{}
	if len(u.UserPermissions) > 0 {
		_ = json.Unmarshal(u.UserPermissions, &perms)
	}
	return perms
}

/* =========================================================
   REFRESH
   ========================================================= */

// ParseRefresh memverifikasi refresh token dan mengembalikan user_id.
func ParseRefresh(raw string) (uuid.UUID, time.Time, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(configs.JWTRefreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, time.Time{}, errors.New("refresh token tidak valid")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, time.Time{}, errors.New("refresh token tidak valid")
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return uuid.Nil, time.Time{}, errors.New("bukan refresh token")
	}

	idStr, _ := claims["user_id"].(string)
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, time.Time{}, errors.New("refresh token tidak valid")
	}

	exp := time.Time{}
	if v, ok := claims["exp"].(float64); ok {
		exp = time.Unix(int64(v), 0)
	}
	return id, exp, nil
}

/* =========================================================
   BLACKLIST
   ========================================================= */

// Blacklist mencatat token yang di-logout sampai expiry-nya lewat.
func Blacklist(db *gorm.DB, raw string, expiredAt time.Time) error {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	if expiredAt.IsZero() {
		expiredAt = time.Now().Add(RefreshTokenTTL)
	}
	row := tokenModel.TokenBlacklist{
		TokenBlacklistToken:     raw,
		TokenBlacklistExpiredAt: expiredAt,
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token_blacklist_token"}},
		DoNothing: true,
	}).Create(&row).Error
}

// IsBlacklisted dipakai middleware AuthJWT lewat closure BlacklistChecker.
func IsBlacklisted(db *gorm.DB, raw string) (bool, error) {
	var count int64
	err := db.Model(&tokenModel.TokenBlacklist{}).
		Where("token_blacklist_token = ?", raw).
		Where("token_blacklist_expired_at > ?", time.Now()).
		Count(&count).Error
	return count > 0, err
}

// TokenExpiry membaca exp dari token tanpa memverifikasi signature —
// cukup untuk menentukan sampai kapan baris blacklist disimpan.
func TokenExpiry(raw string) time.Time {
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return time.Time{}
	}
	if v, ok := claims["exp"].(float64); ok {
		return time.Unix(int64(v), 0)
	}
	return time.Time{}
}
