// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"gasku_backend/internals/configs"
	authModel "gasku_backend/internals/features/users/auth/model"
	tokenService "gasku_backend/internals/features/users/token/service"
	userModel "gasku_backend/internals/features/users/user/model"
)

const otpTTL = 10 * time.Minute

/* =========================================================
   REGISTER & LOGIN
   ========================================================= */

// Register membuat akun admin (tenant baru): user_admin_id diisi
// user_id-nya sendiri setelah insert.
func Register(db *gorm.DB, name, email, password string) (*userModel.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var count int64
	if err := db.Model(&userModel.User{}).Scopes(userModel.ScopeAlive).
		Where("user_email = ?", email).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fiber.NewError(fiber.StatusConflict, "Email sudah terdaftar")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &userModel.User{
		UserName:     strings.TrimSpace(name),
		UserEmail:    email,
		UserPassword: string(hash),
		UserRole:     userModel.RoleAdmin,
		UserIsActive: true,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		// admin adalah tenant-nya sendiri
		user.UserAdminID = user.UserID
		return tx.Model(user).Update("user_admin_id", user.UserID).Error
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func Login(db *gorm.DB, email, password string) (*userModel.User, *tokenService.TokenPair, error) {
	user, err := findActiveByEmail(db, email)
	if err != nil {
		return nil, nil, err
	}
	if user.UserPassword == "" {
		return nil, nil, fiber.NewError(fiber.StatusUnauthorized, "Akun ini login via Google")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(password)) != nil {
		return nil, nil, fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
	}

	pair, err := tokenService.IssuePair(user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

/* =========================================================
   GOOGLE LOGIN
   ========================================================= */

// LoginWithGoogle memverifikasi ID token dari frontend. Akun baru dibuat
// sebagai admin (tenant baru) tanpa password.
func LoginWithGoogle(db *gorm.DB, idToken string) (*userModel.User, *tokenService.TokenPair, error) {
	if configs.GoogleClientID == "" {
		return nil, nil, fiber.NewError(fiber.StatusServiceUnavailable, "Login Google belum dikonfigurasi")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{configs.GoogleClientID}); err != nil {
		return nil, nil, fiber.NewError(fiber.StatusUnauthorized, "Google ID token tidak valid")
	}
	info, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil || info.Email == "" {
		return nil, nil, fiber.NewError(fiber.StatusUnauthorized, "Google ID token tidak valid")
	}

	email := strings.ToLower(strings.TrimSpace(info.Email))

	var user userModel.User
	err = db.Scopes(userModel.ScopeAlive).Where("user_email = ?", email).First(&user).Error
	switch {
	case err == nil:
		if !user.UserIsActive {
			return nil, nil, fiber.NewError(fiber.StatusForbidden, "Akun dinonaktifkan")
		}
		if user.UserGoogleID == nil {
			sub := info.Sub
			_ = db.Model(&user).Update("user_google_id", sub).Error
			user.UserGoogleID = &sub
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		name := strings.TrimSpace(info.Name)
		if name == "" {
			name = strings.Split(email, "@")[0]
		}
		sub := info.Sub
		user = userModel.User{
			UserName:     name,
			UserEmail:    email,
			UserRole:     userModel.RoleAdmin,
			UserGoogleID: &sub,
			UserIsActive: true,
		}
		if err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			user.UserAdminID = user.UserID
			return tx.Model(&user).Update("user_admin_id", user.UserID).Error
		}); err != nil {
			return nil, nil, err
		}
	default:
		return nil, nil, err
	}

	pair, err := tokenService.IssuePair(&user)
	if err != nil {
		return nil, nil, err
	}
	return &user, pair, nil
}

/* =========================================================
   REFRESH & LOGOUT
   ========================================================= */

func Refresh(db *gorm.DB, refreshToken string) (*tokenService.TokenPair, error) {
	black, err := tokenService.IsBlacklisted(db, refreshToken)
	if err != nil {
		return nil, err
	}
	if black {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Token revoked")
	}

	userID, exp, err := tokenService.ParseRefresh(refreshToken)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}

	var user userModel.User
	if err := db.Scopes(userModel.ScopeAlive).
		Where("user_id = ? AND user_is_active = TRUE", userID).
		First(&user).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "User tidak ditemukan")
	}

	// rotasi: refresh lama hangus begitu yang baru terbit
	if err := tokenService.Blacklist(db, refreshToken, exp); err != nil {
		log.Printf("⚠️ gagal blacklist refresh token lama: %v", err)
	}
	return tokenService.IssuePair(&user)
}

func Logout(db *gorm.DB, accessToken, refreshToken string) error {
	if accessToken != "" {
		if err := tokenService.Blacklist(db, accessToken, tokenService.TokenExpiry(accessToken)); err != nil {
			return err
		}
	}
	if refreshToken != "" {
		if err := tokenService.Blacklist(db, refreshToken, tokenService.TokenExpiry(refreshToken)); err != nil {
			return err
		}
	}
	return nil
}

/* =========================================================
   FORGOT / RESET PASSWORD (OTP via email)
   ========================================================= */

// RequestPasswordReset mengirim OTP 6 digit. Selalu sukses diam-diam
// untuk email yang tidak terdaftar (tidak membocorkan keberadaan akun).
func RequestPasswordReset(db *gorm.DB, email string) error {
	user, err := findActiveByEmail(db, email)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) && fe.Code == fiber.StatusUnauthorized {
			return nil
		}
		return err
	}

	if !configs.EmailConfigured() {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Email belum dikonfigurasi di server")
	}

	code, err := generateOTP()
	if err != nil {
		return err
	}

	otp := authModel.PasswordResetOTP{
		PasswordResetUserID:    user.UserID,
		PasswordResetCode:      code,
		PasswordResetExpiresAt: time.Now().Add(otpTTL),
	}
	if err := db.Create(&otp).Error; err != nil {
		return err
	}
	return SendOTPEmail(user.UserEmail, user.UserName, code)
}

func ResetPassword(db *gorm.DB, email, code, newPassword string) error {
	user, err := findActiveByEmail(db, email)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Kode OTP tidak valid atau kedaluwarsa")
	}

	var otp authModel.PasswordResetOTP
	if err := db.
		Where("password_reset_user_id = ?", user.UserID).
		Where("password_reset_code = ?", code).
		Where("password_reset_used = FALSE").
		Where("password_reset_expires_at > ?", time.Now()).
		Order("password_reset_created_at DESC").
		First(&otp).Error; err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Kode OTP tidak valid atau kedaluwarsa")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&userModel.User{}).
			Where("user_id = ?", user.UserID).
			Update("user_password", string(hash)).Error; err != nil {
			return err
		}
		return tx.Model(&otp).Update("password_reset_used", true).Error
	})
}

/* =========================================================
   INTERNAL
   ========================================================= */

func findActiveByEmail(db *gorm.DB, email string) (*userModel.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user userModel.User
	if err := db.Scopes(userModel.ScopeAlive).
		Where("user_email = ?", email).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
		}
		return nil, err
	}
	if !user.UserIsActive {
		return nil, fiber.NewError(fiber.StatusForbidden, "Akun dinonaktifkan")
	}
	return &user, nil
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
