// file: internals/features/users/token/service/token_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"gasku_backend/internals/configs"
	userModel "gasku_backend/internals/features/users/user/model"
)

func testUser(t *testing.T) *userModel.User {
	t.Helper()
	id := uuid.New()
	return &userModel.User{
		UserID:          id,
		UserAdminID:     id,
		UserName:        "Ali",
		UserEmail:       "ali@example.com",
		UserRole:        userModel.RoleAdmin,
		UserPermissions: datatypes.JSON([]byte(`{"billing":"view"}`)),
	}
}

func withTestSecrets(t *testing.T) {
	t.Helper()
	oldAccess, oldRefresh := configs.JWTSecret, configs.JWTRefreshSecret
	configs.JWTSecret = "test-access-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"
	t.Cleanup(func() {
		configs.JWTSecret = oldAccess
		configs.JWTRefreshSecret = oldRefresh
	})
}

func TestIssuePairClaims(t *testing.T) {
	withTestSecrets(t)
	u := testUser(t)

	pair, err := IssuePair(u)
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("token kosong")
	}
	if pair.ExpiresIn != int64(AccessTokenTTL.Seconds()) {
		t.Errorf("ExpiresIn = %d", pair.ExpiresIn)
	}

	tok, err := jwt.Parse(pair.AccessToken, func(tk *jwt.Token) (any, error) {
		return []byte(configs.JWTSecret), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("access token tidak valid: %v", err)
	}
	claims := tok.Claims.(jwt.MapClaims)

	if claims["user_id"] != u.UserID.String() {
		t.Errorf("user_id = %v", claims["user_id"])
	}
	if claims["admin_id"] != u.UserAdminID.String() {
		t.Errorf("admin_id = %v", claims["admin_id"])
	}
	if claims["role"] != "admin" {
		t.Errorf("role = %v", claims["role"])
	}
	if claims["typ"] != "access" {
		t.Errorf("typ = %v", claims["typ"])
	}
	perms, ok := claims["permissions"].(map[string]any)
	if !ok || perms["billing"] != "view" {
		t.Errorf("permissions = %v", claims["permissions"])
	}
}

func TestParseRefreshRoundTrip(t *testing.T) {
	withTestSecrets(t)
	u := testUser(t)

	pair, err := IssuePair(u)
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}

	userID, exp, err := ParseRefresh(pair.RefreshToken)
	if err != nil {
		t.Fatalf("ParseRefresh: %v", err)
	}
	if userID != u.UserID {
		t.Errorf("userID = %s, want %s", userID, u.UserID)
	}
	if time.Until(exp) <= 0 {
		t.Errorf("exp sudah lewat: %s", exp)
	}
}

func TestParseRefreshRejectsAccessToken(t *testing.T) {
	withTestSecrets(t)
	u := testUser(t)

	pair, err := IssuePair(u)
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}

	// access token ditandatangani secret lain + typ berbeda
	if _, _, err := ParseRefresh(pair.AccessToken); err == nil {
		t.Error("access token harus ditolak sebagai refresh token")
	}
}

func TestTokenExpiry(t *testing.T) {
	withTestSecrets(t)
	u := testUser(t)

	pair, err := IssuePair(u)
	if err != nil {
		t.Fatalf("IssuePair: %v", err)
	}

	exp := TokenExpiry(pair.AccessToken)
	if exp.IsZero() {
		t.Fatal("exp tidak terbaca")
	}
	wantRough := time.Now().Add(AccessTokenTTL)
	if exp.Before(wantRough.Add(-time.Minute)) || exp.After(wantRough.Add(time.Minute)) {
		t.Errorf("exp = %s, want sekitar %s", exp, wantRough)
	}

	if got := TokenExpiry("bukan.token.jwt"); !got.IsZero() {
		t.Errorf("token rusak harus zero time, got %s", got)
	}
}
