// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gasku_backend/internals/features/users/auth/dto"
	"gasku_backend/internals/features/users/auth/service"
	helper "gasku_backend/internals/helpers"
)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

/* =========================================================
   PUBLIC: /api/auth
   ========================================================= */

// Register membuat tenant baru (role admin).
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	user, err := service.Register(ctrl.DB, req.UserName, req.UserEmail, req.UserPassword)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Registrasi berhasil", user)
}

func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	user, pair, err := service.Login(ctrl.DB, req.UserEmail, req.UserPassword)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"user":   user,
		"tokens": pair,
	})
}

func (ctrl *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var req dto.GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	user, pair, err := service.LoginWithGoogle(ctrl.DB, req.IDToken)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Login Google berhasil", fiber.Map{
		"user":   user,
		"tokens": pair,
	})
}

func (ctrl *AuthController) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	pair, err := service.Refresh(ctrl.DB, req.RefreshToken)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Token diperbarui", pair)
}

func (ctrl *AuthController) ForgotPassword(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := service.RequestPasswordReset(ctrl.DB, req.UserEmail); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.WritePGError(c, err)
	}
	// respons sama untuk email terdaftar/tidak
	return helper.JsonOK(c, "Jika email terdaftar, kode OTP sudah dikirim", nil)
}

func (ctrl *AuthController) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := service.ResetPassword(ctrl.DB, req.UserEmail, req.OTPCode, req.NewPassword); err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Password berhasil direset", nil)
}

/* =========================================================
   PROTECTED: /api/a
   ========================================================= */

// Logout mem-blacklist access token aktif + refresh token (jika dikirim).
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	var req dto.LogoutRequest
	_ = c.BodyParser(&req) // body opsional

	raw, _ := c.Locals("raw_token").(string)
	if err := service.Logout(ctrl.DB, raw, req.RefreshToken); err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Logout berhasil", nil)
}
