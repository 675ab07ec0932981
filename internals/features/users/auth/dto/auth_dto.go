// file: internals/features/users/auth/dto/auth_dto.go
package dto

type RegisterRequest struct {
	UserName     string `json:"user_name"     validate:"required,min=2,max=80"`
	UserEmail    string `json:"user_email"    validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	UserEmail    string `json:"user_email"    validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type ForgotPasswordRequest struct {
	UserEmail string `json:"user_email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	UserEmail   string `json:"user_email"   validate:"required,email"`
	OTPCode     string `json:"otp_code"     validate:"required,len=6"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}
