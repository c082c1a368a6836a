package domain

import (
	"errors"
)

var (
	MessageSuccessRegister        = "user registered successfully"
	MessageSuccessLogin           = "login success"
	MessageSuccessGetUser         = "user retrieved successfully"
	MessageSuccessUpdateUser      = "user updated successfully"
	MessageSuccessVerifyEmail     = "email verified successfully"
	MessageSuccessSendVerifyEmail = "verification email sent"

	MessageFailedRegister        = "failed to register user"
	MessageFailedLogin           = "failed to login"
	MessageFailedGetUser         = "failed to retrieve user"
	MessageFailedUpdateUser      = "failed to update user"
	MessageFailedVerifyEmail     = "failed to verify email"
	MessageFailedSendVerifyEmail = "failed to send verification email"

	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountNotVerified = errors.New("account email not verified")
	ErrPasswordHashFailed = errors.New("failed to hash password")
)

type (
	UserRegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	UserRegisterResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	UserLoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	UserLoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	UserSendVerifyRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	UserUpdateRequest struct {
		Name     string `json:"name" validate:"omitempty"`
		Password string `json:"password" validate:"omitempty,min=8"`
	}

	UserResponse struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Email    string `json:"email"`
		Verified bool   `json:"verified"`
	}
)
