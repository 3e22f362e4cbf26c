package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister    = "user registered successfully"
	MessageSuccessLogin       = "login successful"
	MessageSuccessRefresh     = "token refreshed successfully"
	MessageSuccessGetUser     = "success get user"
	MessageSuccessGetUsers    = "success get users"
	MessageSuccessCreateUser  = "user created successfully"
	MessageSuccessSweepTokens = "expired refresh tokens removed"

	MessageFailedRegister   = "failed to register user"
	MessageFailedLogin      = "failed to login"
	MessageFailedRefresh    = "failed to refresh token"
	MessageFailedGetUser    = "failed to get user"
	MessageFailedGetUsers   = "failed to get users"
	MessageFailedCreateUser = "failed to create user"
	MessageUnauthorized     = "unauthorized"

	ErrPasswordMismatch    = errors.New("password and confirm password do not match")
	ErrEmailAlreadyExists  = errors.New("email already registered")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrMissingCredentials  = errors.New("missing credentials")
	ErrTokenInvalid        = errors.New("token invalid")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenInvalid = errors.New("refresh token invalid")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

type (
	RegisterRequest struct {
		Email           string `json:"email" validate:"required,email,max=255"`
		DisplayName     string `json:"displayName" validate:"required,min=1,max=100"`
		Password        string `json:"password" validate:"required,min=6,max=72"`
		ConfirmPassword string `json:"confirmPassword" validate:"required"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	RefreshTokenRequest struct {
		RefreshToken string `json:"refreshToken" validate:"required"`
	}

	TokenResponse struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}

	AuthResponse struct {
		TokenResponse
		User UserResponse `json:"user"`
	}

	UserResponse struct {
		ID          string    `json:"id"`
		Email       string    `json:"email"`
		DisplayName string    `json:"displayName"`
		CreatedAt   time.Time `json:"createdAt"`
	}
)
