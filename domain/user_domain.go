package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessRegister      = "user registered successfully"
	MessageSuccessLogin         = "login successful"
	MessageSuccessGetProfile    = "success get profile"
	MessageSuccessUpdateProfile = "profile updated successfully"
	MessageSuccessUploadImage   = "profile image uploaded successfully"

	MessageFailedRegister      = "failed to register user"
	MessageFailedLogin         = "failed to login"
	MessageFailedGetProfile    = "failed to get profile"
	MessageFailedUpdateProfile = "failed to update profile"
	MessageFailedUploadImage   = "failed to upload profile image"

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyUsed   = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrCredentialsInvalid = errors.New("invalid email or password")
	ErrImageRequired      = errors.New("image file is required")
)

type (
	RegisterRequest struct {
		Username string `json:"username" validate:"required,min=3,max=50"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		AccessToken string      `json:"access_token"`
		User        UserProfile `json:"user"`
	}

	UpdateProfileRequest struct {
		Username string `json:"username,omitempty" validate:"omitempty,min=3,max=50"`
		Email    string `json:"email,omitempty" validate:"omitempty,email"`
	}

	UploadProfileImageRequest struct {
		Image *multipart.FileHeader
	}

	UserProfile struct {
		ID        string    `json:"id"`
		Username  string    `json:"username"`
		Email     string    `json:"email"`
		ImageURL  string    `json:"image_url,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}
)
