package user

import (
	"context"
	"errors"
	"fmt"
	"log"

	"recipe-room-backend/domain"
	"recipe-room-backend/entities"
	"recipe-room-backend/internal/utils/mailing"
	"recipe-room-backend/internal/utils/storage"
	"recipe-room-backend/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.UserProfile, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (domain.UserProfile, error)
		UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest, userID string) (domain.UserProfile, error)
		UploadProfileImage(ctx context.Context, req domain.UploadProfileImageRequest, userID string) (string, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		s3             storage.AwsS3
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, s3 storage.AwsS3) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		s3:             s3,
	}
}

func toUserProfile(user *entities.User) domain.UserProfile {
	return domain.UserProfile{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		ImageURL:  user.ImageURL,
		CreatedAt: user.CreatedAt,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.UserProfile, error) {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
		return domain.UserProfile{}, domain.ErrEmailAlreadyUsed
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserProfile{}, err
	}

	if _, err := s.userRepository.GetUserByUsername(ctx, req.Username); err == nil {
		return domain.UserProfile{}, domain.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserProfile{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.UserProfile{}, err
	}

	user := &entities.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.UserProfile{}, err
	}

	// Welcome mail is best effort, registration succeeds either way
	body := fmt.Sprintf("<p>Hi %s, welcome to Recipe Room!</p>", user.Username)
	if err := mailing.SendMail(user.Email, "Welcome to Recipe Room", body); err != nil {
		log.Printf("welcome mail to %s failed: %v", user.Email, err)
	}

	return toUserProfile(user), nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrCredentialsInvalid
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrCredentialsInvalid
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), "user")

	return domain.LoginResponse{
		AccessToken: token,
		User:        toUserProfile(user),
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.UserProfile, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserProfile{}, domain.ErrUserNotFound
		}
		return domain.UserProfile{}, err
	}
	return toUserProfile(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest, userID string) (domain.UserProfile, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserProfile{}, domain.ErrUserNotFound
		}
		return domain.UserProfile{}, err
	}

	if req.Username != "" && req.Username != user.Username {
		if _, err := s.userRepository.GetUserByUsername(ctx, req.Username); err == nil {
			return domain.UserProfile{}, domain.ErrUsernameTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserProfile{}, err
		}
		user.Username = req.Username
	}

	if req.Email != "" && req.Email != user.Email {
		if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err == nil {
			return domain.UserProfile{}, domain.ErrEmailAlreadyUsed
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserProfile{}, err
		}
		user.Email = req.Email
	}

	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return domain.UserProfile{}, err
	}

	return toUserProfile(user), nil
}

func (s *userService) UploadProfileImage(ctx context.Context, req domain.UploadProfileImageRequest, userID string) (string, error) {
	if req.Image == nil {
		return "", domain.ErrImageRequired
	}

	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrUserNotFound
		}
		return "", err
	}

	fileName := fmt.Sprintf("user-%s", user.ID.String())
	objectKey, err := s.s3.UploadFile(fileName, req.Image, "profile-images", storage.AllowImage...)
	if err != nil {
		return "", err
	}

	user.ImageURL = s.s3.GetPublicLink(objectKey)
	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return "", err
	}

	return user.ImageURL, nil
}
