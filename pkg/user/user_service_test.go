package user

import (
	"context"
	"mime/multipart"
	"testing"

	"recipe-room-backend/domain"
	"recipe-room-backend/entities"
	"recipe-room-backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users map[uuid.UUID]*entities.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[uuid.UUID]*entities.User{}}
}

func (f *fakeUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	user, ok := f.users[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (f *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetUserByUsername(_ context.Context, username string) (*entities.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) UpdateUser(_ context.Context, user *entities.User) error {
	f.users[user.ID] = user
	return nil
}

type fakeS3 struct{}

func (fakeS3) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedExt ...string) (string, error) {
	return folder + "/" + fileName, nil
}

func (fakeS3) UpdateFile(objectKey string, file *multipart.FileHeader, allowedExt ...string) (string, error) {
	return objectKey, nil
}

func (fakeS3) DeleteFile(objectKey string) error { return nil }

func (fakeS3) GetPublicLink(objectKey string) string { return "https://bucket.test/" + objectKey }

func newUserService() (UserService, *fakeUserRepository) {
	repo := newFakeUserRepository()
	return NewUserService(repo, jwt.NewJWTService(), fakeS3{}), repo
}

func TestRegisterAndLogin(t *testing.T) {
	service, repo := newUserService()

	profile, err := service.Register(context.Background(), domain.RegisterRequest{
		Username: "achieng",
		Email:    "achieng@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "achieng", profile.Username)
	require.Len(t, repo.users, 1)

	// Password is stored hashed, never verbatim
	for _, user := range repo.users {
		assert.NotEqual(t, "secret123", user.PasswordHash)
	}

	res, err := service.Login(context.Background(), domain.LoginRequest{
		Email:    "achieng@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, profile.ID, res.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service, _ := newUserService()

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Username: "achieng",
		Email:    "achieng@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = service.Register(context.Background(), domain.RegisterRequest{
		Username: "otieno",
		Email:    "achieng@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyUsed)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	service, _ := newUserService()

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Username: "achieng",
		Email:    "achieng@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = service.Register(context.Background(), domain.RegisterRequest{
		Username: "achieng",
		Email:    "other@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	service, _ := newUserService()

	_, err := service.Register(context.Background(), domain.RegisterRequest{
		Username: "achieng",
		Email:    "achieng@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "achieng@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)

	_, err = service.Login(context.Background(), domain.LoginRequest{
		Email:    "unknown@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, domain.ErrCredentialsInvalid)
}

func TestUpdateProfileUsernameTaken(t *testing.T) {
	service, _ := newUserService()

	first, err := service.Register(context.Background(), domain.RegisterRequest{
		Username: "achieng",
		Email:    "achieng@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = service.Register(context.Background(), domain.RegisterRequest{
		Username: "otieno",
		Email:    "otieno@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = service.UpdateProfile(context.Background(), domain.UpdateProfileRequest{
		Username: "otieno",
	}, first.ID)
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)

	updated, err := service.UpdateProfile(context.Background(), domain.UpdateProfileRequest{
		Username: "achieng254",
	}, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "achieng254", updated.Username)
}

func TestUploadProfileImageRequiresFile(t *testing.T) {
	service, _ := newUserService()

	_, err := service.UploadProfileImage(context.Background(), domain.UploadProfileImageRequest{}, uuid.New().String())
	assert.ErrorIs(t, err, domain.ErrImageRequired)
}
