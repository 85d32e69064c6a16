package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shreeambika/easyshop-api/mocks"
	"github.com/shreeambika/easyshop-api/models"
	"github.com/shreeambika/easyshop-api/repository"
	"github.com/shreeambika/easyshop-api/services"
	"github.com/shreeambika/easyshop-api/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixtures() (*mocks.MockUserRepository, utils.OTPStore, *services.AuthService) {
	users := new(mocks.MockUserRepository)
	otps := utils.NewMemoryOTPStore()
	return users, otps, services.NewAuthService(users, otps)
}

func hashedUser(phone, password string) *models.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	user := &models.User{Name: "Ramesh", Phone: phone, Email: "ramesh@example.com", Password: string(hash)}
	user.ID = 7
	return user
}

func TestAuthService_Register(t *testing.T) {
	dbErr := errors.New("connection refused")

	tests := []struct {
		name        string
		exists      bool
		existsErr   error
		createErr   error
		wantErr     error
		expectWrite bool
	}{
		{
			name:        "new phone and email",
			expectWrite: true,
		},
		{
			name:    "phone already registered",
			exists:  true,
			wantErr: repository.ErrDuplicateUser,
		},
		{
			name:      "existence check fails",
			existsErr: dbErr,
			wantErr:   dbErr,
		},
		{
			name:        "concurrent registration surfaced by the unique index",
			createErr:   repository.ErrDuplicateUser,
			wantErr:     repository.ErrDuplicateUser,
			expectWrite: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, _, svc := newAuthFixtures()
			users.On("PhoneOrEmailExists", "9876543210", "ramesh@example.com").
				Return(tt.exists, tt.existsErr)
			if tt.expectWrite {
				users.On("Create", mock.AnythingOfType("*models.User")).Return(tt.createErr)
			}

			user, err := svc.Register(models.User{
				Name:     "Ramesh",
				Phone:    "9876543210",
				Email:    "ramesh@example.com",
				Password: "secret123",
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				if !tt.expectWrite {
					users.AssertNotCalled(t, "Create", mock.Anything)
				}
				return
			}

			assert.NoError(t, err)
			assert.NotEqual(t, "secret123", user.Password)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	dbErr := errors.New("connection refused")

	tests := []struct {
		name     string
		user     *models.User
		findErr  error
		password string
		wantErr  error
	}{
		{
			name:     "correct password",
			user:     hashedUser("9876543210", "secret123"),
			password: "secret123",
		},
		{
			name:     "wrong password",
			user:     hashedUser("9876543210", "secret123"),
			password: "wrong-password",
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:     "unknown phone",
			findErr:  repository.ErrUserNotFound,
			password: "secret123",
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:     "database failure is not a credential error",
			findErr:  dbErr,
			password: "secret123",
			wantErr:  dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, _, svc := newAuthFixtures()
			users.On("FindByPhone", "9876543210").Return(tt.user, tt.findErr)

			user, err := svc.Login("9876543210", tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, "9876543210", user.Phone)
		})
	}
}

func TestAuthService_Login_DatabaseErrorStaysDistinct(t *testing.T) {
	users, _, svc := newAuthFixtures()
	users.On("FindByPhone", "9876543210").Return(nil, errors.New("connection refused"))

	_, err := svc.Login("9876543210", "secret123")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestAuthService_ResetPassword(t *testing.T) {
	ctx := context.Background()
	key, err := models.NewLookupKey("9876543210", "")
	assert.NoError(t, err)

	t.Run("valid OTP updates the password hash", func(t *testing.T) {
		users, _, svc := newAuthFixtures()
		user := hashedUser("9876543210", "old-password")
		users.On("FindByLookup", key).Return(user, nil)
		users.On("UpdatePassword", uint(7), mock.AnythingOfType("string")).Return(nil)

		otp, err := svc.IssueResetOTP(ctx, key)
		assert.NoError(t, err)

		assert.NoError(t, svc.ResetPassword(ctx, key, otp, "new-password"))

		hash := users.Calls[len(users.Calls)-1].Arguments.String(1)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("new-password")))
	})

	t.Run("wrong OTP leaves the password alone", func(t *testing.T) {
		users, _, svc := newAuthFixtures()
		users.On("FindByLookup", key).Return(hashedUser("9876543210", "old-password"), nil)

		_, err := svc.IssueResetOTP(ctx, key)
		assert.NoError(t, err)

		err = svc.ResetPassword(ctx, key, "0000-wrong", "new-password")
		assert.ErrorIs(t, err, utils.ErrOTPInvalid)
		users.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything)
	})

	t.Run("unknown account never issues a code", func(t *testing.T) {
		users, _, svc := newAuthFixtures()
		users.On("FindByLookup", key).Return(nil, repository.ErrUserNotFound)

		_, err := svc.IssueResetOTP(ctx, key)
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})
}
