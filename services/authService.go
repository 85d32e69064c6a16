package services

import (
	"context"
	"errors"
	"log"

	"github.com/shreeambika/easyshop-api/models"
	"github.com/shreeambika/easyshop-api/repository"
	"github.com/shreeambika/easyshop-api/utils"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// ErrInvalidCredentials covers both an unknown phone and a wrong password so
// the response never reveals which one failed.
var ErrInvalidCredentials = errors.New("invalid phone or password")

type AuthService struct {
	users repository.UserRepository
	otps  utils.OTPStore
}

func NewAuthService(users repository.UserRepository, otps utils.OTPStore) *AuthService {
	return &AuthService{users: users, otps: otps}
}

// Register hashes the password and stores the new user. Nothing is written
// when the phone or email is already taken.
func (s *AuthService) Register(input models.User) (*models.User, error) {
	exists, err := s.users.PhoneOrEmailExists(input.Phone, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, repository.ErrDuplicateUser
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, err
	}
	input.Password = string(hashed)

	if err := s.users.Create(&input); err != nil {
		return nil, err
	}
	return &input, nil
}

func (s *AuthService) Login(phone, password string) (*models.User, error) {
	user, err := s.users.FindByPhone(phone)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// IssueResetOTP generates a reset code for an existing account. The code is
// logged server-side; there is no real delivery channel.
func (s *AuthService) IssueResetOTP(ctx context.Context, key models.LookupKey) (string, error) {
	if _, err := s.users.FindByLookup(key); err != nil {
		return "", err
	}

	otp, err := s.otps.Issue(ctx, key.Key())
	if err != nil {
		return "", err
	}
	log.Printf("[SIMULATION] OTP for %s is: %s", key.Value, otp)
	return otp, nil
}

// ResetPassword verifies and consumes the OTP, then re-hashes the password.
func (s *AuthService) ResetPassword(ctx context.Context, key models.LookupKey, otp, newPassword string) error {
	user, err := s.users.FindByLookup(key)
	if err != nil {
		return err
	}

	if err := s.otps.Verify(ctx, key.Key(), otp); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(user.ID, string(hashed))
}
