package models

import (
	"errors"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required" gorm:"uniqueIndex;size:15"`
	Email    string `json:"email" binding:"required,email" gorm:"uniqueIndex;size:191"`
	Password string `json:"password,omitempty" binding:"required,min=6"`
}

// UserProfile is the projection returned to clients. The password hash
// never leaves the server.
type UserProfile struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func (u User) Profile() UserProfile {
	return UserProfile{ID: u.ID, Name: u.Name, Phone: u.Phone, Email: u.Email}
}

type LoginData struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required"`
}

var ErrLookupKeyMissing = errors.New("phone or email is required")

// LookupKey identifies a user by exactly one of phone or email.
type LookupKey struct {
	Column string
	Value  string
}

// NewLookupKey picks phone over email when both are supplied, matching the
// forgot-password contract.
func NewLookupKey(phone, email string) (LookupKey, error) {
	if phone != "" {
		return LookupKey{Column: "phone", Value: phone}, nil
	}
	if email != "" {
		return LookupKey{Column: "email", Value: email}, nil
	}
	return LookupKey{}, ErrLookupKeyMissing
}

// Key is the identifier used for OTP records.
func (k LookupKey) Key() string {
	return k.Column + ":" + k.Value
}
