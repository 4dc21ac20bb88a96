package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user does not exist, please sign up")
var ErrUserExists = errors.New("the user with this email already exists in the system")
var ErrInvalidCredentials = errors.New("please check user credentials")
var ErrRoleMismatch = errors.New("user role does not match")
var ErrRegistrationClosed = errors.New("open user registration is forbidden on this server")
var ErrForbidden = errors.New("access forbidden")

// User models an account holder. Users are never physically deleted;
// IsActive flips instead.
type User struct {
	ID           string    `json:"user_id"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phone_number,omitempty"`
	FullName     string    `json:"full_name"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
