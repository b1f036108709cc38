package domain

import (
	"errors"
	"strings"
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidUser        = errors.New("username and password are required")
	ErrUserNotFound       = errors.New("user not found")
)

// User models a registered account.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewUser builds a User ready to be persisted. The role is normalized, so an
// empty or unknown role becomes RoleUser.
func NewUser(username, passwordHash, role string, now time.Time) (*User, error) {
	if strings.TrimSpace(username) == "" || passwordHash == "" {
		return nil, ErrInvalidUser
	}
	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         NormalizeRole(role),
		CreatedAt:    now,
	}, nil
}

// NormalizeRole maps anything outside the role enum to RoleUser.
func NormalizeRole(role string) string {
	switch role {
	case RoleAdmin, RoleUser:
		return role
	default:
		return RoleUser
	}
}
