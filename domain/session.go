package domain

import (
	"time"
)

type UserRole string

const (
	RoleGuest UserRole = "GUEST"
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

// Session is the authenticated state carried between requests. It is owned
// by the credential store and replaced or destroyed as a whole, never
// partially updated.
type Session struct {
	Token     string    `json:"token"`
	Role      UserRole  `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phoneNumber"`
}

type LoginResult struct {
	Token     string   `json:"token"`
	Role      UserRole `json:"role"`
	ExpiresAt string   `json:"expirationTime"`
}
