package domain

import "time"

// UserStatus is the account lifecycle state.
type UserStatus string

const (
	StatusActive   UserStatus = "Active"
	StatusDisabled UserStatus = "Disabled"
)

// Valid reports whether s is one of the known statuses.
func (s UserStatus) Valid() bool {
	return s == StatusActive || s == StatusDisabled
}

// User models an account in the system. PasswordHash never leaves the
// service layer.
type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         Role       `json:"role"`
	Status       UserStatus `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Identity is the resolved caller attached to an authenticated request.
// It carries no secrets and is safe to serialize.
type Identity struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Email  string     `json:"email"`
	Role   Role       `json:"role"`
	Status UserStatus `json:"status"`
}

// IsZero reports whether the identity is absent (unauthenticated caller).
func (i Identity) IsZero() bool {
	return i.ID == ""
}

// Identity projects the user into its request-scoped identity.
func (u *User) Identity() Identity {
	return Identity{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
		Status: u.Status,
	}
}
