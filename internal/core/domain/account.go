package domain

import (
	"errors"
	"fmt"
	"time"
)

// Role is the closed set of account roles. No other value is constructible
// through the account store.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleReception Role = "reception"
	RoleEmployee  Role = "employee"
)

// Valid reports whether r is one of the enumerated roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleReception, RoleEmployee:
		return true
	}
	return false
}

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrAccountNotFound = errors.New("account not found")
var ErrAccountExists = errors.New("account already exists")
var ErrStorageUnavailable = errors.New("account storage unavailable")
var ErrAlreadyProvisioned = errors.New("admin account already provisioned")

// ValidationError reports malformed or missing input. It is a client-class
// failure, distinct from a credential mismatch.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Account models a staff account on the booking backend.
// PasswordHash is the bcrypt digest of the login secret; the plaintext never
// persists and the hash is never serialised in responses.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// FullName returns the display name used in API summaries.
func (a *Account) FullName() string {
	return a.FirstName + " " + a.LastName
}

// NewAccount is the validated input for account creation. Password is the
// plaintext secret; it exists only in memory until the store hashes it.
type NewAccount struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
	Role      Role
}
