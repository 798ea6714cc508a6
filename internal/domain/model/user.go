package model

import "time"

// Role classifies an account as either a customer or a business.
// It is assigned at registration and never changes afterwards.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleBusiness Role = "business"
)

// Valid reports whether the role is one of the known account types.
func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleBusiness
}

// User represents a registered marketplace account with its profile fields.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	Staff        bool
	FirstName    string
	LastName     string
	Tel          string
	Location     string
	Description  string
	WorkingHours string
	File         string
	CreatedAt    time.Time
}

// Identity carries the authenticated caller supplied by the session layer.
// Domain operations authorize against it; they never authenticate.
type Identity struct {
	UserID int64
	Role   Role
	Staff  bool
}

// ProfilePatch holds optional profile field updates. Nil means keep the current value.
type ProfilePatch struct {
	FirstName    *string
	LastName     *string
	Email        *string
	Tel          *string
	Location     *string
	Description  *string
	WorkingHours *string
	File         *string
}
