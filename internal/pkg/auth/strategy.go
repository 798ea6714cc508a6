package auth

import "time"

// Identity is the authenticated caller encoded into a session token. The role
// is safe to embed because account roles are immutable after registration.
type Identity struct {
	UserID int64
	Role   string
	Staff  bool
}

// Strategy issues and verifies session tokens.
type Strategy interface {
	IssueToken(identity Identity) (string, error)
	ParseToken(token string) (Identity, error)
	Name() string
}

// Options tune token issuance.
type Options struct {
	TTL time.Duration
}
