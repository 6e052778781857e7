package auth

import (
	"time"

	"github.com/google/uuid"
)

// Link token salts. Each flow derives its own signing key from the shared
// secret, so tokens minted for one flow cannot be redeemed in another.
const (
	SaltPasswordReset = "password-reset"
	SaltMagicLink     = "magic-link"
)

// Account represents a user account.
// A nil PasswordHash marks an external-identity-only account that cannot
// log in with a password until one is set through ChangePassword.
type Account struct {
	ID           uuid.UUID
	Email        string
	FirstName    string
	LastName     string
	AvatarURL    string
	PasswordHash []byte
	SuperAdmin   bool
	Deleted      bool
	CreatedAt    time.Time
	LastSeenAt   time.Time
}

// Active reports whether the account has been seen within the window.
// Activity is derived state and never persisted.
func (a *Account) Active(window time.Duration) bool {
	return time.Since(a.LastSeenAt) < window
}

// FullName joins the profile name fields, tolerating either being empty.
func (a *Account) FullName() string {
	switch {
	case a.FirstName == "":
		return a.LastName
	case a.LastName == "":
		return a.FirstName
	default:
		return a.FirstName + " " + a.LastName
	}
}

// Profile carries the optional display fields supplied at registration
// or by an external identity provider.
type Profile struct {
	FirstName string
	LastName  string
	AvatarURL string
}

// LinkRequest is the result of minting a single-use link token.
type LinkRequest struct {
	Email     string
	Token     string
	Link      string
	ExpiresAt time.Time
}

// Stats is a point-in-time snapshot of the account population.
// Active and Inactive partition the non-deleted accounts by the
// service's activity window.
type Stats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
	Deleted  int `json:"deleted"`
}
