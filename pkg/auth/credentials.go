package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt silently truncates longer inputs, so reject them instead.
const maxPasswordBytes = 72

// HashPassword hashes a password with bcrypt and a per-call random salt.
// A cost of 0 selects bcrypt.DefaultCost.
func HashPassword(password string, cost int) ([]byte, error) {
	if password == "" {
		return nil, ErrPasswordRequired
	}
	if len(password) > maxPasswordBytes {
		return nil, ErrPasswordTooLong
	}
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, err
	}
	return hash, nil
}

// VerifyPassword checks a password against a stored bcrypt hash.
// A mismatch is not an error: it returns (false, nil). A hash that bcrypt
// cannot parse at all returns ErrCorruptCredential, which signals stored
// data damage rather than a wrong password.
func VerifyPassword(password string, hash []byte) (bool, error) {
	err := bcrypt.CompareHashAndPassword(hash, []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, errors.Join(ErrCorruptCredential, err)
	}
}
