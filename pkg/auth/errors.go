package auth

import "errors"

// Account lookup and lifecycle errors
var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
)

// Password errors
var (
	ErrWeakPassword         = errors.New("password does not meet security requirements")
	ErrPasswordMismatch     = errors.New("passwords do not match")
	ErrIncorrectOldPassword = errors.New("incorrect old password")
	ErrPasswordRequired     = errors.New("password is required")
	ErrPasswordTooLong      = errors.New("password exceeds maximum length")
	ErrCorruptCredential    = errors.New("stored credential is corrupt")
)

// Link token errors
var (
	ErrLinkInvalidOrExpired = errors.New("link is invalid or expired")
)
