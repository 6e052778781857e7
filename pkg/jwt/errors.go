package jwt

import "errors"

var (
	ErrTokenMalformed          = errors.New("jwt: malformed token")
	ErrTokenExpired            = errors.New("jwt: token is expired")
	ErrInvalidSignature        = errors.New("jwt: invalid signature")
	ErrUnexpectedSigningMethod = errors.New("jwt: unexpected signing method")
	ErrWrongTokenPurpose       = errors.New("jwt: wrong token purpose")
	ErrMissingSigningKey       = errors.New("jwt: missing signing key")
	ErrMissingClaims           = errors.New("jwt: missing claims")
)
