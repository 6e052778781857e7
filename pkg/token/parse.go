package token

import (
	"crypto/subtle"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"strings"
	"time"
)

// ParseToken verifies the token's signature, checks the issuance timestamp
// against the max-age window, and decodes the JSON payload into the generic
// type. The signature is verified before the timestamp or payload is
// inspected.
func ParseToken[T any](tok, secret, salt string, maxAge time.Duration) (T, error) {
	var payload T
	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		return payload, ErrInvalidToken
	}

	data, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return payload, ErrInvalidToken
	}

	issued, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil || len(issued) != 8 {
		return payload, ErrInvalidToken
	}

	sig, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		return payload, ErrInvalidToken
	}

	expectedSig := sign(data, issued, secret, salt)
	if subtle.ConstantTimeCompare(sig, expectedSig) != 1 {
		return payload, ErrSignatureInvalid
	}

	issuedAt := time.Unix(int64(binary.BigEndian.Uint64(issued)), 0)
	if time.Since(issuedAt) > maxAge {
		return payload, ErrTokenExpired
	}

	if err := json.Unmarshal(data, &payload); err != nil {
		return payload, ErrInvalidToken
	}

	return payload, nil
}
