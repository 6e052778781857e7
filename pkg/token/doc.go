// Package token provides compact, signed, time-boxed tokens for out-of-band
// links such as password resets and magic links.
//
// Tokens use HMAC-SHA256 with truncated 8-byte signatures for balance between
// security and compactness. The codec appends an issuance timestamp to every
// token and validates freshness against a max-age window at parse time, so
// callers never embed expiry in the payload. Not recommended for high-value
// or long-lived tokens.
//
// Token format: base64url(payload).base64url(issued-at).base64url(signature)
//
// The signing key is derived from the secret and a per-use-case salt
// (HMAC-SHA256(secret, salt)). Tokens minted under one salt never verify
// under another, which keeps a password-reset token from being redeemed as a
// magic-link token even though both carry only an identifier.
//
// # Usage
//
//	import "github.com/bruce-pain/authkit/pkg/token"
//
//	type Payload struct {
//	    Email string `json:"email"`
//	}
//
//	tok, err := token.GenerateToken(Payload{"a@b.com"}, secret, "password-reset")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	p, err := token.ParseToken[Payload](tok, secret, "password-reset", time.Hour)
//
// Returns ErrInvalidToken for malformed tokens, ErrSignatureInvalid for
// signature mismatches (including a wrong salt), and ErrTokenExpired for
// tokens older than the max-age window. Uses only standard library crypto.
package token
