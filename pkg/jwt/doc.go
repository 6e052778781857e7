// Package jwt implements the bearer token subsystem: an HMAC-SHA256 (HS256)
// JWT codec plus a purpose-tagged issuer/verifier for access and refresh
// tokens.
//
// The codec is generic: Service signs and verifies any JSON-serialisable
// claims structure. Issuer builds on it with the claim set used for
// authorization decisions: subject, purpose (access or refresh), and an
// absolute expiry computed from configured lifetimes. A single signing secret
// covers both token kinds, so the purpose claim is the only thing preventing
// a refresh token from being replayed as an access token; Verify enforces it
// in both directions.
//
// Tokens are stateless bearer credentials. The server keeps no per-token
// state, which means Refresh rotates the pair without invalidating the old
// refresh token; it stays valid until its own expiry.
//
// # Usage
//
//	issuer, err := jwt.NewIssuer(jwt.Config{SigningKey: "super-secret"})
//	if err != nil {
//	    // handle error
//	}
//
//	access, _ := issuer.IssueAccess("user-123")
//	subject, err := issuer.Verify(access, jwt.PurposeAccess)
//
//	pair, err := issuer.Refresh(refreshToken)
//
// # Error Handling
//
// Sentinel errors (ErrTokenExpired, ErrInvalidSignature,
// ErrWrongTokenPurpose, ...) are comparable with errors.Is. Signature
// verification happens before any claim is inspected, so a tampered token
// never leaks which claim check would have failed.
package jwt
