// Package auth manages the account credential lifecycle: registration,
// password and external-identity login, single-use reset and magic links,
// password changes, soft deletion, and account statistics.
//
// The package is built from small collaborators wired through interfaces:
//
//   - Storage abstracts account persistence (an in-memory implementation
//     ships for tests and development)
//   - jwt.Issuer mints and verifies the bearer token pair
//   - email.EmailSender delivers reset, magic-link, and welcome mail
//
// # Usage
//
//	issuer, _ := jwt.NewIssuer(jwt.IssuerConfig{SigningKey: secret})
//	svc := auth.NewService(storage, issuer, mailer, linkSecret,
//	    auth.WithLinkBaseURL("https://app.example.com"),
//	    auth.WithLinkTTL(time.Hour),
//	)
//
//	account, err := svc.Register(ctx, "user@example.com", "s3cure-pass", auth.Profile{})
//	if err != nil {
//	    // auth.ErrEmailAlreadyExists, auth.ErrWeakPassword, ...
//	}
//	pair, err := issuer.IssuePair(account.ID.String())
//
// # Error Handling
//
// Operations return sentinel errors checkable with errors.Is. Login
// deliberately collapses every failure cause (unknown email, tombstoned
// account, missing or corrupt hash, wrong password) into
// ErrInvalidCredentials so responses carry no account-existence signal.
// The Unauthorized helper performs the same collapse for token failures at
// a request boundary while logging the specific cause.
//
// # Security Notes
//
// Passwords are hashed with bcrypt and a per-call random salt. Link tokens
// for password reset and magic sign-in share one HMAC codec but use
// distinct salts, so a token minted for one flow can never be redeemed in
// the other. Bearer tokens are stateless: logout verifies the caller but
// cannot revoke tokens already issued, which stay valid until expiry.
package auth
