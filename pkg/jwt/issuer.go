package jwt

import (
	"time"

	"github.com/google/uuid"
)

// Default token lifetimes: short-lived access tokens limit the blast radius
// of a leaked token, the refresh lifetime bounds total session length.
const (
	DefaultAccessTTL  = 15 * time.Minute
	DefaultRefreshTTL = 7 * 24 * time.Hour
)

// Config holds the bearer token settings, supplied at process start and
// immutable thereafter.
type Config struct {
	SigningKey string        `env:"JWT_SIGNING_KEY,required"`
	AccessTTL  time.Duration `env:"JWT_ACCESS_TTL" envDefault:"15m"`
	RefreshTTL time.Duration `env:"JWT_REFRESH_TTL" envDefault:"168h"`
}

// TokenPair is the result of issuing or rotating bearer tokens.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Issuer mints and verifies purpose-tagged access/refresh tokens on top of
// the generic codec. Issuance and verification are pure and stateless; an
// Issuer is safe for concurrent use by any number of request handlers.
type Issuer struct {
	svc        *Service
	accessTTL  time.Duration
	refreshTTL time.Duration

	now func() time.Time // injected in tests
}

// NewIssuer creates a bearer token issuer from config. Zero TTLs fall back
// to the package defaults.
func NewIssuer(cfg Config) (*Issuer, error) {
	svc, err := NewService([]byte(cfg.SigningKey))
	if err != nil {
		return nil, err
	}

	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = DefaultAccessTTL
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = DefaultRefreshTTL
	}

	return &Issuer{
		svc:        svc,
		accessTTL:  cfg.AccessTTL,
		refreshTTL: cfg.RefreshTTL,
		now:        time.Now,
	}, nil
}

// IssueAccess mints a short-lived access token for the given subject.
func (i *Issuer) IssueAccess(subjectID string) (string, error) {
	return i.issue(subjectID, PurposeAccess, i.accessTTL)
}

// IssueRefresh mints a long-lived refresh token for the given subject.
func (i *Issuer) IssueRefresh(subjectID string) (string, error) {
	return i.issue(subjectID, PurposeRefresh, i.refreshTTL)
}

// IssuePair mints a fresh access+refresh pair for the given subject.
func (i *Issuer) IssuePair(subjectID string) (TokenPair, error) {
	access, err := i.IssueAccess(subjectID)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := i.IssueRefresh(subjectID)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (i *Issuer) issue(subjectID string, purpose Purpose, ttl time.Duration) (string, error) {
	if subjectID == "" {
		return "", ErrMissingClaims
	}

	now := i.now()
	claims := Claims{
		ID:        uuid.New().String(),
		Subject:   subjectID,
		Purpose:   purpose,
		ExpiresAt: now.Add(ttl).Unix(),
		IssuedAt:  now.Unix(),
	}
	return i.svc.Generate(claims)
}

// Verify decodes a token and enforces that it was issued for the expected
// purpose, returning the subject ID. Presenting a refresh token where an
// access token is expected (or vice versa) fails with ErrWrongTokenPurpose;
// it is never silently accepted.
func (i *Issuer) Verify(tokenString string, expected Purpose) (string, error) {
	var claims Claims
	if err := i.svc.Parse(tokenString, &claims); err != nil {
		return "", err
	}

	if claims.Purpose != expected {
		return "", ErrWrongTokenPurpose
	}
	if claims.Subject == "" {
		return "", ErrTokenMalformed
	}

	return claims.Subject, nil
}

// Refresh rotates a token pair: it verifies the old refresh token and mints
// a brand-new access+refresh pair for the same subject. The old refresh
// token is not invalidated server-side; with stateless bearer tokens it
// remains valid until its own expiry.
func (i *Issuer) Refresh(oldRefreshToken string) (TokenPair, error) {
	subjectID, err := i.Verify(oldRefreshToken, PurposeRefresh)
	if err != nil {
		return TokenPair{}, err
	}
	return i.IssuePair(subjectID)
}
