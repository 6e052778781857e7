package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"time"

	"github.com/a-h/templ"
	"github.com/google/uuid"

	"github.com/bruce-pain/authkit/pkg/email"
	"github.com/bruce-pain/authkit/pkg/email/templates"
	"github.com/bruce-pain/authkit/pkg/jwt"
	"github.com/bruce-pain/authkit/pkg/logger"
	"github.com/bruce-pain/authkit/pkg/sanitizer"
	"github.com/bruce-pain/authkit/pkg/token"
	"github.com/bruce-pain/authkit/pkg/validator"
)

// linkPayload is the body of a reset or magic-link token. The codec embeds
// the issue timestamp, so only the addressed email travels in the payload.
type linkPayload struct {
	Email string `json:"email"`
}

// Service coordinates the account credential lifecycle across storage,
// the bearer token issuer, and the mailer.
type Service struct {
	storage    Storage
	issuer     *jwt.Issuer
	mailer     email.EmailSender
	linkSecret string

	logger           *slog.Logger
	bcryptCost       int
	linkTTL          time.Duration
	activityWindow   time.Duration
	passwordStrength validator.PasswordStrengthConfig
	linkBaseURL      string
}

type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		s.logger = log
	}
}

// WithBcryptCost sets the bcrypt cost for password hashing.
func WithBcryptCost(cost int) Option {
	return func(s *Service) {
		s.bcryptCost = cost
	}
}

// WithLinkTTL sets the validity window for reset and magic links.
func WithLinkTTL(ttl time.Duration) Option {
	return func(s *Service) {
		s.linkTTL = ttl
	}
}

// WithActivityWindow sets the window used to classify accounts as active.
func WithActivityWindow(window time.Duration) Option {
	return func(s *Service) {
		s.activityWindow = window
	}
}

// WithPasswordStrength sets custom password strength requirements.
func WithPasswordStrength(config validator.PasswordStrengthConfig) Option {
	return func(s *Service) {
		s.passwordStrength = config
	}
}

// WithLinkBaseURL sets the public base URL embedded in emailed links.
func WithLinkBaseURL(base string) Option {
	return func(s *Service) {
		s.linkBaseURL = base
	}
}

// NewService creates the account lifecycle service. The mailer may be nil,
// in which case link and welcome emails are skipped.
func NewService(storage Storage, issuer *jwt.Issuer, mailer email.EmailSender, linkSecret string, opts ...Option) *Service {
	s := &Service{
		storage:          storage,
		issuer:           issuer,
		mailer:           mailer,
		linkSecret:       linkSecret,
		logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		bcryptCost:       0, // resolved to bcrypt.DefaultCost by HashPassword
		linkTTL:          1 * time.Hour,
		activityWindow:   1 * time.Hour,
		passwordStrength: validator.DefaultPasswordStrength(),
		linkBaseURL:      "http://localhost:8000",
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Register creates a password-backed account and sends a welcome email in
// the background. The caller issues the bearer pair from the returned
// account.
func (s *Service) Register(ctx context.Context, emailAddr, password string, profile Profile) (*Account, error) {
	emailAddr = sanitizer.NormalizeEmail(emailAddr)

	if err := validator.Apply(
		validator.ValidEmail("email", emailAddr),
	); err != nil {
		return nil, err
	}
	if err := s.validatePassword(password); err != nil {
		return nil, err
	}

	_, err := s.storage.GetAccountByEmail(ctx, emailAddr)
	if err == nil {
		return nil, ErrEmailAlreadyExists
	}
	if !errors.Is(err, ErrAccountNotFound) {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}

	hash, err := HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	account := &Account{
		ID:           uuid.New(),
		Email:        emailAddr,
		FirstName:    profile.FirstName,
		LastName:     profile.LastName,
		AvatarURL:    profile.AvatarURL,
		PasswordHash: hash,
		CreatedAt:    now,
		LastSeenAt:   now,
	}

	if err := s.storage.CreateAccount(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.sendEmailAsync(account.Email, "Welcome!", "welcome", templates.Welcome(account.FullName()))

	s.logger.Info("account registered",
		logger.AccountID(account.ID.String()),
		logger.Component("auth"),
	)

	return account, nil
}

// Login verifies email and password. Every failure cause collapses into
// ErrInvalidCredentials so the response carries no account-existence signal.
func (s *Service) Login(ctx context.Context, emailAddr, password string) (*Account, error) {
	emailAddr = sanitizer.NormalizeEmail(emailAddr)

	account, err := s.storage.GetAccountByEmail(ctx, emailAddr)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if account.Deleted || account.PasswordHash == nil {
		return nil, ErrInvalidCredentials
	}

	ok, err := VerifyPassword(password, account.PasswordHash)
	if err != nil {
		s.logger.Error("stored credential unreadable",
			logger.AccountID(account.ID.String()),
			logger.Error(err),
			logger.Component("auth"),
		)
		return nil, ErrInvalidCredentials
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	s.touch(ctx, account)
	return account, nil
}

// ExternalLogin performs an idempotent upsert keyed by email for accounts
// authenticated by an external identity provider. Newly created accounts
// have no password hash until one is set through ChangePassword.
func (s *Service) ExternalLogin(ctx context.Context, emailAddr string, profile Profile) (*Account, error) {
	emailAddr = sanitizer.NormalizeEmail(emailAddr)

	if err := validator.Apply(
		validator.ValidEmail("email", emailAddr),
	); err != nil {
		return nil, err
	}

	account, err := s.storage.GetAccountByEmail(ctx, emailAddr)
	switch {
	case err == nil:
		if account.Deleted {
			return nil, ErrInvalidCredentials
		}
		s.touch(ctx, account)
		return account, nil
	case errors.Is(err, ErrAccountNotFound):
		now := time.Now()
		account = &Account{
			ID:         uuid.New(),
			Email:      emailAddr,
			FirstName:  profile.FirstName,
			LastName:   profile.LastName,
			AvatarURL:  profile.AvatarURL,
			CreatedAt:  now,
			LastSeenAt: now,
		}
		if err := s.storage.CreateAccount(ctx, account); err != nil {
			return nil, fmt.Errorf("failed to create account: %w", err)
		}

		s.sendEmailAsync(account.Email, "Welcome!", "welcome", templates.Welcome(account.FullName()))
		return account, nil
	default:
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
}

// Logout verifies the presented access token. Bearer tokens are stateless:
// the pair stays cryptographically valid until natural expiry, so logout
// is an authenticated no-op recorded for auditing.
func (s *Service) Logout(ctx context.Context, accessToken string) error {
	subject, err := s.issuer.Verify(accessToken, jwt.PurposeAccess)
	if err != nil {
		return s.Unauthorized(err)
	}

	s.logger.Info("account logged out",
		logger.AccountID(subject),
		logger.Component("auth"),
	)
	return nil
}

// RequestPasswordReset mints a reset link for the account and emails it in
// the background. Handlers should mask ErrAccountNotFound with a generic
// success response to avoid account enumeration.
func (s *Service) RequestPasswordReset(ctx context.Context, emailAddr string) (*LinkRequest, error) {
	return s.requestLink(ctx, emailAddr, SaltPasswordReset)
}

// RedeemPasswordReset consumes a reset link and sets a new password.
func (s *Service) RedeemPasswordReset(ctx context.Context, tok, newPassword, confirm string) error {
	if newPassword != confirm {
		return ErrPasswordMismatch
	}
	if err := s.validatePassword(newPassword); err != nil {
		return err
	}

	payload, err := token.ParseToken[linkPayload](tok, s.linkSecret, SaltPasswordReset, s.linkTTL)
	if err != nil {
		return ErrLinkInvalidOrExpired
	}

	account, err := s.storage.GetAccountByEmail(ctx, payload.Email)
	if err != nil || account.Deleted {
		return ErrLinkInvalidOrExpired
	}

	hash, err := HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}

	account.PasswordHash = hash
	if err := s.storage.UpdateAccount(ctx, account); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.logger.Info("password reset",
		logger.AccountID(account.ID.String()),
		logger.Component("auth"),
	)
	return nil
}

// RequestMagicLink mints a passwordless sign-in link for an existing
// account and emails it in the background.
func (s *Service) RequestMagicLink(ctx context.Context, emailAddr string) (*LinkRequest, error) {
	return s.requestLink(ctx, emailAddr, SaltMagicLink)
}

// RedeemMagicLink consumes a magic link and returns the account for token
// issuance.
func (s *Service) RedeemMagicLink(ctx context.Context, tok string) (*Account, error) {
	payload, err := token.ParseToken[linkPayload](tok, s.linkSecret, SaltMagicLink, s.linkTTL)
	if err != nil {
		return nil, ErrLinkInvalidOrExpired
	}

	account, err := s.storage.GetAccountByEmail(ctx, payload.Email)
	if err != nil || account.Deleted {
		return nil, ErrLinkInvalidOrExpired
	}

	s.touch(ctx, account)
	return account, nil
}

// ChangePassword rotates the password for an authenticated account.
// External-identity accounts have no stored hash yet: they must pass an
// empty old password, and any supplied value is rejected.
func (s *Service) ChangePassword(ctx context.Context, accountID uuid.UUID, oldPassword, newPassword, confirm string) error {
	if newPassword != confirm {
		return ErrPasswordMismatch
	}
	if err := s.validatePassword(newPassword); err != nil {
		return err
	}

	account, err := s.storage.GetAccountByID(ctx, accountID)
	if err != nil {
		return err
	}

	if account.PasswordHash == nil {
		if oldPassword != "" {
			return ErrIncorrectOldPassword
		}
	} else {
		ok, err := VerifyPassword(oldPassword, account.PasswordHash)
		if err != nil {
			return err
		}
		if !ok {
			return ErrIncorrectOldPassword
		}
	}

	hash, err := HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}

	account.PasswordHash = hash
	if err := s.storage.UpdateAccount(ctx, account); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// DeleteAccount tombstones the account. The record is kept so the email
// stays claimed and the account can be restored later.
func (s *Service) DeleteAccount(ctx context.Context, accountID uuid.UUID) error {
	return s.setFlag(ctx, accountID, func(a *Account) { a.Deleted = true })
}

// RestoreAccount clears the tombstone.
func (s *Service) RestoreAccount(ctx context.Context, accountID uuid.UUID) error {
	return s.setFlag(ctx, accountID, func(a *Account) { a.Deleted = false })
}

// PromoteSuperAdmin grants the account super-admin privileges.
func (s *Service) PromoteSuperAdmin(ctx context.Context, accountID uuid.UUID) error {
	return s.setFlag(ctx, accountID, func(a *Account) { a.SuperAdmin = true })
}

// Stats returns a point-in-time snapshot of the account population,
// partitioning non-deleted accounts by the activity window.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	accounts, err := s.storage.ListAccounts(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to list accounts: %w", err)
	}

	var stats Stats
	for _, account := range accounts {
		if account.Deleted {
			stats.Deleted++
			continue
		}
		stats.Total++
		if account.Active(s.activityWindow) {
			stats.Active++
		} else {
			stats.Inactive++
		}
	}
	return stats, nil
}

// Unauthorized collapses token and credential failures into ErrUnauthorized
// for use at a request boundary, logging the specific cause. Other errors
// pass through unchanged.
func (s *Service) Unauthorized(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, jwt.ErrTokenExpired),
		errors.Is(err, jwt.ErrInvalidSignature),
		errors.Is(err, jwt.ErrTokenMalformed),
		errors.Is(err, jwt.ErrUnexpectedSigningMethod),
		errors.Is(err, jwt.ErrWrongTokenPurpose),
		errors.Is(err, jwt.ErrMissingClaims),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrLinkInvalidOrExpired):
		s.logger.Debug("authentication rejected",
			logger.Error(err),
			logger.Component("auth"),
		)
		return ErrUnauthorized
	}
	return err
}

func (s *Service) validatePassword(password string) error {
	if err := validator.Apply(
		validator.StrongPassword("password", password, s.passwordStrength),
		validator.NotCommonPassword("password", password),
	); err != nil {
		return errors.Join(ErrWeakPassword, err)
	}
	return nil
}

// requestLink mints a salted single-use link token for the account and
// emails it in the background.
func (s *Service) requestLink(ctx context.Context, emailAddr, salt string) (*LinkRequest, error) {
	emailAddr = sanitizer.NormalizeEmail(emailAddr)

	account, err := s.storage.GetAccountByEmail(ctx, emailAddr)
	if err != nil {
		return nil, err
	}
	if account.Deleted {
		return nil, ErrAccountNotFound
	}

	tok, err := token.GenerateToken(linkPayload{Email: emailAddr}, s.linkSecret, salt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate link token: %w", err)
	}

	windowMinutes := int(s.linkTTL.Minutes())
	var link string
	switch salt {
	case SaltPasswordReset:
		link = fmt.Sprintf("%s/reset-password?token=%s", s.linkBaseURL, url.QueryEscape(tok))
		s.sendEmailAsync(emailAddr, "Reset your password", salt, templates.PasswordReset(link, windowMinutes))
	case SaltMagicLink:
		link = fmt.Sprintf("%s/magic-link?token=%s", s.linkBaseURL, url.QueryEscape(tok))
		s.sendEmailAsync(emailAddr, "Sign in to your account", salt, templates.MagicLink(link, windowMinutes))
	}

	return &LinkRequest{
		Email:     emailAddr,
		Token:     tok,
		Link:      link,
		ExpiresAt: time.Now().Add(s.linkTTL),
	}, nil
}

// setFlag loads an account, applies a mutation, and persists it.
func (s *Service) setFlag(ctx context.Context, accountID uuid.UUID, apply func(*Account)) error {
	account, err := s.storage.GetAccountByID(ctx, accountID)
	if err != nil {
		return err
	}
	apply(account)
	if err := s.storage.UpdateAccount(ctx, account); err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	return nil
}

// touch records account activity. Persistence is last-write-wins and a
// failure is logged, never surfaced: losing a timestamp update must not
// fail a login.
func (s *Service) touch(ctx context.Context, account *Account) {
	account.LastSeenAt = time.Now()
	if err := s.storage.UpdateAccount(ctx, account); err != nil {
		s.logger.Error("failed to record account activity",
			logger.AccountID(account.ID.String()),
			logger.Error(err),
			logger.Component("auth"),
		)
	}
}

// sendEmailAsync delivers mail in the background. Delivery failure is an
// operational event, never an authentication failure.
func (s *Service) sendEmailAsync(to, subject, tag string, letter templ.Component) {
	if s.mailer == nil {
		return
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error("email delivery panicked",
					slog.Any("panic", r),
					logger.Component("auth"),
				)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		body, err := templates.Render(ctx, letter)
		if err != nil {
			s.logger.Error("failed to render email",
				logger.Error(err),
				logger.Component("auth"),
			)
			return
		}

		if err := s.mailer.SendEmail(ctx, email.SendEmailParams{
			SendTo:   to,
			Subject:  subject,
			BodyHTML: body,
			Tag:      tag,
		}); err != nil {
			s.logger.Error("failed to send email",
				logger.Email(to),
				logger.Error(err),
				logger.Component("auth"),
			)
		}
	}()
}
