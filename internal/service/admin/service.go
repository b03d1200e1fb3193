package admin

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ritu-rajkumar/Ri-Eat/internal/domain"
)

const minPasswordLen = 6

// Service handles admin authentication: login sessions, password changes and
// the email reset flow. Session tokens are opaque random strings persisted in
// the database; reset tokens are emailed in the clear and stored hashed.
type Service struct {
	admins   adminRepo
	tokens   *tokenManager
	mailer   mailSender
	resetTTL time.Duration
	resetURL string
	logger   *log.Logger
}

type adminRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.Admin, error)
	GetByID(ctx context.Context, id string) (*domain.Admin, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	SetResetToken(ctx context.Context, id, tokenHash string, expiresAt time.Time) error
	GetByResetToken(ctx context.Context, tokenHash string) (*domain.Admin, error)
	ResetPassword(ctx context.Context, id, passwordHash string) error
}

type mailSender interface {
	Send(to, subject, body string) error
}

func New(admins adminRepo, tokens tokenRepo, tokenTTL time.Duration, mailer mailSender, resetTTL time.Duration, resetURL string, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{
		admins:   admins,
		tokens:   newTokenManager(tokens, tokenTTL),
		mailer:   mailer,
		resetTTL: resetTTL,
		resetURL: resetURL,
		logger:   logger,
	}
}

// Session is a successful login result.
type Session struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Login verifies credentials and issues a session token. Unknown usernames
// and wrong passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	a, err := s.admins.GetByUsername(ctx, username)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	tok, expiresAt, err := s.tokens.Issue(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	return &Session{Token: tok, Username: a.Username, ExpiresAt: expiresAt}, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	return s.tokens.Revoke(ctx, token)
}

// Authenticate resolves a session token to its admin account.
func (s *Service) Authenticate(ctx context.Context, token string) (*domain.Admin, error) {
	adminID, err := s.tokens.Validate(ctx, token)
	if err != nil {
		return nil, err
	}
	a, err := s.admins.GetByID(ctx, adminID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrInvalidCredentials
	}
	return a, err
}

func (s *Service) ChangePassword(ctx context.Context, adminID, current, next string) error {
	if len(next) < minPasswordLen {
		return domain.Invalid(fmt.Sprintf("password must be at least %d characters", minPasswordLen))
	}
	a, err := s.admins.GetByID(ctx, adminID)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(current)) != nil {
		return domain.ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.admins.UpdatePassword(ctx, a.ID, string(hash))
}

// ForgotPassword emails a reset link for the given admin account.
func (s *Service) ForgotPassword(ctx context.Context, username string) error {
	a, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if a.Email == "" {
		s.logger.Printf("admin service: no email on record for %q, reset skipped", username)
		return nil
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}
	token := hex.EncodeToString(raw)

	if err := s.admins.SetResetToken(ctx, a.ID, hashToken(token), time.Now().Add(s.resetTTL)); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", s.resetURL, token)
	body := fmt.Sprintf("A password reset was requested for your account.\n\nReset link: %s\n\nThe link expires in %s. If you did not request this, ignore this mail.", link, s.resetTTL)
	if err := s.mailer.Send(a.Email, "Password reset", body); err != nil {
		return err
	}
	return nil
}

// ResetPassword consumes an emailed reset token and sets a new password. An
// unknown or expired token is a bad request, not an authentication failure:
// the caller holds no session to begin with.
func (s *Service) ResetPassword(ctx context.Context, token, next string) error {
	if len(next) < minPasswordLen {
		return domain.Invalid(fmt.Sprintf("password must be at least %d characters", minPasswordLen))
	}
	a, err := s.admins.GetByResetToken(ctx, hashToken(token))
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Invalid("invalid or expired token")
	}
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.admins.ResetPassword(ctx, a.ID, string(hash))
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
