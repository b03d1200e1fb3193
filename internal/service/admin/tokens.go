package admin

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/ritu-rajkumar/Ri-Eat/internal/domain"
	tokenrepo "github.com/ritu-rajkumar/Ri-Eat/internal/repository/token"
)

// tokenManager issues and validates opaque session tokens stored server-side.
type tokenManager struct {
	repo tokenRepo
	ttl  time.Duration
}

type tokenRepo interface {
	Create(ctx context.Context, token tokenrepo.Token) error
	Get(ctx context.Context, token string) (*tokenrepo.Token, error)
	Delete(ctx context.Context, token string) error
}

func newTokenManager(repo tokenRepo, ttl time.Duration) *tokenManager {
	return &tokenManager{repo: repo, ttl: ttl}
}

func (m *tokenManager) Issue(ctx context.Context, adminID string) (string, time.Time, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", time.Time{}, fmt.Errorf("generate token: %w", err)
	}
	tok := base64.RawURLEncoding.EncodeToString(raw)
	expiresAt := time.Now().Add(m.ttl)

	err := m.repo.Create(ctx, tokenrepo.Token{
		Token:     tok,
		AdminID:   adminID,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return "", time.Time{}, err
	}
	return tok, expiresAt, nil
}

// Validate resolves a token to its admin id. Expired tokens are removed on
// the way out.
func (m *tokenManager) Validate(ctx context.Context, tok string) (string, error) {
	stored, err := m.repo.Get(ctx, tok)
	if errors.Is(err, domain.ErrNotFound) {
		return "", domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if time.Now().After(stored.ExpiresAt) {
		_ = m.repo.Delete(ctx, tok)
		return "", domain.ErrInvalidCredentials
	}
	return stored.AdminID, nil
}

func (m *tokenManager) Revoke(ctx context.Context, tok string) error {
	return m.repo.Delete(ctx, tok)
}
