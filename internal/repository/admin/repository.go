package admin

import (
	"context"
	"time"

	"github.com/ritu-rajkumar/Ri-Eat/internal/domain"
)

type Repository interface {
	GetByUsername(ctx context.Context, username string) (*domain.Admin, error)
	GetByID(ctx context.Context, id string) (*domain.Admin, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	SetResetToken(ctx context.Context, id, tokenHash string, expiresAt time.Time) error
	// GetByResetToken matches an unexpired reset token hash.
	GetByResetToken(ctx context.Context, tokenHash string) (*domain.Admin, error)
	// ResetPassword sets a new hash and clears the reset token in one step.
	ResetPassword(ctx context.Context, id, passwordHash string) error
}
