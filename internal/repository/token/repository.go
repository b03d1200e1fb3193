package token

import (
	"context"
	"time"
)

// Token is an opaque admin session credential stored server-side.
type Token struct {
	Token     string
	AdminID   string
	ExpiresAt time.Time
	CreatedAt time.Time
}

type Repository interface {
	Create(ctx context.Context, token Token) error
	Get(ctx context.Context, token string) (*Token, error)
	Delete(ctx context.Context, token string) error
}
