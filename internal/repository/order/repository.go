package order

import (
	"context"

	"github.com/ritu-rajkumar/Ri-Eat/internal/domain"
)

// CreateInput carries a validated order: a resolved customer, non-empty
// lines and the precomputed total.
type CreateInput struct {
	CustomerID string
	Lines      []domain.OrderLine
	TotalCents int64
}

// UpdateInput replaces an order's customer and lines wholesale.
type UpdateInput struct {
	CustomerID string
	Lines      []domain.OrderLine
	TotalCents int64
}

type Repository interface {
	Create(ctx context.Context, in CreateInput) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, customerID string) ([]domain.Order, error)
	Update(ctx context.Context, id string, in UpdateInput) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}
