package feedback

import (
	"context"

	"github.com/ritu-rajkumar/Ri-Eat/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, f domain.Feedback) (*domain.Feedback, error)
	List(ctx context.Context) ([]domain.Feedback, error)
}
