package claim

import (
	"context"

	"github.com/ritu-rajkumar/Ri-Eat/internal/domain"
)

// SubmitInput holds the contact snapshot captured at claim time.
type SubmitInput struct {
	CustomerID string
	Name       string
	Phone      string
	Address    string
	Experience string
}

type ListInput struct {
	Status     string
	CustomerID string
}

type Repository interface {
	// Submit spends one reward credit: it checks availability, records the
	// claim with the customer's current cycle progress, and decrements
	// rewardsAvailable, all under a row lock.
	Submit(ctx context.Context, in SubmitInput) (*domain.RewardClaim, error)
	// Complete marks a claim fulfilled and resets the owner's cycle. It is
	// idempotent: completing an already-completed claim changes nothing.
	Complete(ctx context.Context, id string, nextTargetOrders int) (*domain.RewardClaim, error)
	GetByID(ctx context.Context, id string) (*domain.RewardClaim, error)
	List(ctx context.Context, in ListInput) ([]domain.RewardClaim, error)
}
