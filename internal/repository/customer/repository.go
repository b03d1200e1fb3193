package customer

import (
	"context"

	"github.com/ritu-rajkumar/Ri-Eat/internal/domain"
)

// Sort orders for List. Default is newest first.
const (
	SortRecent = ""
	SortOrders = "orders"
	SortSpend  = "spend"
)

type ListInput struct {
	Query string
	Sort  string
}

// UpdateInput carries the admin edit fields. Loyalty counters are included
// only on the administrative override path; nil leaves them untouched.
type UpdateInput struct {
	Code             string
	Name             string
	Phone            string
	Address          string
	TotalOrders      *int
	TargetOrders     *int
	RewardsAvailable *int
}

type Repository interface {
	Create(ctx context.Context, c domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	GetByCode(ctx context.Context, code string) (*domain.Customer, error)
	List(ctx context.Context, in ListInput) ([]domain.Customer, error)
	Update(ctx context.Context, id string, in UpdateInput) (*domain.Customer, error)
	Delete(ctx context.Context, id string) error
}
