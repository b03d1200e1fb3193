package customer

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/ritu-rajkumar/Ri-Eat/internal/domain"
	custrepo "github.com/ritu-rajkumar/Ri-Eat/internal/repository/customer"
)

// Service handles customer records. Loyalty counters are normally moved only
// by the order and claim flows; the one exception is the administrative
// override on Update, which recomputes rewardsAvailable from scratch.
type Service struct {
	repo      custRepo
	snapshots snapshotInvalidator
}

type custRepo interface {
	Create(ctx context.Context, c domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	List(ctx context.Context, in custrepo.ListInput) ([]domain.Customer, error)
	Update(ctx context.Context, id string, in custrepo.UpdateInput) (*domain.Customer, error)
	Delete(ctx context.Context, id string) error
}

// snapshotInvalidator drops the cached public loyalty view for a customer
// code after an edit changes what that view shows.
type snapshotInvalidator interface {
	InvalidateSnapshot(ctx context.Context, code string)
}

func New(repo custRepo, snapshots snapshotInvalidator) *Service {
	return &Service{repo: repo, snapshots: snapshots}
}

// CreateInput is the registration payload. A blank Code gets a generated one.
type CreateInput struct {
	Code         string `json:"customerId"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	TargetOrders int    `json:"targetOrders"`
}

// UpdateInput is the admin edit payload. TotalOrders/TargetOrders are
// optional; supplying either triggers the rewards override.
type UpdateInput struct {
	Code         string `json:"customerId"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	TotalOrders  *int   `json:"totalOrders"`
	TargetOrders *int   `json:"targetOrders"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Customer, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Phone) == "" || strings.TrimSpace(in.Address) == "" {
		return nil, domain.Invalid("name, phone and address required")
	}
	if in.TargetOrders <= 0 {
		return nil, domain.Invalid("target orders must be positive")
	}

	code := strings.TrimSpace(in.Code)
	if code == "" {
		code = generateCode()
	}

	return s.repo.Create(ctx, domain.Customer{
		Code:         code,
		Name:         in.Name,
		Phone:        in.Phone,
		Address:      in.Address,
		TargetOrders: in.TargetOrders,
	})
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, query, sort string) ([]domain.Customer, error) {
	return s.repo.List(ctx, custrepo.ListInput{Query: query, Sort: sort})
}

// Update edits a customer. When totalOrders or targetOrders is supplied this
// is an administrative override: rewardsAvailable is recomputed as
// floor(total/target), deliberately bypassing the incremental ledger.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*domain.Customer, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	repoIn := custrepo.UpdateInput{
		Code:         orDefault(in.Code, current.Code),
		Name:         orDefault(in.Name, current.Name),
		Phone:        orDefault(in.Phone, current.Phone),
		Address:      orDefault(in.Address, current.Address),
		TotalOrders:  in.TotalOrders,
		TargetOrders: in.TargetOrders,
	}

	if in.TotalOrders != nil || in.TargetOrders != nil {
		total := current.TotalOrders
		if in.TotalOrders != nil {
			total = *in.TotalOrders
		}
		target := current.TargetOrders
		if in.TargetOrders != nil {
			target = *in.TargetOrders
		}
		if total < 0 {
			return nil, domain.Invalid("total orders must not be negative")
		}
		if target <= 0 {
			return nil, domain.Invalid("target orders must be positive")
		}
		rewards := total / target
		repoIn.RewardsAvailable = &rewards
	}

	updated, err := s.repo.Update(ctx, id, repoIn)
	if err != nil {
		return nil, err
	}

	s.invalidateSnapshot(ctx, current.Code)
	if updated.Code != current.Code {
		s.invalidateSnapshot(ctx, updated.Code)
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateSnapshot(ctx, current.Code)
	return nil
}

func (s *Service) invalidateSnapshot(ctx context.Context, code string) {
	if s.snapshots != nil {
		s.snapshots.InvalidateSnapshot(ctx, code)
	}
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// generateCode derives a short human-facing customer id.
func generateCode() string {
	return "C-" + strings.ToUpper(uuid.NewString()[:8])
}
