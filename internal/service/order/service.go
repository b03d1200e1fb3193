package order

import (
	"context"
	"strings"

	"github.com/ritu-rajkumar/Ri-Eat/internal/domain"
	orderrepo "github.com/ritu-rajkumar/Ri-Eat/internal/repository/order"
)

// Service validates order payloads, prices them against the menu and hands
// the result to the repository, which runs the order write together with the
// loyalty ledger transition.
type Service struct {
	repo      orderRepo
	menuRepo  menuRepo
	custRepo  customerRepo
	snapshots snapshotInvalidator
}

type orderRepo interface {
	Create(ctx context.Context, in orderrepo.CreateInput) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context, customerID string) ([]domain.Order, error)
	Update(ctx context.Context, id string, in orderrepo.UpdateInput) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
}

type menuRepo interface {
	GetByIDs(ctx context.Context, ids []string) (map[string]domain.MenuItem, error)
}

type customerRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
}

// snapshotInvalidator drops the cached public loyalty view for a customer
// code. Order mutations move the loyalty counters, so the snapshot must not
// outlive them.
type snapshotInvalidator interface {
	InvalidateSnapshot(ctx context.Context, code string)
}

func New(repo orderRepo, menuRepo menuRepo, custRepo customerRepo, snapshots snapshotInvalidator) *Service {
	return &Service{repo: repo, menuRepo: menuRepo, custRepo: custRepo, snapshots: snapshots}
}

// LineInput is one requested order line.
type LineInput struct {
	MenuItem string `json:"menuItem"`
	Quantity int    `json:"quantity"`
}

// Input is the create/update payload.
type Input struct {
	Customer string      `json:"customer"`
	Items    []LineInput `json:"items"`
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.Order, error) {
	lines, total, err := s.priceItems(ctx, in.Items)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Customer) == "" {
		return nil, domain.Invalid("customer required")
	}
	// An order needs an owner at creation; later customer deletion only
	// orphans the reference.
	owner, err := s.custRepo.GetByID(ctx, in.Customer)
	if err != nil {
		return nil, err
	}

	ord, err := s.repo.Create(ctx, orderrepo.CreateInput{
		CustomerID: in.Customer,
		Lines:      lines,
		TotalCents: total,
	})
	if err != nil {
		return nil, err
	}

	s.invalidateSnapshot(ctx, owner.Code)
	return ord, nil
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*domain.Order, error) {
	lines, total, err := s.priceItems(ctx, in.Items)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Customer) == "" {
		return nil, domain.Invalid("customer required")
	}

	// The previous owner's snapshot goes stale too when the order moves.
	old, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	ord, err := s.repo.Update(ctx, id, orderrepo.UpdateInput{
		CustomerID: in.Customer,
		Lines:      lines,
		TotalCents: total,
	})
	if err != nil {
		return nil, err
	}

	s.invalidateSnapshot(ctx, old.CustomerCode)
	if ord.CustomerCode != old.CustomerCode {
		s.invalidateSnapshot(ctx, ord.CustomerCode)
	}
	return ord, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	old, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateSnapshot(ctx, old.CustomerCode)
	return nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, customerID string) ([]domain.Order, error) {
	return s.repo.List(ctx, customerID)
}

func (s *Service) invalidateSnapshot(ctx context.Context, code string) {
	if s.snapshots != nil {
		s.snapshots.InvalidateSnapshot(ctx, code)
	}
}

// priceItems resolves every line against the menu and returns priced lines
// plus the order total.
func (s *Service) priceItems(ctx context.Context, items []LineInput) ([]domain.OrderLine, int64, error) {
	if len(items) == 0 {
		return nil, 0, domain.Invalid("items required")
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item.MenuItem) == "" {
			return nil, 0, domain.Invalid("menu item required")
		}
		if item.Quantity <= 0 {
			return nil, 0, domain.Invalid("quantity must be positive")
		}
		ids = append(ids, item.MenuItem)
	}

	menu, err := s.menuRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	lines := make([]domain.OrderLine, 0, len(items))
	var total int64
	for _, item := range items {
		m, ok := menu[item.MenuItem]
		if !ok {
			return nil, 0, domain.Invalid("invalid menu item")
		}
		lines = append(lines, domain.OrderLine{
			MenuItemID: m.ID,
			Quantity:   item.Quantity,
		})
		total += m.PriceCents * int64(item.Quantity)
	}
	return lines, total, nil
}
