package reward

import (
	"context"
	"io"
	"log"
	"strings"
	"time"

	"github.com/ritu-rajkumar/Ri-Eat/internal/cache"
	"github.com/ritu-rajkumar/Ri-Eat/internal/domain"
	claimrepo "github.com/ritu-rajkumar/Ri-Eat/internal/repository/claim"
)

// Service handles the public loyalty lookup and the reward claim workflow.
type Service struct {
	claims    claimRepo
	customers customerRepo
	cache     cache.Cache
	cacheTTL  time.Duration
	logger    *log.Logger
}

type claimRepo interface {
	Submit(ctx context.Context, in claimrepo.SubmitInput) (*domain.RewardClaim, error)
	Complete(ctx context.Context, id string, nextTargetOrders int) (*domain.RewardClaim, error)
	GetByID(ctx context.Context, id string) (*domain.RewardClaim, error)
	List(ctx context.Context, in claimrepo.ListInput) ([]domain.RewardClaim, error)
}

type customerRepo interface {
	GetByCode(ctx context.Context, code string) (*domain.Customer, error)
}

func New(claims claimRepo, customers customerRepo, c cache.Cache, cacheTTL time.Duration, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{claims: claims, customers: customers, cache: c, cacheTTL: cacheTTL, logger: logger}
}

// Snapshot is the public loyalty view of a customer.
type Snapshot struct {
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	TotalOrders      int    `json:"totalOrders"`
	TargetOrders     int    `json:"targetOrders"`
	RewardsAvailable int    `json:"rewardsAvailable"`
}

// SubmitInput is the public claim payload. CustomerCode is the human-facing
// customer id printed on loyalty cards.
type SubmitInput struct {
	CustomerCode string `json:"customerId"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Experience   string `json:"experience"`
}

// Lookup returns the loyalty snapshot for a customer code, served from cache
// when fresh.
func (s *Service) Lookup(ctx context.Context, code string) (*Snapshot, error) {
	key := cacheKey(code)
	if s.cache != nil {
		var snap Snapshot
		if err := cache.GetJSON(ctx, s.cache, key, &snap); err == nil {
			return &snap, nil
		}
	}

	c, err := s.customers.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	snap := Snapshot{
		Name:             c.Name,
		Phone:            c.Phone,
		TotalOrders:      c.TotalOrders,
		TargetOrders:     c.TargetOrders,
		RewardsAvailable: c.RewardsAvailable,
	}
	if s.cache != nil {
		if err := cache.SetJSON(ctx, s.cache, key, snap, s.cacheTTL); err != nil {
			s.logger.Printf("reward service: cache set %s: %v", key, err)
		}
	}
	return &snap, nil
}

// Submit spends one reward credit for the customer identified by code.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*domain.RewardClaim, error) {
	for _, field := range []string{in.CustomerCode, in.Name, in.Phone, in.Address, in.Experience} {
		if strings.TrimSpace(field) == "" {
			return nil, domain.Invalid("all fields required")
		}
	}

	c, err := s.customers.GetByCode(ctx, in.CustomerCode)
	if err != nil {
		return nil, err
	}

	cl, err := s.claims.Submit(ctx, claimrepo.SubmitInput{
		CustomerID: c.ID,
		Name:       in.Name,
		Phone:      in.Phone,
		Address:    in.Address,
		Experience: in.Experience,
	})
	if err != nil {
		return nil, err
	}

	s.InvalidateSnapshot(ctx, in.CustomerCode)
	return cl, nil
}

// Complete fulfills a pending claim and resets the owner's cycle. Completing
// an already-completed claim is a no-op.
func (s *Service) Complete(ctx context.Context, id string, nextTargetOrders int) (*domain.RewardClaim, error) {
	cl, err := s.claims.Complete(ctx, id, nextTargetOrders)
	if err != nil {
		return nil, err
	}
	if cl.CustomerCode != "" {
		s.InvalidateSnapshot(ctx, cl.CustomerCode)
	}
	return cl, nil
}

func (s *Service) GetClaim(ctx context.Context, id string) (*domain.RewardClaim, error) {
	return s.claims.GetByID(ctx, id)
}

func (s *Service) ListClaims(ctx context.Context, status, customerID string) ([]domain.RewardClaim, error) {
	return s.claims.List(ctx, claimrepo.ListInput{Status: status, CustomerID: customerID})
}

// InvalidateSnapshot drops the cached loyalty view for a customer code. The
// order and customer services call it whenever they move the counters the
// snapshot is built from.
func (s *Service) InvalidateSnapshot(ctx context.Context, code string) {
	if s.cache == nil || code == "" {
		return
	}
	if err := s.cache.Delete(ctx, cacheKey(code)); err != nil {
		s.logger.Printf("reward service: cache delete %s: %v", cacheKey(code), err)
	}
}

func cacheKey(code string) string {
	return "loyalty:" + code
}
