package reward

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ritu-rajkumar/Ri-Eat/internal/cache"
	"github.com/ritu-rajkumar/Ri-Eat/internal/domain"
	claimrepo "github.com/ritu-rajkumar/Ri-Eat/internal/repository/claim"
)

type stubClaimRepo struct {
	submitted    *domain.RewardClaim
	submitErr    error
	lastSubmit   claimrepo.SubmitInput
	completed    *domain.RewardClaim
	completeErr  error
	lastComplete string
	lastTarget   int
}

func (s *stubClaimRepo) Submit(_ context.Context, in claimrepo.SubmitInput) (*domain.RewardClaim, error) {
	s.lastSubmit = in
	return s.submitted, s.submitErr
}

func (s *stubClaimRepo) Complete(_ context.Context, id string, nextTarget int) (*domain.RewardClaim, error) {
	s.lastComplete = id
	s.lastTarget = nextTarget
	return s.completed, s.completeErr
}

func (s *stubClaimRepo) GetByID(_ context.Context, _ string) (*domain.RewardClaim, error) {
	return s.completed, s.completeErr
}

func (s *stubClaimRepo) List(_ context.Context, _ claimrepo.ListInput) ([]domain.RewardClaim, error) {
	return nil, nil
}

type stubCustomerRepo struct {
	customer *domain.Customer
	err      error
	calls    int
}

func (s *stubCustomerRepo) GetByCode(_ context.Context, _ string) (*domain.Customer, error) {
	s.calls++
	return s.customer, s.err
}

func validSubmit() SubmitInput {
	return SubmitInput{
		CustomerCode: "C004",
		Name:         "Sarah Wilson",
		Phone:        "111-222-3333",
		Address:      "123 Test St",
		Experience:   "Great sandwiches",
	}
}

func TestSubmitRequiresAllFields(t *testing.T) {
	svc := New(&stubClaimRepo{}, &stubCustomerRepo{}, nil, 0, nil)
	in := validSubmit()
	in.Experience = "  "
	_, err := svc.Submit(context.Background(), in)
	if err == nil || err.Error() != "all fields required" {
		t.Fatalf("expected field validation error, got %v", err)
	}
}

func TestSubmitUnknownCustomer(t *testing.T) {
	svc := New(&stubClaimRepo{}, &stubCustomerRepo{err: domain.ErrNotFound}, nil, 0, nil)
	_, err := svc.Submit(context.Background(), validSubmit())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestSubmitNoRewards(t *testing.T) {
	claims := &stubClaimRepo{submitErr: domain.ErrNoRewards}
	svc := New(claims, &stubCustomerRepo{customer: &domain.Customer{ID: "c1", Code: "C004"}}, nil, 0, nil)
	_, err := svc.Submit(context.Background(), validSubmit())
	if !errors.Is(err, domain.ErrNoRewards) {
		t.Fatalf("expected no rewards, got %v", err)
	}
}

func TestSubmitResolvesCustomerAndSnapshots(t *testing.T) {
	claims := &stubClaimRepo{submitted: &domain.RewardClaim{ID: "r1", Status: domain.ClaimPending}}
	svc := New(claims, &stubCustomerRepo{customer: &domain.Customer{ID: "c1", Code: "C004"}}, nil, 0, nil)

	got, err := svc.Submit(context.Background(), validSubmit())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != domain.ClaimPending {
		t.Fatalf("unexpected claim: %+v", got)
	}
	if claims.lastSubmit.CustomerID != "c1" || claims.lastSubmit.Experience != "Great sandwiches" {
		t.Fatalf("unexpected submit input: %+v", claims.lastSubmit)
	}
}

func TestSubmitInvalidatesCachedSnapshot(t *testing.T) {
	ctx := context.Background()
	mem := cache.NewMemory()
	cust := &stubCustomerRepo{customer: &domain.Customer{ID: "c1", Code: "C004", Name: "Sarah", RewardsAvailable: 1}}
	claims := &stubClaimRepo{submitted: &domain.RewardClaim{ID: "r1"}}
	svc := New(claims, cust, mem, time.Minute, nil)

	if _, err := svc.Lookup(ctx, "C004"); err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if _, err := svc.Lookup(ctx, "C004"); err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if cust.calls != 1 {
		t.Fatalf("expected second lookup served from cache, repo calls=%d", cust.calls)
	}

	if _, err := svc.Submit(ctx, validSubmit()); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := svc.Lookup(ctx, "C004"); err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if cust.calls != 3 {
		t.Fatalf("expected cache invalidated by submit, repo calls=%d", cust.calls)
	}
}

func TestCompleteForwardsNextTarget(t *testing.T) {
	claims := &stubClaimRepo{completed: &domain.RewardClaim{ID: "r1", Status: domain.ClaimCompleted, CustomerCode: "C004"}}
	svc := New(claims, &stubCustomerRepo{}, nil, 0, nil)

	got, err := svc.Complete(context.Background(), "r1", 25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != domain.ClaimCompleted {
		t.Fatalf("unexpected claim: %+v", got)
	}
	if claims.lastComplete != "r1" || claims.lastTarget != 25 {
		t.Fatalf("unexpected complete args: %s %d", claims.lastComplete, claims.lastTarget)
	}
}

func TestCompleteNotFound(t *testing.T) {
	claims := &stubClaimRepo{completeErr: domain.ErrNotFound}
	svc := New(claims, &stubCustomerRepo{}, nil, 0, nil)
	_, err := svc.Complete(context.Background(), "missing", 0)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestLookupUnknownCustomer(t *testing.T) {
	svc := New(&stubClaimRepo{}, &stubCustomerRepo{err: domain.ErrNotFound}, nil, 0, nil)
	_, err := svc.Lookup(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
