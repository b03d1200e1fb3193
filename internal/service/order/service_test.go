package order

import (
	"context"
	"errors"
	"testing"

	"github.com/ritu-rajkumar/Ri-Eat/internal/domain"
	orderrepo "github.com/ritu-rajkumar/Ri-Eat/internal/repository/order"
)

type stubOrderRepo struct {
	created     *domain.Order
	createErr   error
	lastCreate  orderrepo.CreateInput
	existing    *domain.Order
	getErr      error
	updated     *domain.Order
	updateErr   error
	lastID      string
	lastUpdate  orderrepo.UpdateInput
	deleteErr   error
	lastDeleted string
}

func (s *stubOrderRepo) Create(_ context.Context, in orderrepo.CreateInput) (*domain.Order, error) {
	s.lastCreate = in
	return s.created, s.createErr
}

func (s *stubOrderRepo) GetByID(_ context.Context, _ string) (*domain.Order, error) {
	return s.existing, s.getErr
}

func (s *stubOrderRepo) List(_ context.Context, _ string) ([]domain.Order, error) {
	return nil, nil
}

func (s *stubOrderRepo) Update(_ context.Context, id string, in orderrepo.UpdateInput) (*domain.Order, error) {
	s.lastID = id
	s.lastUpdate = in
	return s.updated, s.updateErr
}

func (s *stubOrderRepo) Delete(_ context.Context, id string) error {
	s.lastDeleted = id
	return s.deleteErr
}

type stubMenuRepo struct {
	items map[string]domain.MenuItem
	err   error
}

func (s *stubMenuRepo) GetByIDs(_ context.Context, _ []string) (map[string]domain.MenuItem, error) {
	return s.items, s.err
}

type stubCustomerRepo struct {
	customer *domain.Customer
	err      error
}

func (s *stubCustomerRepo) GetByID(_ context.Context, _ string) (*domain.Customer, error) {
	return s.customer, s.err
}

type stubSnapshots struct {
	codes []string
}

func (s *stubSnapshots) InvalidateSnapshot(_ context.Context, code string) {
	s.codes = append(s.codes, code)
}

func testMenu() map[string]domain.MenuItem {
	return map[string]domain.MenuItem{
		"m1": {ID: "m1", Name: "Chatpata Bhujia Sandwich", PriceCents: 3900},
		"m2": {ID: "m2", Name: "Protein Punch Sandwich", PriceCents: 4900},
	}
}

func TestCreateRequiresItems(t *testing.T) {
	svc := New(&stubOrderRepo{}, &stubMenuRepo{}, &stubCustomerRepo{}, nil)
	_, err := svc.Create(context.Background(), Input{Customer: "c1"})
	if err == nil || err.Error() != "items required" {
		t.Fatalf("expected items error, got %v", err)
	}
}

func TestCreateRejectsNonPositiveQuantity(t *testing.T) {
	svc := New(&stubOrderRepo{}, &stubMenuRepo{items: testMenu()}, &stubCustomerRepo{}, nil)
	_, err := svc.Create(context.Background(), Input{
		Customer: "c1",
		Items:    []LineInput{{MenuItem: "m1", Quantity: 0}},
	})
	if err == nil || err.Error() != "quantity must be positive" {
		t.Fatalf("expected quantity error, got %v", err)
	}
}

func TestCreateRejectsUnknownMenuItem(t *testing.T) {
	svc := New(&stubOrderRepo{}, &stubMenuRepo{items: testMenu()}, &stubCustomerRepo{}, nil)
	_, err := svc.Create(context.Background(), Input{
		Customer: "c1",
		Items:    []LineInput{{MenuItem: "nope", Quantity: 1}},
	})
	if err == nil || err.Error() != "invalid menu item" {
		t.Fatalf("expected invalid menu item, got %v", err)
	}
}

func TestCreateRequiresExistingCustomer(t *testing.T) {
	svc := New(&stubOrderRepo{}, &stubMenuRepo{items: testMenu()}, &stubCustomerRepo{err: domain.ErrNotFound}, nil)
	_, err := svc.Create(context.Background(), Input{
		Customer: "ghost",
		Items:    []LineInput{{MenuItem: "m1", Quantity: 1}},
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCreateComputesTotal(t *testing.T) {
	repo := &stubOrderRepo{created: &domain.Order{ID: "o1"}}
	svc := New(repo, &stubMenuRepo{items: testMenu()}, &stubCustomerRepo{customer: &domain.Customer{ID: "c1"}}, nil)

	got, err := svc.Create(context.Background(), Input{
		Customer: "c1",
		Items: []LineInput{
			{MenuItem: "m1", Quantity: 2},
			{MenuItem: "m2", Quantity: 3},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "o1" {
		t.Fatalf("unexpected order: %+v", got)
	}
	if repo.lastCreate.TotalCents != 2*3900+3*4900 {
		t.Fatalf("unexpected total: %d", repo.lastCreate.TotalCents)
	}
	if len(repo.lastCreate.Lines) != 2 {
		t.Fatalf("unexpected lines: %+v", repo.lastCreate.Lines)
	}
}

func TestCreateInvalidatesOwnerSnapshot(t *testing.T) {
	repo := &stubOrderRepo{created: &domain.Order{ID: "o1"}}
	snaps := &stubSnapshots{}
	svc := New(repo, &stubMenuRepo{items: testMenu()}, &stubCustomerRepo{customer: &domain.Customer{ID: "c1", Code: "C004"}}, snaps)

	_, err := svc.Create(context.Background(), Input{
		Customer: "c1",
		Items:    []LineInput{{MenuItem: "m1", Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snaps.codes) != 1 || snaps.codes[0] != "C004" {
		t.Fatalf("expected snapshot invalidation for C004, got %v", snaps.codes)
	}
}

func TestUpdateValidatesBeforeRepo(t *testing.T) {
	repo := &stubOrderRepo{}
	svc := New(repo, &stubMenuRepo{items: testMenu()}, &stubCustomerRepo{}, nil)
	_, err := svc.Update(context.Background(), "o1", Input{Customer: "c1"})
	if err == nil || err.Error() != "items required" {
		t.Fatalf("expected items error, got %v", err)
	}
	if repo.lastID != "" {
		t.Fatalf("repo must not be called on validation failure")
	}
}

func TestUpdatePassesNewOwnerAndTotal(t *testing.T) {
	repo := &stubOrderRepo{
		existing: &domain.Order{ID: "o1", CustomerID: "c1", CustomerCode: "C001"},
		updated:  &domain.Order{ID: "o1", CustomerID: "c2", CustomerCode: "C002"},
	}
	svc := New(repo, &stubMenuRepo{items: testMenu()}, &stubCustomerRepo{}, nil)

	got, err := svc.Update(context.Background(), "o1", Input{
		Customer: "c2",
		Items:    []LineInput{{MenuItem: "m1", Quantity: 5}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.CustomerID != "c2" {
		t.Fatalf("unexpected order: %+v", got)
	}
	if repo.lastUpdate.CustomerID != "c2" || repo.lastUpdate.TotalCents != 5*3900 {
		t.Fatalf("unexpected update input: %+v", repo.lastUpdate)
	}
}

func TestUpdateInvalidatesBothOwners(t *testing.T) {
	repo := &stubOrderRepo{
		existing: &domain.Order{ID: "o1", CustomerID: "c1", CustomerCode: "C001"},
		updated:  &domain.Order{ID: "o1", CustomerID: "c2", CustomerCode: "C002"},
	}
	snaps := &stubSnapshots{}
	svc := New(repo, &stubMenuRepo{items: testMenu()}, &stubCustomerRepo{}, snaps)

	_, err := svc.Update(context.Background(), "o1", Input{
		Customer: "c2",
		Items:    []LineInput{{MenuItem: "m1", Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snaps.codes) != 2 || snaps.codes[0] != "C001" || snaps.codes[1] != "C002" {
		t.Fatalf("expected both owners invalidated, got %v", snaps.codes)
	}
}

func TestUpdatePropagatesNotFound(t *testing.T) {
	repo := &stubOrderRepo{getErr: domain.ErrNotFound}
	svc := New(repo, &stubMenuRepo{items: testMenu()}, &stubCustomerRepo{}, nil)
	_, err := svc.Update(context.Background(), "missing", Input{
		Customer: "c1",
		Items:    []LineInput{{MenuItem: "m1", Quantity: 1}},
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	repo := &stubOrderRepo{existing: &domain.Order{ID: "o1", CustomerCode: "C001"}}
	snaps := &stubSnapshots{}
	svc := New(repo, &stubMenuRepo{}, &stubCustomerRepo{}, snaps)
	if err := svc.Delete(context.Background(), "o1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastDeleted != "o1" {
		t.Fatalf("delete not forwarded")
	}
	if len(snaps.codes) != 1 || snaps.codes[0] != "C001" {
		t.Fatalf("expected owner snapshot invalidated, got %v", snaps.codes)
	}
}
