package analytics

import (
	"context"
	"testing"

	"github.com/ritu-rajkumar/Ri-Eat/internal/repository/analytics"
)

type stubRepo struct {
	lastItemsLimit     int
	lastDays           int
	lastCustomersLimit int
}

func (s *stubRepo) TopItems(_ context.Context, limit int) ([]analytics.TopItem, error) {
	s.lastItemsLimit = limit
	return nil, nil
}

func (s *stubRepo) Summary(_ context.Context) (*analytics.Summary, error) {
	return &analytics.Summary{}, nil
}

func (s *stubRepo) SalesDaily(_ context.Context, days int) ([]analytics.DailySales, error) {
	s.lastDays = days
	return nil, nil
}

func (s *stubRepo) TopCustomers(_ context.Context, limit int) ([]analytics.TopCustomer, error) {
	s.lastCustomersLimit = limit
	return nil, nil
}

func TestSalesDailyClampsWindow(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)

	cases := []struct{ in, want int }{
		{0, defaultSalesDays},
		{-5, defaultSalesDays},
		{9999, defaultSalesDays},
		{14, 14},
	}
	for _, c := range cases {
		if _, err := svc.SalesDaily(context.Background(), c.in); err != nil {
			t.Fatalf("SalesDaily(%d): %v", c.in, err)
		}
		if repo.lastDays != c.want {
			t.Fatalf("SalesDaily(%d): expected %d days, got %d", c.in, c.want, repo.lastDays)
		}
	}
}

func TestTopCustomersClampsLimit(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)

	cases := []struct{ in, want int }{
		{0, defaultTopCustomers},
		{-1, defaultTopCustomers},
		{500, defaultTopCustomers},
		{3, 3},
	}
	for _, c := range cases {
		if _, err := svc.TopCustomers(context.Background(), c.in); err != nil {
			t.Fatalf("TopCustomers(%d): %v", c.in, err)
		}
		if repo.lastCustomersLimit != c.want {
			t.Fatalf("TopCustomers(%d): expected limit %d, got %d", c.in, c.want, repo.lastCustomersLimit)
		}
	}
}

func TestTopItemsUsesFixedLimit(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)
	if _, err := svc.TopItems(context.Background()); err != nil {
		t.Fatalf("TopItems: %v", err)
	}
	if repo.lastItemsLimit != topItemsLimit {
		t.Fatalf("expected limit %d, got %d", topItemsLimit, repo.lastItemsLimit)
	}
}
