package analytics

import (
	"context"

	"github.com/ritu-rajkumar/Ri-Eat/internal/repository/analytics"
)

const (
	defaultSalesDays    = 30
	maxSalesWindowDays  = 365
	topItemsLimit       = 10
	defaultTopCustomers = 5
	maxTopCustomers     = 50
)

// Service serves the admin dashboard aggregates.
type Service struct {
	repo analytics.Repository
}

func New(repo analytics.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) TopItems(ctx context.Context) ([]analytics.TopItem, error) {
	return s.repo.TopItems(ctx, topItemsLimit)
}

func (s *Service) Summary(ctx context.Context) (*analytics.Summary, error) {
	return s.repo.Summary(ctx)
}

// SalesDaily returns per-day revenue for the trailing window. Out-of-range
// day counts fall back to the default.
func (s *Service) SalesDaily(ctx context.Context, days int) ([]analytics.DailySales, error) {
	if days <= 0 || days > maxSalesWindowDays {
		days = defaultSalesDays
	}
	return s.repo.SalesDaily(ctx, days)
}

// TopCustomers returns the biggest spenders. Out-of-range limits fall back
// to the default.
func (s *Service) TopCustomers(ctx context.Context, limit int) ([]analytics.TopCustomer, error) {
	if limit <= 0 || limit > maxTopCustomers {
		limit = defaultTopCustomers
	}
	return s.repo.TopCustomers(ctx, limit)
}
