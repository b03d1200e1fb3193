package analytics

import "context"

// TopItem is a menu item ranked by total quantity sold.
type TopItem struct {
	MenuItemID string `json:"menuItemId"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Quantity   int    `json:"qty"`
}

// Summary is the dashboard headline numbers.
type Summary struct {
	TotalCustomers int   `json:"totalCustomers"`
	TotalItems     int   `json:"totalItems"`
	TotalRevenue   int64 `json:"totalRevenue"`
}

// DailySales is one day's revenue and order count.
type DailySales struct {
	Day     string `json:"day"`
	Revenue int64  `json:"revenue"`
	Orders  int    `json:"orders"`
}

// TopCustomer is a customer ranked by total spend.
type TopCustomer struct {
	CustomerID string `json:"customerId"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	Spent      int64  `json:"spent"`
	Orders     int    `json:"orders"`
}

type Repository interface {
	TopItems(ctx context.Context, limit int) ([]TopItem, error)
	Summary(ctx context.Context) (*Summary, error)
	SalesDaily(ctx context.Context, days int) ([]DailySales, error)
	TopCustomers(ctx context.Context, limit int) ([]TopCustomer, error)
}
