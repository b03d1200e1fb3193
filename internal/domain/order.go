package domain

import "time"

// Order references a customer and a non-empty list of menu-item lines.
// TotalCents is derived from menu prices at save time.
type Order struct {
	ID           string      `json:"id"`
	CustomerID   string      `json:"customer"`
	CustomerCode string      `json:"customerCode,omitempty"`
	CustomerName string      `json:"customerName,omitempty"`
	Lines        []OrderLine `json:"items"`
	TotalCents   int64       `json:"totalCents"`
	CreatedAt    time.Time   `json:"createdAt"`
}

// OrderLine is one menu item with a positive quantity. MenuItemName and
// UnitPriceCents are denormalized display fields populated on reads.
type OrderLine struct {
	MenuItemID     string `json:"menuItem"`
	MenuItemName   string `json:"menuItemName,omitempty"`
	UnitPriceCents int64  `json:"unitPriceCents,omitempty"`
	Quantity       int    `json:"quantity"`
}
