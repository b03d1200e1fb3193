package domain

import "time"

// MenuItem is a sellable dish. Name is unique; price is stored in cents.
type MenuItem struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	PriceCents int64     `json:"priceCents"`
	CreatedAt  time.Time `json:"createdAt"`
}
