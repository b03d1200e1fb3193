package domain

import "time"

// Claim statuses. A claim moves Pending -> Completed exactly once.
const (
	ClaimPending   = "Pending"
	ClaimCompleted = "Completed"
)

// RewardClaim is a customer's request to redeem one earned reward credit.
// Contact fields are snapshots taken at claim time, independent of later
// customer edits.
type RewardClaim struct {
	ID            string    `json:"id"`
	CustomerID    string    `json:"customer"`
	CustomerCode  string    `json:"customerCode,omitempty"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	Experience    string    `json:"experience"`
	OrdersAtClaim int       `json:"ordersAtClaim"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}
