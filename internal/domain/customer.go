package domain

import "time"

// Customer is a loyalty program member. TotalOrders counts item-units ordered
// in the current reward cycle; RewardsAvailable counts earned, unclaimed
// credits. Both are mutated only through the loyalty ledger and the claim flow.
type Customer struct {
	ID               string    `json:"id"`
	Code             string    `json:"customerId"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone"`
	Address          string    `json:"address"`
	TotalOrders      int       `json:"totalOrders"`
	TargetOrders     int       `json:"targetOrders"`
	RewardsAvailable int       `json:"rewardsAvailable"`
	TotalSpent       int64     `json:"totalSpent,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}
