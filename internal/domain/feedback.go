package domain

import "time"

// Feedback is an append-only customer comment about a menu item or the
// restaurant in general ("General"). No loyalty interaction.
type Feedback struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	CustomerCode string    `json:"customerId,omitempty"`
	MenuItem     string    `json:"menuItem"`
	Text         string    `json:"feedbackText"`
	CreatedAt    time.Time `json:"createdAt"`
}
