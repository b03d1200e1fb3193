package domain

import "time"

// Admin is a back-office account. PasswordHash is a bcrypt hash; the reset
// fields hold a SHA-256 of the emailed reset token and its expiry.
type Admin struct {
	ID               string     `json:"id"`
	Username         string     `json:"username"`
	Email            string     `json:"email,omitempty"`
	PasswordHash     string     `json:"-"`
	ResetTokenHash   string     `json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`
	CreatedAt        time.Time  `json:"createdAt"`
}
