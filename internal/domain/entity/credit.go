package entity

import "time"

// CreditAccount is the per-identity consumable balance gating paid AI
// operations. The balance never goes below zero.
type CreditAccount struct {
	UserID    string
	Credits   int
	CreatedAt time.Time
	UpdatedAt time.Time
}
