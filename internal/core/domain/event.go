package domain

import "time"

// Ledger event kinds.
const (
	EventInteraction = "interaction"
	EventAdCreated   = "ad_created"
)

// LedgerEvent describes a completed balance mutation. Events are published
// to the bus best-effort after the mutation commits; consumers must not
// treat them as the source of truth.
type LedgerEvent struct {
	Kind      string    `json:"kind"`
	UserID    string    `json:"user_id"`
	AdID      int64     `json:"ad_id"`
	Delta     int64     `json:"delta"`
	Balance   int64     `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
}
