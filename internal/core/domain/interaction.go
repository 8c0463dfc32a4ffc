package domain

import "time"

// InteractionKind distinguishes views from clicks.
type InteractionKind string

const (
	InteractionView  InteractionKind = "view"
	InteractionClick InteractionKind = "click"
)

// Valid reports whether k is a known interaction kind.
func (k InteractionKind) Valid() bool {
	return k == InteractionView || k == InteractionClick
}

// AdInteraction records a single view or click event tying a user to an ad.
type AdInteraction struct {
	ID        int64
	AdID      int64
	UserID    string
	Kind      InteractionKind
	CreatedAt time.Time
}
