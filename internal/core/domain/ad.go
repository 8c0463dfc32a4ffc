package domain

import "time"

// Ad is a posted advertisement. Ads are immutable after creation; the
// tokens spent on posting are recorded for accounting but never refunded.
type Ad struct {
	ID          int64
	UserID      string
	Title       string
	Description string
	Link        string
	TokensSpent int64
	CreatedAt   time.Time

	// OwnerUsername is populated on listings that join the owning profile
	// for display. It is empty elsewhere.
	OwnerUsername string
}
