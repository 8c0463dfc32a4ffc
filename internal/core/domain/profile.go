package domain

// Profile is a user's account as seen by the ledger: an opaque identifier,
// a display name and a token balance. The balance never goes negative.
type Profile struct {
	ID       string
	Username string
	Tokens   int64
}
