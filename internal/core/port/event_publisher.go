package port

import (
	"context"

	"adex/internal/core/domain"
)

// EventPublisher is an outbound port for announcing completed ledger
// mutations. Publishing is best-effort: implementations may drop events,
// and callers must never fail a request on a publish error.
type EventPublisher interface {
	PublishLedgerEvent(ctx context.Context, ev domain.LedgerEvent) error
}
