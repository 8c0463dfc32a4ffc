package natsadapter

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go"

	"adex/internal/core/domain"
)

// Subjects for published ledger events.
const (
	SubjectInteractions = "ledger.interactions"
	SubjectAds          = "ledger.ads"
)

// Publisher implements port.EventPublisher over a NATS connection. Events
// are fire-and-forget; delivery is not awaited.
type Publisher struct {
	conn *nats.Conn
}

// NewPublisher returns a publisher bound to the given connection.
func NewPublisher(conn *nats.Conn) *Publisher {
	return &Publisher{conn: conn}
}

// PublishLedgerEvent marshals the event and publishes it on the subject
// matching its kind.
func (p *Publisher) PublishLedgerEvent(_ context.Context, ev domain.LedgerEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	subject := SubjectInteractions
	if ev.Kind == domain.EventAdCreated {
		subject = SubjectAds
	}
	return p.conn.Publish(subject, data)
}

// NopPublisher discards all events. It is wired when no NATS URL is
// configured.
type NopPublisher struct{}

func (NopPublisher) PublishLedgerEvent(context.Context, domain.LedgerEvent) error { return nil }
