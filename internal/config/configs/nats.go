package configs

// Nats configures the NATS connection used for publishing ledger events.
// An empty URL disables publishing; a no-op publisher is wired instead.
type Nats struct {
	URL string `env:"URL" envDefault:""`
}
