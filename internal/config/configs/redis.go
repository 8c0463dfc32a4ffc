package configs

// Redis holds connection settings for the Redis instance backing the
// session sign-out denylist.
type Redis struct {
	// Addr is the host:port of the Redis server.
	Addr string `env:"ADDRESS" envDefault:"localhost:6379"`
	// Password authenticates against the server when set.
	Password string `env:"PASSWORD"`
	// DB selects the logical database number.
	DB int `env:"DB" envDefault:"0"`
}
