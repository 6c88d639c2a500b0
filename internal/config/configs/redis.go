package configs

import "time"

// Redis configures the optional sponsored-selection cache. An empty Addr
// disables caching entirely; a Redis that cannot be reached at startup is
// likewise skipped, since the cache only backs the advisory homepage poll.
type Redis struct {
	Addr     string `env:"ADDRESS" envDefault:""`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB" envDefault:"0"`
	// SponsoredTTL is the lifetime of the cached homepage selection.
	SponsoredTTL time.Duration `env:"SPONSORED_TTL" envDefault:"30s"`
}
