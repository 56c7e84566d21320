package source

// Config holds configuration for remote document fetching.
type Config struct {
	// TimeoutSeconds is the connection-level timeout for outgoing
	// requests (dial, TLS handshake, first response byte).
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// MaxConcurrent caps how many fetch+compare tasks of a URL batch
	// may be in flight at once.
	MaxConcurrent int `mapstructure:"max_concurrent" default:"8"`
}

// Concurrency returns the batch fan-out limit, guarding against
// nonsensical configuration.
func (c Config) Concurrency() int {
	if c.MaxConcurrent <= 0 {
		return 8
	}
	return c.MaxConcurrent
}
