package session

import "time"

// Config holds configuration for the session store.
type Config struct {
	// TTLMinutes is how long a session stays valid after login.
	TTLMinutes int `mapstructure:"ttl_minutes" default:"60"`
	// SweepIntervalSeconds is how often expired sessions are removed.
	SweepIntervalSeconds int `mapstructure:"sweep_interval_seconds" default:"300"`
}

// TTL returns the session time-to-live as a duration.
func (c Config) TTL() time.Duration {
	minutes := c.TTLMinutes
	if minutes <= 0 {
		minutes = 60
	}
	return time.Duration(minutes) * time.Minute
}

// SweepInterval returns the sweep period as a duration.
func (c Config) SweepInterval() time.Duration {
	seconds := c.SweepIntervalSeconds
	if seconds <= 0 {
		seconds = 300
	}
	return time.Duration(seconds) * time.Second
}
