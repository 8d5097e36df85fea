package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// Connection attempts made before giving up at startup
	ConnectAttempts uint
	ConnectDelay    time.Duration

	// GameTTL is how long an untouched game snapshot is kept
	GameTTL time.Duration
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:             "redis://localhost:6379",
		PoolSize:        10,
		MinIdleConns:    2,
		ConnectAttempts: 3,
		ConnectDelay:    200 * time.Millisecond,
		GameTTL:         7 * 24 * time.Hour,
	}
}
