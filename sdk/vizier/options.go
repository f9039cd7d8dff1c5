package vizier

import "time"

type dialConfig struct {
	healthTimeout time.Duration
	logf          func(string, ...any)
}

// DialOption configures Dial.
type DialOption func(*dialConfig)

// WithHealthTimeout bounds how long Dial waits for the server to report
// healthy before giving up.
func WithHealthTimeout(timeout time.Duration) DialOption {
	return func(cfg *dialConfig) {
		cfg.healthTimeout = timeout
	}
}

// WithLogf routes dial progress messages to a logger.
func WithLogf(logf func(string, ...any)) DialOption {
	return func(cfg *dialConfig) {
		cfg.logf = logf
	}
}
