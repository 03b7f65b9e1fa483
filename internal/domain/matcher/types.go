package matcher

import "errors"

// ErrSearchTooLarge is returned when an exhaustive search would have to
// enumerate more subsets than the configured ceilings allow.
var ErrSearchTooLarge = errors.New("candidate pool too large for exhaustive search")

// Config holds matcher configuration
type Config struct {
	Tolerance         float64 // Max acceptable |sum - target| (default: 0.40)
	MaxItems          int     // Max products per combination (default: 5)
	MaxExhaustivePool int     // Pool size ceiling for exhaustive search (default: 25)
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Tolerance:         0.40,
		MaxItems:          5,
		MaxExhaustivePool: 25,
	}
}

// Matcher runs price searches over a catalog snapshot
type Matcher struct {
	config Config
}

// NewMatcher creates a new matcher with the given config
func NewMatcher(config Config) *Matcher {
	return &Matcher{
		config: config,
	}
}

// Config returns the active configuration
func (m *Matcher) Config() Config {
	return m.config
}
