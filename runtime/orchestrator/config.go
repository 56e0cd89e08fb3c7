package orchestrator

import (
	"fmt"
	"time"
)

// Config represents orchestrator configuration.
type Config struct {
	// MaxStepRetries bounds how many times a step reporting a retry status
	// is re-executed before the run treats it as failed.
	MaxStepRetries int `json:"maxStepRetries" yaml:"maxStepRetries"`

	// RetryDelay is the pause between retry attempts.
	RetryDelay time.Duration `json:"retryDelay" yaml:"retryDelay"`

	// MaxVisits bounds how many times any single step may execute within
	// one run, so that branch loops cannot spin forever.
	MaxVisits int `json:"maxVisits" yaml:"maxVisits"`
}

// DefaultConfig returns the default orchestrator configuration.
func DefaultConfig() Config {
	return Config{
		MaxStepRetries: 1,
		RetryDelay:     3 * time.Second,
		MaxVisits:      10,
	}
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c.MaxStepRetries < 0 {
		return fmt.Errorf("maxStepRetries must be >= 0")
	}
	if c.MaxVisits <= 0 {
		return fmt.Errorf("maxVisits must be > 0")
	}
	return nil
}
