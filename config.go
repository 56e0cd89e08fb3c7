package stepflow

import "github.com/viant/stepflow/runtime/orchestrator"

// Config represents engine configuration.
type Config struct {
	// Orchestrator configures step retry and loop limits.
	Orchestrator orchestrator.Config `json:"orchestrator" yaml:"orchestrator"`

	// WorkflowsBaseURL is where scaffolded workflow folders are created.
	WorkflowsBaseURL string `json:"workflowsBaseURL" yaml:"workflowsBaseURL"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		Orchestrator:     orchestrator.DefaultConfig(),
		WorkflowsBaseURL: "workflows",
	}
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	return c.Orchestrator.Validate()
}
