package model

import "fmt"

// Branch is a conditional jump instruction attached to a step. The condition
// expression is opaque to the model; the runtime evaluates it against the
// step outcome after the step completes.
type Branch struct {
	When string `json:"when" yaml:"when"`
	Goto int    `json:"goto" yaml:"goto"`
}

// Validate checks the branch invariants.
func (b Branch) Validate() error {
	if b.When == "" {
		return fmt.Errorf("branch requires a when expression")
	}
	if b.Goto <= 0 {
		return fmt.Errorf("branch requires a positive goto step id")
	}
	return nil
}

// Step is a single executable unit in a workflow. Steps are immutable once
// created; their position in the workflow step list defines the default
// execution order unless branches or NextStep override it.
type Step struct {
	ID            int                    `json:"id" yaml:"id"`
	Name          string                 `json:"name" yaml:"name"`
	Kind          Kind                   `json:"kind" yaml:"kind"`
	Doc           string                 `json:"doc" yaml:"doc"`
	Uses          []string               `json:"uses,omitempty" yaml:"uses,omitempty"`
	InputTemplate string                 `json:"input,omitempty" yaml:"input,omitempty"`
	Config        map[string]interface{} `json:"config,omitempty" yaml:"config,omitempty"`
	Branches      []Branch               `json:"branches,omitempty" yaml:"branches,omitempty"`
	// NextStep overrides the sequential successor; zero means unset.
	NextStep int `json:"next,omitempty" yaml:"next,omitempty"`
}

// Validate checks step-local invariants. Task reference resolution belongs
// to the builder and workflow validation, not to step construction.
func (s Step) Validate() error {
	if s.ID <= 0 {
		return fmt.Errorf("step %q requires a positive id", s.Name)
	}
	if s.Name == "" {
		return fmt.Errorf("step %d requires a name", s.ID)
	}
	if !s.Kind.IsValid() {
		return fmt.Errorf("step %q has unsupported kind %q", s.Name, s.Kind)
	}
	for _, branch := range s.Branches {
		if err := branch.Validate(); err != nil {
			return fmt.Errorf("step %q: %w", s.Name, err)
		}
	}
	return nil
}

// Clone returns a deep copy so that compiled workflows never alias builder
// state.
func (s Step) Clone() Step {
	clone := s
	if len(s.Uses) > 0 {
		clone.Uses = append([]string(nil), s.Uses...)
	}
	if len(s.Branches) > 0 {
		clone.Branches = append([]Branch(nil), s.Branches...)
	}
	if len(s.Config) > 0 {
		clone.Config = make(map[string]interface{}, len(s.Config))
		for k, v := range s.Config {
			clone.Config[k] = v
		}
	}
	return clone
}
