package model

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Kind identifies the execution strategy of a workflow step.
type Kind string

const (
	// KindLLM delegates the step to a language model executor.
	KindLLM Kind = "llm"
	// KindShell delegates the step to a shell executor.
	KindShell Kind = "shell"
	// KindPython delegates the step to a python executor.
	KindPython Kind = "python"
)

// Kinds returns all supported step kinds.
func Kinds() []Kind {
	return []Kind{KindLLM, KindShell, KindPython}
}

// ParseKind converts a textual kind into a Kind, failing on unknown values so
// that bad input is rejected at the parse boundary.
func ParseKind(text string) (Kind, error) {
	switch Kind(text) {
	case KindLLM, KindShell, KindPython:
		return Kind(text), nil
	}
	return "", fmt.Errorf("unsupported step kind: %q", text)
}

// String implements fmt.Stringer.
func (k Kind) String() string { return string(k) }

// IsValid reports whether the kind is one of the supported values.
func (k Kind) IsValid() bool {
	_, err := ParseKind(string(k))
	return err == nil
}

// UnmarshalYAML validates the kind while decoding workflow documents.
func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	var text string
	if err := node.Decode(&text); err != nil {
		return err
	}
	parsed, err := ParseKind(text)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
