// Package workflow persists compiled workflow specifications as YAML. The
// codec is deterministic: struct fields serialize in declaration order,
// config maps in sorted key order, and absent optional fields are omitted
// entirely, so the same workflow always produces byte-identical output.
package workflow

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/stepflow/internal/yml"
	"github.com/viant/stepflow/model"
	"gopkg.in/yaml.v3"
)

const yamlIndent = 2

// EncodeOption customises YAML encoding.
type EncodeOption func(*encodeOptions)

type encodeOptions struct {
	sortKeys bool
}

// WithSortedKeys orders mapping keys lexicographically at every nesting
// level instead of preserving natural order.
func WithSortedKeys() EncodeOption {
	return func(o *encodeOptions) { o.sortKeys = true }
}

// Service loads and saves workflow definitions.
type Service struct {
	fs afs.Service
}

// New creates a workflow DAO; a nil fs gets the default afs service.
func New(fs afs.Service) *Service {
	if fs == nil {
		fs = afs.New()
	}
	return &Service{fs: fs}
}

// EncodeYAML serializes the workflow.
func (s *Service) EncodeYAML(workflow *model.Workflow, options ...EncodeOption) ([]byte, error) {
	opts := &encodeOptions{}
	for _, option := range options {
		option(opts)
	}
	node := &yaml.Node{}
	if err := node.Encode(workflow); err != nil {
		return nil, fmt.Errorf("failed to encode workflow: %w", err)
	}
	if opts.sortKeys {
		yml.SortKeys(node)
	}
	var buffer bytes.Buffer
	encoder := yaml.NewEncoder(&buffer)
	encoder.SetIndent(yamlIndent)
	if err := encoder.Encode(node); err != nil {
		return nil, fmt.Errorf("failed to encode workflow: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// DecodeYAML decodes a workflow, rejecting unknown step kinds and structural
// invariant violations at the parse boundary.
func (s *Service) DecodeYAML(encoded []byte) (*model.Workflow, error) {
	workflow := &model.Workflow{}
	if err := yaml.Unmarshal(encoded, workflow); err != nil {
		return nil, fmt.Errorf("failed to decode workflow: %w", err)
	}
	if issues := workflow.Validate(); len(issues) > 0 {
		return nil, issues[0]
	}
	return workflow, nil
}

// Load reads a workflow from the specified URL; an extension-less URL
// defaults to .yaml.
func (s *Service) Load(ctx context.Context, URL string) (*model.Workflow, error) {
	if filepath.Ext(URL) == "" {
		URL += ".yaml"
	}
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load workflow from %s: %w", URL, err)
	}
	workflow, err := s.DecodeYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse workflow from %s: %w", URL, err)
	}
	return workflow, nil
}

// Save encodes the workflow and writes it to URL, creating parent
// directories as needed.
func (s *Service) Save(ctx context.Context, URL string, workflow *model.Workflow, options ...EncodeOption) error {
	data, err := s.EncodeYAML(workflow, options...)
	if err != nil {
		return err
	}
	if err = s.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to save workflow to %s: %w", URL, err)
	}
	return nil
}
