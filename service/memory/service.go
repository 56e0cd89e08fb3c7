// Package memory persists the append-only textual memory log shared by all
// steps of a workflow run. The log doubles as the context fed back into
// subsequent step requests, so reads always return the full file content.
package memory

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

// Service reads and appends workflow memory files. Access follows a
// single-process, single-run discipline; no concurrent writers are assumed.
type Service struct {
	fs afs.Service
}

// New creates a memory service; a nil fs gets the default afs service.
func New(fs afs.Service) *Service {
	if fs == nil {
		fs = afs.New()
	}
	return &Service{fs: fs}
}

// Read returns the full memory content, or an empty string when the file
// does not exist yet.
func (s *Service) Read(ctx context.Context, URL string) (string, error) {
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return "", fmt.Errorf("failed to check memory file %s: %w", URL, err)
	}
	if !exists {
		return "", nil
	}
	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return "", fmt.Errorf("failed to read memory file %s: %w", URL, err)
	}
	return string(data), nil
}

// Append writes one line to the end of the memory file, creating the file
// and any parent directories on first use.
func (s *Service) Append(ctx context.Context, URL, line string) error {
	current, err := s.Read(ctx, URL)
	if err != nil {
		return err
	}
	var buffer bytes.Buffer
	buffer.WriteString(current)
	buffer.WriteString(strings.TrimRight(line, "\n"))
	buffer.WriteString("\n")
	if err = s.fs.Upload(ctx, URL, file.DefaultFileOsMode, &buffer); err != nil {
		return fmt.Errorf("failed to append to memory file %s: %w", URL, err)
	}
	return nil
}
