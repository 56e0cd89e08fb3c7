// Package template provides canned workflow definitions and scaffolds the
// on-disk folder layout a workflow runs in.
package template

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"

	"github.com/viant/stepflow/builder"
)

// DefaultGoal is the goal statement of the code writing template.
const DefaultGoal = "Write production-ready code for the specified task"

// Template describes a predefined workflow: its goal, memory location and
// the folder layout scaffolded for it.
type Template struct {
	Name       string
	Goal       string
	MemoryFile string
}

// CodeWorkflow returns the built-in multi-step code writing template.
func CodeWorkflow(name string) *Template {
	return &Template{
		Name:       name,
		Goal:       DefaultGoal,
		MemoryFile: "memory.md",
	}
}

// Builder returns a builder pre-populated with the template's tasks and
// steps. Callers may keep chaining before compiling.
func (t *Template) Builder() *builder.Builder {
	return builder.New().
		WithGoal(t.Goal).
		Memory(t.MemoryFile).
		RegisterTask("requirements", builder.WithText(RequirementsDoc)).
		RegisterTask("design", builder.WithText(DesignDoc)).
		RegisterTask("implement", builder.WithText(ImplementationDoc)).
		RegisterTask("test", builder.WithText(TestingDoc)).
		AddStep("Gather Requirements",
			builder.WithDoc("Collect and analyze all requirements for the coding task"),
			builder.WithUses("requirements")).
		AddStep("Design Solution",
			builder.WithDoc("Plan the architecture and approach for implementation"),
			builder.WithUses("requirements", "design")).
		AddStep("Implement Code",
			builder.WithDoc("Write the actual code following the design plan"),
			builder.WithUses("design", "implement")).
		AddStep("Test and Review",
			builder.WithDoc("Test the code, review for quality, and suggest improvements"),
			builder.WithUses("implement", "test"))
}

// Scaffold creates the workflow folder under baseURL and returns its
// location. The folder holds the serialized workflow, a seeded memory file
// and empty directories for custom tasks, extra memory, results and logs.
// Existing files are overwritten.
func (t *Template) Scaffold(ctx context.Context, fs afs.Service, baseURL string) (string, error) {
	if fs == nil {
		fs = afs.New()
	}
	folder := url.Join(baseURL, t.Name)
	if err := fs.Create(ctx, folder, file.DefaultDirOsMode, true); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", folder, err)
	}
	for _, dir := range []string{"tasks", "memory", "results", "logs"} {
		if err := fs.Create(ctx, url.Join(folder, dir), file.DefaultDirOsMode, true); err != nil {
			return "", fmt.Errorf("failed to create %s: %w", url.Join(folder, dir), err)
		}
	}
	if err := t.Builder().EmitYAML(ctx, url.Join(folder, "workflow.yaml")); err != nil {
		return "", err
	}
	files := map[string]string{
		"memory.md": memorySeed,
		"README.md": t.readme(),
	}
	for name, content := range files {
		if err := fs.Upload(ctx, url.Join(folder, name), file.DefaultFileOsMode, strings.NewReader(content)); err != nil {
			return "", fmt.Errorf("failed to write %s: %w", url.Join(folder, name), err)
		}
	}
	return folder, nil
}

const memorySeed = "# Workflow Memory\n\nSession memory for workflow execution.\n"

func (t *Template) readme() string {
	return fmt.Sprintf(`# %s

This workflow was generated by stepflow.

## Structure
- workflow.yaml - workflow definition
- memory.md - append-only run memory
- tasks/ - custom task documents
- memory/ - additional memory files
- results/ - workflow outputs and artifacts
- logs/ - execution logs

## Running

stepflow create %s --run
`, t.Name, t.Name)
}
