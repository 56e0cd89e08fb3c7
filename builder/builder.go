// Package builder assembles workflow specifications incrementally with
// eager validation and freezes them into immutable model.Workflow values.
// The builder latches the first error it encounters: once an operation
// fails, subsequent calls are no-ops and Compile reports the failure, which
// keeps fluent chains usable while still surfacing violations at the call
// that caused them.
package builder

import (
	"context"
	"fmt"

	"github.com/viant/structology/conv"

	"github.com/viant/stepflow/model"
	"github.com/viant/stepflow/service/dao/workflow"
)

// Builder incrementally assembles a workflow specification.
type Builder struct {
	goal       string
	memoryFile string
	tasks      []model.Task
	taskIndex  map[string]int
	steps      []model.Step
	converter  *conv.Converter
	err        error
}

// New creates a fresh builder with no goal or memory configured.
func New() *Builder {
	return &Builder{
		taskIndex: make(map[string]int),
		converter: conv.NewConverter(conv.DefaultOptions()),
	}
}

// WithGoal sets the workflow goal; the last call wins.
func (b *Builder) WithGoal(goal string) *Builder {
	if b.err != nil {
		return b
	}
	b.goal = goal
	return b
}

// Memory configures the memory file location; the last call wins.
func (b *Builder) Memory(path string) *Builder {
	if b.err != nil {
		return b
	}
	b.memoryFile = path
	return b
}

// RegisterTask stores a reusable task document. Registration order is
// preserved for deterministic serialization.
func (b *Builder) RegisterTask(id string, options ...TaskOption) *Builder {
	if b.err != nil {
		return b
	}
	if _, ok := b.taskIndex[id]; ok {
		b.err = fmt.Errorf("%w: task %q", ErrDuplicateTask, id)
		return b
	}
	task := model.Task{ID: id}
	for _, option := range options {
		option(&task)
	}
	if err := task.Validate(); err != nil {
		b.err = err
		return b
	}
	b.taskIndex[id] = len(b.tasks)
	b.tasks = append(b.tasks, task)
	return b
}

// AddStep appends a step, auto-assigning its id as one plus the number of
// steps already added. Task references are checked eagerly: an unknown id in
// uses fails the builder at this call and the step is not appended.
func (b *Builder) AddStep(name string, options ...StepOption) *Builder {
	if b.err != nil {
		return b
	}
	step := model.Step{
		ID:   len(b.steps) + 1,
		Name: name,
		Kind: model.KindLLM,
	}
	for _, option := range options {
		if err := option(b, &step); err != nil {
			b.err = err
			return b
		}
	}
	for _, taskID := range step.Uses {
		if _, ok := b.taskIndex[taskID]; !ok {
			b.err = fmt.Errorf("%w: step %q references task %q", ErrUnknownTask, name, taskID)
			return b
		}
	}
	if err := step.Validate(); err != nil {
		b.err = err
		return b
	}
	b.steps = append(b.steps, step)
	return b
}

// Err returns the first error encountered by the fluent chain, if any.
func (b *Builder) Err() error {
	return b.err
}

// Compile freezes the current state into a new immutable workflow. The
// result does not alias builder state; compiling twice without intervening
// mutation yields identical workflows.
func (b *Builder) Compile() (*model.Workflow, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.goal == "" {
		return nil, ErrMissingGoal
	}
	if b.memoryFile == "" {
		return nil, ErrMissingMemory
	}
	return model.NewWorkflow(b.goal, b.memoryFile, b.tasks, b.steps)
}

// EmitYAML compiles the workflow and writes it as YAML to URL, creating
// parent directories as needed. Output is deterministic for identical
// builder state.
func (b *Builder) EmitYAML(ctx context.Context, URL string, options ...workflow.EncodeOption) error {
	compiled, err := b.Compile()
	if err != nil {
		return err
	}
	return workflow.New(nil).Save(ctx, URL, compiled, options...)
}

// coerceBranch normalizes a branch input: model.Branch values pass through,
// map-shaped definitions are converted.
func (b *Builder) coerceBranch(value interface{}) (model.Branch, error) {
	switch actual := value.(type) {
	case model.Branch:
		return actual, nil
	case *model.Branch:
		return *actual, nil
	}
	var branch model.Branch
	if err := b.converter.Convert(value, &branch); err != nil {
		return model.Branch{}, fmt.Errorf("unsupported branch definition %T: %w", value, err)
	}
	return branch, nil
}
