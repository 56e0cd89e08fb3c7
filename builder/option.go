package builder

import "github.com/viant/stepflow/model"

// TaskOption customises a task registration.
type TaskOption func(*model.Task)

// WithFile sources the task content from a file.
func WithFile(path string) TaskOption {
	return func(task *model.Task) { task.File = path }
}

// WithText sources the task content from literal text.
func WithText(text string) TaskOption {
	return func(task *model.Task) { task.Text = text }
}

// StepOption customises a step before it is appended.
type StepOption func(*Builder, *model.Step) error

// WithKind overrides the default llm kind.
func WithKind(kind model.Kind) StepOption {
	return func(_ *Builder, step *model.Step) error {
		step.Kind = kind
		return nil
	}
}

// WithDoc sets the step documentation string.
func WithDoc(doc string) StepOption {
	return func(_ *Builder, step *model.Step) error {
		step.Doc = doc
		return nil
	}
}

// WithUses references previously registered task documents in order.
func WithUses(taskIDs ...string) StepOption {
	return func(_ *Builder, step *model.Step) error {
		step.Uses = append(step.Uses, taskIDs...)
		return nil
	}
}

// WithInput sets the step input template.
func WithInput(template string) StepOption {
	return func(_ *Builder, step *model.Step) error {
		step.InputTemplate = template
		return nil
	}
}

// WithConfig merges configuration values into the step.
func WithConfig(config map[string]interface{}) StepOption {
	return func(_ *Builder, step *model.Step) error {
		if len(config) == 0 {
			return nil
		}
		if step.Config == nil {
			step.Config = make(map[string]interface{}, len(config))
		}
		for key, value := range config {
			step.Config[key] = value
		}
		return nil
	}
}

// WithBranches appends conditional jumps. Each branch may be a model.Branch
// or a map-shaped definition ({when, goto}), which is normalized.
func WithBranches(branches ...interface{}) StepOption {
	return func(b *Builder, step *model.Step) error {
		for _, value := range branches {
			branch, err := b.coerceBranch(value)
			if err != nil {
				return err
			}
			step.Branches = append(step.Branches, branch)
		}
		return nil
	}
}

// WithNext overrides the sequential successor step id.
func WithNext(stepID int) StepOption {
	return func(_ *Builder, step *model.Step) error {
		step.NextStep = stepID
		return nil
	}
}
