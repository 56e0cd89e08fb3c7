package model

import "fmt"

// Workflow is the immutable, terminal artifact of compilation: a goal
// statement, a memory log location, reusable task documents and an ordered
// plan of steps. Re-deriving a workflow requires rebuilding via the builder.
type Workflow struct {
	Goal       string `json:"goal" yaml:"goal"`
	MemoryFile string `json:"memory_file" yaml:"memory_file"`
	Tasks      []Task `json:"tasks" yaml:"tasks"`
	Steps      []Step `json:"steps" yaml:"steps"`
}

// NewWorkflow creates a workflow, validating its structural invariants.
func NewWorkflow(goal, memoryFile string, tasks []Task, steps []Step) (*Workflow, error) {
	workflow := &Workflow{
		Goal:       goal,
		MemoryFile: memoryFile,
		Tasks:      append(make([]Task, 0, len(tasks)), tasks...),
		Steps:      make([]Step, 0, len(steps)),
	}
	for _, step := range steps {
		workflow.Steps = append(workflow.Steps, step.Clone())
	}
	if issues := workflow.Validate(); len(issues) > 0 {
		return nil, issues[0]
	}
	return workflow, nil
}

// Validate performs a structural validation of the workflow. The returned
// slice is empty when the workflow is sound; otherwise it contains each
// violated invariant. No expression is evaluated here.
func (w *Workflow) Validate() []error {
	var issues []error

	taskIDs := make(map[string]bool, len(w.Tasks))
	for _, task := range w.Tasks {
		if err := task.Validate(); err != nil {
			issues = append(issues, err)
			continue
		}
		if taskIDs[task.ID] {
			issues = append(issues, fmt.Errorf("duplicate task id %q", task.ID))
		}
		taskIDs[task.ID] = true
	}

	stepIDs := make(map[int]bool, len(w.Steps))
	for _, step := range w.Steps {
		if err := step.Validate(); err != nil {
			issues = append(issues, err)
			continue
		}
		if stepIDs[step.ID] {
			issues = append(issues, fmt.Errorf("duplicate step id %d", step.ID))
		}
		stepIDs[step.ID] = true
	}

	// With all ids collected, verify cross references.
	for _, step := range w.Steps {
		for _, taskID := range step.Uses {
			if !taskIDs[taskID] {
				issues = append(issues, fmt.Errorf("step %q references unknown task %q", step.Name, taskID))
			}
		}
		for _, branch := range step.Branches {
			if !stepIDs[branch.Goto] {
				issues = append(issues, fmt.Errorf("step %q goto refers to unknown step %d", step.Name, branch.Goto))
			}
		}
		if step.NextStep != 0 && !stepIDs[step.NextStep] {
			issues = append(issues, fmt.Errorf("step %q next refers to unknown step %d", step.Name, step.NextStep))
		}
	}
	return issues
}

// LookupStep returns the step with the given id, or nil.
func (w *Workflow) LookupStep(id int) *Step {
	for i := range w.Steps {
		if w.Steps[i].ID == id {
			return &w.Steps[i]
		}
	}
	return nil
}

// LookupTask returns the task with the given id, or nil.
func (w *Workflow) LookupTask(id string) *Task {
	for i := range w.Tasks {
		if w.Tasks[i].ID == id {
			return &w.Tasks[i]
		}
	}
	return nil
}
