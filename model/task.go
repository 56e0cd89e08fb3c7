package model

import "fmt"

// Task is a reusable instructional document referenced by workflow steps.
// Exactly one workflow owns a task; steps refer to it by ID via their uses
// list. A task sources its content either from a file or from literal text.
type Task struct {
	ID   string `json:"id" yaml:"id"`
	File string `json:"file,omitempty" yaml:"file,omitempty"`
	Text string `json:"text,omitempty" yaml:"text,omitempty"`
}

// NewTask creates a task, requiring at least one content source.
func NewTask(id, file, text string) (Task, error) {
	task := Task{ID: id, File: file, Text: text}
	if err := task.Validate(); err != nil {
		return Task{}, err
	}
	return task, nil
}

// Validate checks the task invariants.
func (t Task) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("task requires an id")
	}
	if t.File == "" && t.Text == "" {
		return fmt.Errorf("task %q requires a file or text source", t.ID)
	}
	return nil
}
