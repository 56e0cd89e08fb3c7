package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestNewTask(t *testing.T) {
	testCases := []struct {
		name        string
		id          string
		file        string
		text        string
		expectError bool
	}{
		{name: "text only", id: "notes", text: "remember the goal"},
		{name: "file only", id: "notes", file: "tasks/notes.md"},
		{name: "file and text", id: "notes", file: "tasks/notes.md", text: "inline"},
		{name: "no source", id: "notes", expectError: true},
		{name: "no id", text: "inline", expectError: true},
	}
	for _, testCase := range testCases {
		_, err := NewTask(testCase.id, testCase.file, testCase.text)
		if testCase.expectError {
			assert.Error(t, err, testCase.name)
			continue
		}
		assert.NoError(t, err, testCase.name)
	}
}

func TestParseKind(t *testing.T) {
	for _, kind := range Kinds() {
		parsed, err := ParseKind(kind.String())
		assert.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}
	_, err := ParseKind("graphql")
	assert.Error(t, err)
}

func TestKindUnmarshalYAML(t *testing.T) {
	var step Step
	err := yaml.Unmarshal([]byte("id: 1\nname: Gather\nkind: rust\ndoc: ''\n"), &step)
	assert.Error(t, err)

	err = yaml.Unmarshal([]byte("id: 1\nname: Gather\nkind: shell\ndoc: ''\n"), &step)
	assert.NoError(t, err)
	assert.Equal(t, KindShell, step.Kind)
}

func TestNewWorkflowValidation(t *testing.T) {
	notes := Task{ID: "notes", Text: "jot things down"}
	gather := Step{ID: 1, Name: "Gather", Kind: KindLLM, Uses: []string{"notes"}}

	testCases := []struct {
		name        string
		tasks       []Task
		steps       []Step
		expectError string
	}{
		{
			name:  "valid",
			tasks: []Task{notes},
			steps: []Step{gather},
		},
		{
			name:        "duplicate task ids",
			tasks:       []Task{notes, {ID: "notes", Text: "again"}},
			steps:       []Step{gather},
			expectError: `duplicate task id "notes"`,
		},
		{
			name:        "duplicate step ids",
			tasks:       []Task{notes},
			steps:       []Step{gather, {ID: 1, Name: "Again", Kind: KindLLM}},
			expectError: "duplicate step id 1",
		},
		{
			name:        "unknown task reference",
			tasks:       []Task{notes},
			steps:       []Step{{ID: 1, Name: "Gather", Kind: KindLLM, Uses: []string{"missing"}}},
			expectError: `step "Gather" references unknown task "missing"`,
		},
		{
			name:        "goto to unknown step",
			tasks:       []Task{notes},
			steps:       []Step{{ID: 1, Name: "Gather", Kind: KindLLM, Branches: []Branch{{When: "status == \"ok\"", Goto: 9}}}},
			expectError: `step "Gather" goto refers to unknown step 9`,
		},
		{
			name:        "next to unknown step",
			tasks:       []Task{notes},
			steps:       []Step{{ID: 1, Name: "Gather", Kind: KindLLM, NextStep: 5}},
			expectError: `step "Gather" next refers to unknown step 5`,
		},
	}

	for _, testCase := range testCases {
		workflow, err := NewWorkflow("demo goal", "memory.md", testCase.tasks, testCase.steps)
		if testCase.expectError != "" {
			assert.EqualError(t, err, testCase.expectError, testCase.name)
			continue
		}
		if !assert.NoError(t, err, testCase.name) {
			continue
		}
		assert.Equal(t, "demo goal", workflow.Goal)
		assert.Empty(t, workflow.Validate())
	}
}

func TestWorkflowIndependence(t *testing.T) {
	uses := []string{"notes"}
	config := map[string]interface{}{"temperature": 0.2}
	steps := []Step{{ID: 1, Name: "Gather", Kind: KindLLM, Uses: uses, Config: config}}
	tasks := []Task{{ID: "notes", Text: "jot things down"}}

	workflow, err := NewWorkflow("demo goal", "memory.md", tasks, steps)
	assert.NoError(t, err)

	// Mutating the inputs must not leak into the compiled workflow.
	uses[0] = "other"
	config["temperature"] = 0.9
	assert.Equal(t, []string{"notes"}, workflow.Steps[0].Uses)
	assert.Equal(t, 0.2, workflow.Steps[0].Config["temperature"])
}

func TestWorkflowLookup(t *testing.T) {
	workflow, err := NewWorkflow("demo goal", "memory.md",
		[]Task{{ID: "notes", Text: "jot"}},
		[]Step{
			{ID: 1, Name: "Gather", Kind: KindLLM},
			{ID: 2, Name: "Summarize", Kind: KindLLM},
		})
	assert.NoError(t, err)

	assert.Equal(t, "Summarize", workflow.LookupStep(2).Name)
	assert.Nil(t, workflow.LookupStep(3))
	assert.Equal(t, "jot", workflow.LookupTask("notes").Text)
	assert.Nil(t, workflow.LookupTask("missing"))
}
