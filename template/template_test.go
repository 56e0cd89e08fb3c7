package template

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/stepflow/model"
	"github.com/viant/stepflow/service/dao/workflow"
)

func TestCodeWorkflow_Builder(t *testing.T) {
	compiled, err := CodeWorkflow("demo").Builder().Compile()
	assert.Nil(t, err)
	assert.Equal(t, DefaultGoal, compiled.Goal)
	assert.Equal(t, "memory.md", compiled.MemoryFile)
	if !assert.Equal(t, 4, len(compiled.Tasks)) || !assert.Equal(t, 4, len(compiled.Steps)) {
		return
	}
	assert.Equal(t, "requirements", compiled.Tasks[0].ID)
	assert.Equal(t, RequirementsDoc, compiled.Tasks[0].Text)
	assert.Equal(t, "Gather Requirements", compiled.Steps[0].Name)
	assert.Equal(t, model.KindLLM, compiled.Steps[0].Kind)
	assert.Equal(t, []string{"requirements", "design"}, compiled.Steps[1].Uses)
	assert.Equal(t, []string{"implement", "test"}, compiled.Steps[3].Uses)
	for i, step := range compiled.Steps {
		assert.Equal(t, i+1, step.ID)
	}
}

func TestCodeWorkflow_BuilderChaining(t *testing.T) {
	compiled, err := CodeWorkflow("demo").Builder().
		WithGoal("Ship the parser").
		AddStep("Document").
		Compile()
	assert.Nil(t, err)
	assert.Equal(t, "Ship the parser", compiled.Goal)
	assert.Equal(t, 5, len(compiled.Steps))
	assert.Equal(t, 5, compiled.Steps[4].ID)
}

func TestTemplate_Scaffold(t *testing.T) {
	base := t.TempDir()
	folder, err := CodeWorkflow("sample").Scaffold(context.Background(), nil, base)
	assert.Nil(t, err)
	assert.Equal(t, filepath.Join(base, "sample"), folder)

	for _, dir := range []string{"tasks", "memory", "results", "logs"} {
		info, err := os.Stat(filepath.Join(folder, dir))
		if assert.Nil(t, err, dir) {
			assert.True(t, info.IsDir(), dir)
		}
	}

	memory, err := os.ReadFile(filepath.Join(folder, "memory.md"))
	assert.Nil(t, err)
	assert.Contains(t, string(memory), "# Workflow Memory")

	readme, err := os.ReadFile(filepath.Join(folder, "README.md"))
	assert.Nil(t, err)
	assert.Contains(t, string(readme), "# sample")

	loaded, err := workflow.New(nil).Load(context.Background(), filepath.Join(folder, "workflow.yaml"))
	assert.Nil(t, err)
	expected, err := CodeWorkflow("sample").Builder().Compile()
	assert.Nil(t, err)
	assert.EqualValues(t, expected, loaded)
}
