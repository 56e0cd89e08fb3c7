package executor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/stepflow/container"
	"github.com/viant/stepflow/model"
)

func TestDefaultRegistry(t *testing.T) {
	registry := Default()
	assert.True(t, registry.IsRegistered(model.KindLLM))
	assert.False(t, registry.IsRegistered(model.KindShell))
	assert.False(t, registry.IsRegistered(model.KindPython))

	first, err := registry.Lookup(model.KindLLM)
	assert.NoError(t, err)
	second, err := registry.Lookup(model.KindLLM)
	assert.NoError(t, err)
	assert.Same(t, first, second)
}

func TestRegistryLookupMissingKind(t *testing.T) {
	registry := NewRegistry(nil)
	_, err := registry.Lookup(model.KindShell)
	assert.ErrorIs(t, err, ErrNoExecutor)
	assert.Contains(t, err.Error(), "shell")
}

func TestRegistryFactoryLifetime(t *testing.T) {
	registry := NewRegistry(nil)
	err := registry.RegisterFactory(model.KindLLM, func(*Registry) Service { return NewLLM() }, false)
	assert.NoError(t, err)

	first, err := registry.Lookup(model.KindLLM)
	assert.NoError(t, err)
	second, err := registry.Lookup(model.KindLLM)
	assert.NoError(t, err)
	assert.NotSame(t, first, second)
}

func TestRegistryClearSingletons(t *testing.T) {
	registry := Default()
	first, err := registry.Lookup(model.KindLLM)
	assert.NoError(t, err)

	registry.ClearSingletons()
	assert.True(t, registry.IsRegistered(model.KindLLM))
	second, err := registry.Lookup(model.KindLLM)
	assert.NoError(t, err)
	assert.NotSame(t, first, second)
}

func TestRegistryOverride(t *testing.T) {
	registry := Default()
	err := registry.RegisterInstance(model.KindLLM, NewLLM(), false)
	assert.ErrorIs(t, err, container.ErrAlreadyRegistered)

	replacement := NewLLM()
	assert.NoError(t, registry.RegisterInstance(model.KindLLM, replacement, true))
	resolved, err := registry.Lookup(model.KindLLM)
	assert.NoError(t, err)
	assert.Same(t, replacement, resolved)
}

func TestRegistryNamespacing(t *testing.T) {
	shared := container.New()
	registry := NewRegistry(shared)
	assert.NoError(t, shared.RegisterInstance("llm", "not an executor", false))

	// The flat key must not shadow the namespaced executor key.
	assert.False(t, registry.IsRegistered(model.KindLLM))
	assert.NoError(t, registry.RegisterInstance(model.KindLLM, NewLLM(), false))
	assert.True(t, registry.IsRegistered(model.KindLLM))
}

func TestLLMExecute(t *testing.T) {
	service := NewLLM()
	response, err := service.Execute(context.Background(), &model.StepRequest{
		StepID: 1,
		Name:   "Gather",
		Kind:   model.KindLLM,
		Input:  "collect notes",
	})
	assert.NoError(t, err)
	assert.Equal(t, model.StatusOK, response.Status)
	assert.Equal(t, "good", response.Quality)

	result, ok := response.Result.(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "Gather :: synthesized response", result["message"])
	assert.Equal(t, "collect notes", result["echo"])
}

func TestPlaceholdersFailHard(t *testing.T) {
	ctx := context.Background()
	request := &model.StepRequest{StepID: 1, Name: "Run", Kind: model.KindShell}

	_, err := NewShell().Execute(ctx, request)
	assert.ErrorIs(t, err, ErrNotImplemented)

	_, err = NewPython().Execute(ctx, request)
	assert.ErrorIs(t, err, ErrNotImplemented)
}
