// Package progress provides a lightweight tracker that keeps aggregated
// step counters (executed, completed, failed) for a single workflow run.
// The tracker plugs into the orchestrator as an observer, so any component
// holding it can inspect run progress without touching engine internals.
package progress

import (
	"sync"
	"time"

	"github.com/viant/stepflow/model"
)

// Progress keeps aggregated step counters for one workflow run. It is safe
// for concurrent use.
type Progress struct {
	// Identification, informative only, filled when the run starts.
	Workflow  string
	StartedAt time.Time

	// Counters, modified by observer callbacks.
	StartedSteps   int
	CompletedSteps int
	FailedSteps    int

	mux      sync.Mutex
	onChange func(Progress)
}

// NewTracker creates a progress tracker. The optional onChange callback is
// invoked with a snapshot after every counter update, outside the critical
// section, so it may perform slow operations without blocking the run.
func NewTracker(workflow string, onChange func(Progress)) *Progress {
	return &Progress{
		Workflow:  workflow,
		StartedAt: time.Now(),
		onChange:  onChange,
	}
}

// OnStepStart counts a step execution attempt.
func (p *Progress) OnStepStart(_ *model.StepRequest) {
	p.update(func() { p.StartedSteps++ })
}

// OnStepFinish counts a completed step.
func (p *Progress) OnStepFinish(_ *model.StepRequest, _ *model.StepResponse) {
	p.update(func() { p.CompletedSteps++ })
}

// OnStepError counts a failed step.
func (p *Progress) OnStepError(_ *model.StepRequest, _ *model.StepResponse) {
	p.update(func() { p.FailedSteps++ })
}

// Snapshot returns a copy of the tracker suitable for read-only inspection.
func (p *Progress) Snapshot() Progress {
	if p == nil {
		return Progress{}
	}
	p.mux.Lock()
	defer p.mux.Unlock()
	return p.snapshot()
}

func (p *Progress) update(apply func()) {
	if p == nil {
		return
	}
	p.mux.Lock()
	apply()
	snapshot := p.snapshot()
	cb := p.onChange
	p.mux.Unlock()
	if cb != nil {
		cb(snapshot)
	}
}

// snapshot copies counters without the mutex; callers hold the lock.
func (p *Progress) snapshot() Progress {
	return Progress{
		Workflow:       p.Workflow,
		StartedAt:      p.StartedAt,
		StartedSteps:   p.StartedSteps,
		CompletedSteps: p.CompletedSteps,
		FailedSteps:    p.FailedSteps,
	}
}
