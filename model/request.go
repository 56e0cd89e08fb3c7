package model

import "fmt"

// Status describes the outcome of a single step execution.
type Status string

const (
	// StatusOK marks a successfully completed step.
	StatusOK Status = "ok"
	// StatusRetry asks the runtime to re-execute the step.
	StatusRetry Status = "retry"
	// StatusFail halts the run; the failure is recorded in memory.
	StatusFail Status = "fail"
)

// IsValid reports whether the status is one of the supported values.
func (s Status) IsValid() bool {
	switch s {
	case StatusOK, StatusRetry, StatusFail:
		return true
	}
	return false
}

// StepRequest carries everything an executor needs to perform one step. The
// orchestrator constructs a fresh request per execution; requests are never
// persisted.
type StepRequest struct {
	StepID        int
	Name          string
	Kind          Kind
	CorrelationID string
	Input         interface{}
	// MemoryText is the full memory log snapshot taken when the step starts,
	// so later steps observe earlier steps' summaries.
	MemoryText string
	Config     map[string]interface{}
}

// StepResponse is the structured result an executor returns for one step.
type StepResponse struct {
	Status    Status
	Result    interface{}
	Quality   string
	Artifacts []string
	// NextStep lets an executor override the successor step; zero means no
	// override.
	NextStep int
	Error    string
}

// Validate rejects responses with an unknown status.
func (r *StepResponse) Validate() error {
	if r == nil {
		return fmt.Errorf("step response is nil")
	}
	if !r.Status.IsValid() {
		return fmt.Errorf("unsupported step status: %q", r.Status)
	}
	return nil
}
