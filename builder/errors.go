package builder

import "errors"

var (
	// ErrDuplicateTask is returned when a task id is registered twice.
	ErrDuplicateTask = errors.New("builder: duplicate task")

	// ErrUnknownTask is returned when a step uses an unregistered task id.
	ErrUnknownTask = errors.New("builder: unknown task reference")

	// ErrMissingGoal is returned when compiling without a goal.
	ErrMissingGoal = errors.New("builder: workflow goal must be provided before compilation")

	// ErrMissingMemory is returned when compiling without a memory file.
	ErrMissingMemory = errors.New("builder: memory file must be configured before compilation")
)
