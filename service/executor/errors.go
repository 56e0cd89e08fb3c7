package executor

import "errors"

var (
	// ErrNotImplemented is returned by placeholder executors.
	ErrNotImplemented = errors.New("executor not implemented")

	// ErrNoExecutor is returned when no executor is registered for a kind.
	ErrNoExecutor = errors.New("no executor registered")
)
