// Package model defines the workflow specification contracts: immutable
// value objects describing tasks, steps, branches and the compiled workflow,
// plus the ephemeral request/response payloads exchanged with executors.
//
// Constructors validate invariants eagerly so that a malformed specification
// fails at construction rather than mid-run.
package model
