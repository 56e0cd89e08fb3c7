// Package executor defines the capability contract that bridges workflow
// steps with their backing implementation, the deterministic language-model
// stand-in, and the kind-keyed registry the orchestrator resolves executors
// from.
package executor
