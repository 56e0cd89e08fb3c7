// Package orchestrator drives step-by-step execution of a compiled
// workflow. Execution is single-threaded and strictly sequential: a step's
// full lifecycle (request build, dispatch, response, memory append,
// notification) completes before the next step starts. Branch conditions,
// executor-provided next-step overrides and bounded retry decide the
// successor; otherwise steps run in list order.
package orchestrator
