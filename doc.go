// Package stepflow provides a linear multi-step workflow engine.
//
// A workflow is an immutable specification: a goal, a memory log location,
// reusable task documents and an ordered list of steps. Workflows are
// assembled with the fluent builder, serialized deterministically to YAML
// and executed one step at a time by the orchestrator, which appends a
// one-line summary of every completed step to the append-only memory log.
//
// End-users typically interact with the engine via the high-level Service
// façade exposed by the root package:
//
//	srv := stepflow.New()
//	workflow, _ := srv.LoadWorkflow(ctx, "workflow.yaml")
//	responses, _ := srv.Run(ctx, workflow)
//
// For more details see the README and individual sub-packages.
package stepflow
