// Package tracing provides a thin OpenTelemetry wrapper so that the engine
// can annotate step execution with spans without the rest of the code base
// importing the upstream packages directly. Applications that do not need
// tracing simply never call Init; spans then become no-ops.
package tracing
