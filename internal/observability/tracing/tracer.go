// Package tracing exposes the global OpenTelemetry tracer used to create
// spans around outbound backend calls.
package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// tracer is the global tracer instance for the amlsentinel client toolkit.
var tracer = otel.Tracer("amlsentinel")

// GetTracer returns the global tracer for creating spans.
//
// Example usage:
//
//	ctx, span := tracing.GetTracer().Start(ctx, "apiclient.get")
//	defer span.End()
func GetTracer() trace.Tracer {
	return tracer
}
