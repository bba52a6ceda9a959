// Package observability provides OpenTelemetry tracing and metrics for
// hofkit evaluations and selections.
//
// Setup installs OTLP/HTTP exporters when enabled and returns a shutdown
// function; when disabled the global no-op providers stay in place and
// spans and instruments cost nothing.
//
//	shutdown, err := observability.Setup(ctx, cfg.Observability, "hofkit", version.GetVersionInfo().Version)
//	defer shutdown(ctx)
//
//	oc := observability.NewOperationContext("hofkit", "zip", requestID, metrics)
//	ctx, span := oc.StartSpanForOperation(ctx, observability.SpanEvaluate)
//	defer oc.EndOperation(ctx, span, err)
package observability
