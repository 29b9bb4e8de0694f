// Package observability provides OpenTelemetry tracing and metrics for
// demo runs.
//
// Setup:
//
//	shutdown, err := observability.Setup(ctx, cfg.Tracing, "streams-demo", version, env)
//	defer shutdown(ctx)
//
// Per problem:
//
//	pc := observability.NewProblemContext(runID, 4, "top-n", metrics)
//	ctx, span := pc.Start(ctx)
//	...
//	pc.End(ctx, span, elements, err)
//
// When tracing is disabled the global no-op providers are used, so spans
// and instruments cost nothing.
package observability
