// Package observability provides OpenTelemetry tracing and metrics for
// stringr's compiled matchers.
//
// Nothing here is required: wildcard.Match and the textops functions never
// touch OpenTelemetry. Hosts that want numbers attach Metrics to a compiled
// matcher with wildcard.WithMetrics.
//
// Metrics:
//
//	cfg := observability.DefaultMeterConfig("my-service")
//	mp, err := observability.InitMeter(ctx, &cfg)
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter(observability.InstrumentationName))
//	m, err := wildcard.Compile("*.log", wildcard.DefaultSpec(), wildcard.WithMetrics(metrics))
//
// Tracing:
//
//	cfg := observability.DefaultTracerConfig("my-service")
//	tp, err := observability.InitTracer(ctx, &cfg)
//	defer tp.Shutdown(ctx)
package observability
