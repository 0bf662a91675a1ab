package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/stringr/logger"
	"github.com/kbukum/stringr/version"
)

// InstrumentationName is the meter and tracer name used by stringr.
const InstrumentationName = "github.com/kbukum/stringr"

// Metric instrument names.
const (
	MetricMatchTotal    = "stringr.match.total"
	MetricMatchCells    = "stringr.match.cells"
	MetricMatchDuration = "stringr.match.duration"
	MetricFilterInputs  = "stringr.filter.inputs"
	MetricFilterKept    = "stringr.filter.kept"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the host service.
	ServiceName string `yaml:"service_name" mapstructure:"service_name"`
	// ServiceVersion is the version of the host service.
	ServiceVersion string `yaml:"service_version" mapstructure:"service_version"`
	// Environment is the deployment environment (dev, staging, prod).
	Environment string `yaml:"environment" mapstructure:"environment"`
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string `yaml:"endpoint" mapstructure:"endpoint"`
	// Insecure allows insecure connections (for development).
	Insecure bool `yaml:"insecure" mapstructure:"insecure"`
	// Interval is the metric export interval.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider with an OTLP HTTP exporter.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider, tagged with the
// stringr version.
func Meter(name string) metric.Meter {
	return otel.Meter(name, metric.WithInstrumentationVersion(version.String()))
}

// Metrics holds the instruments recorded by compiled matchers.
// A nil *Metrics records nothing.
type Metrics struct {
	matchTotal    metric.Int64Counter
	matchCells    metric.Int64Histogram
	matchDuration metric.Float64Histogram
	filterInputs  metric.Int64Counter
	filterKept    metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	matchTotal, err := meter.Int64Counter(MetricMatchTotal,
		metric.WithDescription("Total number of wildcard matches by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricMatchTotal, err)
	}

	matchCells, err := meter.Int64Histogram(MetricMatchCells,
		metric.WithDescription("Size of the match table per wildcard match"),
		metric.WithUnit("{cell}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricMatchCells, err)
	}

	matchDuration, err := meter.Float64Histogram(MetricMatchDuration,
		metric.WithDescription("Duration of wildcard matches in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricMatchDuration, err)
	}

	filterInputs, err := meter.Int64Counter(MetricFilterInputs,
		metric.WithDescription("Inputs processed by matcher filters by mode"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricFilterInputs, err)
	}

	filterKept, err := meter.Int64Counter(MetricFilterKept,
		metric.WithDescription("Inputs kept by matcher filters by mode"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricFilterKept, err)
	}

	return &Metrics{
		matchTotal:    matchTotal,
		matchCells:    matchCells,
		matchDuration: matchDuration,
		filterInputs:  filterInputs,
		filterKept:    filterKept,
	}, nil
}

// RecordMatch records one wildcard match.
func (m *Metrics) RecordMatch(ctx context.Context, matched bool, cells int, duration time.Duration) {
	if m == nil {
		return
	}
	m.matchTotal.Add(ctx, 1, metric.WithAttributes(attribute.Bool("matched", matched)))
	m.matchCells.Record(ctx, int64(cells))
	m.matchDuration.Record(ctx, duration.Seconds())
}

// RecordFilter records a filter call over inputs, of which kept matched.
func (m *Metrics) RecordFilter(ctx context.Context, mode string, inputs, kept int) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("mode", mode))
	m.filterInputs.Add(ctx, int64(inputs), attrs)
	m.filterKept.Add(ctx, int64(kept), attrs)
}
