package observability

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"
)

const tracerName = "hyply"

// Providers bundles the metric and trace providers a breakdown run records
// against, plus the teardown that flushes them before the process exits.
// Metrics are always exported to the process-wide Prometheus registry
// (scraped via MetricsHandler); an OTLP gRPC endpoint, when given, adds a
// second push-based metrics reader and turns tracing on.
type Providers struct {
	MeterProvider metric.MeterProvider
	Tracer        trace.Tracer
	Shutdown      func(ctx context.Context) error
}

// Init builds the metric and trace providers for a run. otlpEndpoint is
// normally sourced from the standard OTEL_EXPORTER_OTLP_ENDPOINT
// environment variable; an empty string keeps tracing a no-op and metrics
// Prometheus-only.
func Init(otlpEndpoint string) (Providers, error) {
	ctx := context.Background()

	promExporter, err := prometheus.New()
	if err != nil {
		return Providers{}, fmt.Errorf("create prometheus exporter: %w", err)
	}

	readerOpts := []sdkmetric.Option{sdkmetric.WithReader(promExporter)}
	shutdowns := []func(context.Context) error{}
	tp := trace.TracerProvider(nooptrace.NewTracerProvider())

	if otlpEndpoint != "" {
		metricExporter, err := otlpmetricgrpc.New(ctx,
			otlpmetricgrpc.WithEndpoint(otlpEndpoint),
			otlpmetricgrpc.WithInsecure(),
		)
		if err != nil {
			return Providers{}, fmt.Errorf("create otlp metric exporter: %w", err)
		}
		readerOpts = append(readerOpts, sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)))

		traceExporter, err := otlptracegrpc.New(ctx,
			otlptracegrpc.WithEndpoint(otlpEndpoint),
			otlptracegrpc.WithInsecure(),
		)
		if err != nil {
			return Providers{}, fmt.Errorf("create otlp trace exporter: %w", err)
		}

		realTP := sdktrace.NewTracerProvider(sdktrace.WithBatcher(traceExporter))
		tp = realTP
		shutdowns = append(shutdowns, realTP.Shutdown)
	}

	mp := sdkmetric.NewMeterProvider(readerOpts...)
	shutdowns = append(shutdowns, mp.Shutdown)

	otel.SetMeterProvider(mp)
	otel.SetTracerProvider(tp)

	shutdown := func(ctx context.Context) error {
		var joined error
		for _, fn := range shutdowns {
			if err := fn(ctx); err != nil {
				joined = errors.Join(joined, err)
			}
		}
		return joined
	}

	return Providers{
		MeterProvider: mp,
		Tracer:        tp.Tracer(tracerName),
		Shutdown:      shutdown,
	}, nil
}

// MetricsHandler serves the process-wide Prometheus registry the exporter
// built by Init registers against, for a caller that wants to expose it over
// HTTP while a long breakdown run is in flight.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
