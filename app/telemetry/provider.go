// Package telemetry wires OpenTelemetry tracing and metrics into the feeds
// keeper. A Provider owns the SDK pipelines and hands the keeper a tracer
// and the module instruments.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	metricsdk "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

const (
	instrumentationName = "github.com/paw-chain/feeds/x/feeds"
	serviceName         = "paw-feeds"
	serviceVersion      = "1.0.0"
)

// Option adds a pipeline component to a Provider.
type Option func(*options)

type options struct {
	spanProcessors []tracesdk.SpanProcessor
	readers        []metricsdk.Reader
	registerer     promclient.Registerer
}

// WithSpanProcessor attaches sp to the tracer provider. Spans are recorded
// even when OTLP export is disabled.
func WithSpanProcessor(sp tracesdk.SpanProcessor) Option {
	return func(o *options) { o.spanProcessors = append(o.spanProcessors, sp) }
}

// WithMetricReader attaches r to the meter provider.
func WithMetricReader(r metricsdk.Reader) Option {
	return func(o *options) { o.readers = append(o.readers, r) }
}

// WithPrometheusRegisterer sets the registry the Prometheus exporter
// registers with. Defaults to prometheus.DefaultRegisterer.
func WithPrometheusRegisterer(reg promclient.Registerer) Option {
	return func(o *options) { o.registerer = reg }
}

// Provider holds the tracer and meter pipelines used by the feeds keeper.
// The zero pipelines are no-ops.
type Provider struct {
	tracerProvider *tracesdk.TracerProvider
	meterProvider  *metricsdk.MeterProvider

	tracer      trace.Tracer
	meter       metric.Meter
	instruments *Instruments
}

// Noop returns a Provider that records nothing.
func Noop() *Provider {
	meter := metricnoop.NewMeterProvider().Meter(instrumentationName)
	instruments, err := NewInstruments(meter)
	if err != nil {
		panic(err)
	}
	return &Provider{
		tracer:      tracenoop.NewTracerProvider().Tracer(instrumentationName),
		meter:       meter,
		instruments: instruments,
	}
}

// NewProvider builds the pipelines cfg asks for plus any components passed
// in opts. The caller must call Shutdown.
func NewProvider(ctx context.Context, cfg Config, opts ...Option) (*Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid telemetry config: %w", err)
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	p := Noop()

	res, err := resource.New(ctx, resource.WithAttributes(
		semconv.ServiceName(serviceName),
		semconv.ServiceVersion(serviceVersion),
		attribute.String("environment", cfg.Environment),
		attribute.String("chain.id", cfg.ChainID),
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	if cfg.Enabled || len(o.spanProcessors) > 0 {
		tpOpts := []tracesdk.TracerProviderOption{
			tracesdk.WithResource(res),
			tracesdk.WithSampler(tracesdk.ParentBased(tracesdk.TraceIDRatioBased(cfg.SampleRate))),
		}
		for _, sp := range o.spanProcessors {
			tpOpts = append(tpOpts, tracesdk.WithSpanProcessor(sp))
		}
		if cfg.Enabled {
			exporter, err := otlptrace.New(ctx, otlptracehttp.NewClient(
				otlptracehttp.WithEndpoint(cfg.otlpHost()),
				otlptracehttp.WithInsecure(),
			))
			if err != nil {
				return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
			}
			tpOpts = append(tpOpts, tracesdk.WithBatcher(exporter, tracesdk.WithBatchTimeout(5*time.Second)))
		}
		p.tracerProvider = tracesdk.NewTracerProvider(tpOpts...)
		p.tracer = p.tracerProvider.Tracer(instrumentationName)
	}

	if cfg.PrometheusEnabled || len(o.readers) > 0 {
		mpOpts := []metricsdk.Option{metricsdk.WithResource(res)}
		for _, r := range o.readers {
			mpOpts = append(mpOpts, metricsdk.WithReader(r))
		}
		if cfg.PrometheusEnabled {
			var promOpts []prometheus.Option
			if o.registerer != nil {
				promOpts = append(promOpts, prometheus.WithRegisterer(o.registerer))
			}
			exporter, err := prometheus.New(promOpts...)
			if err != nil {
				return nil, errors.Join(fmt.Errorf("failed to create Prometheus exporter: %w", err), p.Shutdown(ctx))
			}
			mpOpts = append(mpOpts, metricsdk.WithReader(exporter))
		}
		p.meterProvider = metricsdk.NewMeterProvider(mpOpts...)
		p.meter = p.meterProvider.Meter(instrumentationName)
		if p.instruments, err = NewInstruments(p.meter); err != nil {
			return nil, errors.Join(err, p.Shutdown(ctx))
		}
	}

	return p, nil
}

// Shutdown flushes pending spans and metrics and stops both pipelines.
func (p *Provider) Shutdown(ctx context.Context) error {
	var errs []error
	if p.tracerProvider != nil {
		if err := p.tracerProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer provider: %w", err))
		}
	}
	if p.meterProvider != nil {
		if err := p.meterProvider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter provider: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Tracer returns the module tracer.
func (p *Provider) Tracer() trace.Tracer { return p.tracer }

// Meter returns the module meter.
func (p *Provider) Meter() metric.Meter { return p.meter }

// Instruments returns the module instruments created on Meter.
func (p *Provider) Instruments() *Instruments { return p.instruments }
