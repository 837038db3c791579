package telemetry

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.38.0"
	"go.scnd.dev/open/rpcgen/common/config"
	"go.scnd.dev/open/rpcgen/package/span"
)

const MeterName = "rpcgen-meter"

type Telemetry struct {
	Config         *config.Telemetry
	Meter          metric.Meter
	MeterProvider  *sdkmetric.MeterProvider
	TracerProvider *sdktrace.TracerProvider
	Instrument     *Instrument
}

// New exports metrics and traces to the configured collector. Without a collector url the
// global no-op providers stay in place and the instruments record nothing.
func New(ctx context.Context, cfg *config.Telemetry, version string) (_ *Telemetry, err error) {
	// * construct telemetry
	telemetry := &Telemetry{
		Config:         cfg,
		Meter:          nil,
		MeterProvider:  nil,
		TracerProvider: nil,
		Instrument:     nil,
	}

	if cfg != nil && cfg.Url != nil && *cfg.Url != "" {
		// * construct resource
		res, err := resource.New(ctx, resource.WithAttributes(
			semconv.ServiceName("rpcgen"),
			semconv.ServiceVersion(version),
		))
		if err != nil {
			return nil, span.NewError(nil, "unable to initialize resource", err)
		}

		// * construct providers
		if err := NewMeter(ctx, telemetry, res); err != nil {
			return nil, err
		}
		if err := NewTracer(ctx, telemetry, res); err != nil {
			return nil, err
		}
	}

	// * construct instrument
	telemetry.Meter = otel.Meter(MeterName)
	telemetry.Instrument, err = NewInstrument(telemetry.Meter)
	if err != nil {
		return nil, span.NewError(nil, "unable to initialize instrument", err)
	}

	return telemetry, nil
}

func headers(cfg *config.Telemetry) map[string]string {
	return map[string]string{
		"X-Scope-OrgID": *cfg.Organization,
	}
}

func NewMeter(ctx context.Context, telemetry *Telemetry, res *resource.Resource) error {
	// * construct exporter
	exporter, err := otlpmetricgrpc.New(
		ctx,
		otlpmetricgrpc.WithEndpoint(*telemetry.Config.Url),
		otlpmetricgrpc.WithHeaders(headers(telemetry.Config)),
		otlpmetricgrpc.WithInsecure(),
	)
	if err != nil {
		return span.NewError(nil, "unable to initialize metric exporter", err)
	}

	// * construct provider
	telemetry.MeterProvider = sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(
			exporter,
			sdkmetric.WithInterval(15*time.Second),
		)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(telemetry.MeterProvider)

	return nil
}

func NewTracer(ctx context.Context, telemetry *Telemetry, res *resource.Resource) error {
	// * construct exporter
	exporter, err := otlptracegrpc.New(
		ctx,
		otlptracegrpc.WithEndpoint(*telemetry.Config.Url),
		otlptracegrpc.WithHeaders(headers(telemetry.Config)),
		otlptracegrpc.WithInsecure(),
	)
	if err != nil {
		return span.NewError(nil, "unable to initialize trace exporter", err)
	}

	// * construct provider
	telemetry.TracerProvider = sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(telemetry.TracerProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return nil
}

// Shutdown flushes pending metrics and spans.
func (r *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error
	if r.MeterProvider != nil {
		errs = append(errs, r.MeterProvider.Shutdown(ctx))
	}
	if r.TracerProvider != nil {
		errs = append(errs, r.TracerProvider.Shutdown(ctx))
	}

	return errors.Join(errs...)
}

func kindAttribute(kind string) attribute.KeyValue {
	return attribute.String("rpcgen.kind", kind)
}
