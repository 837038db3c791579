package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type Instrument struct {
	FilesScannedCounter    metric.Int64Counter
	HandlersEmittedCounter metric.Int64Counter
	RoutesSkippedCounter   metric.Int64Counter
}

func NewInstrument(meter metric.Meter) (*Instrument, error) {
	filesScannedCounter, err := meter.Int64Counter(
		"rpcgen.files.scanned",
		metric.WithDescription("Number of source files read during generation"),
	)
	if err != nil {
		return nil, err
	}

	handlersEmittedCounter, err := meter.Int64Counter(
		"rpcgen.handlers.emitted",
		metric.WithDescription("Number of client stubs emitted"),
	)
	if err != nil {
		return nil, err
	}

	routesSkippedCounter, err := meter.Int64Counter(
		"rpcgen.routes.skipped",
		metric.WithDescription("Number of route names that matched no convention"),
	)
	if err != nil {
		return nil, err
	}

	return &Instrument{
		FilesScannedCounter:    filesScannedCounter,
		HandlersEmittedCounter: handlersEmittedCounter,
		RoutesSkippedCounter:   routesSkippedCounter,
	}, nil
}

// FilesScanned is safe to call on a nil instrument, as are the other recorders.
func (r *Instrument) FilesScanned(ctx context.Context, delta int64, kind string) {
	if r == nil {
		return
	}
	r.FilesScannedCounter.Add(
		ctx,
		delta,
		metric.WithAttributes(kindAttribute(kind)),
	)
}

func (r *Instrument) HandlersEmitted(ctx context.Context, delta int64, entity string) {
	if r == nil {
		return
	}
	r.HandlersEmittedCounter.Add(
		ctx,
		delta,
		metric.WithAttributes(attribute.String("rpcgen.entity", entity)),
	)
}

func (r *Instrument) RoutesSkipped(ctx context.Context, delta int64, entity string) {
	if r == nil {
		return
	}
	r.RoutesSkippedCounter.Add(
		ctx,
		delta,
		metric.WithAttributes(attribute.String("rpcgen.entity", entity)),
	)
}
