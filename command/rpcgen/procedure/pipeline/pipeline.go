package pipeline

import (
	"context"
	"fmt"
	"log"

	"go.scnd.dev/open/rpcgen/command/rpcgen/index"
	"go.scnd.dev/open/rpcgen/command/rpcgen/procedure/aggregate"
	"go.scnd.dev/open/rpcgen/command/rpcgen/procedure/emit"
	"go.scnd.dev/open/rpcgen/command/rpcgen/procedure/output"
	"go.scnd.dev/open/rpcgen/command/rpcgen/procedure/typeshare"
	"go.scnd.dev/open/rpcgen/common/config"
	"go.scnd.dev/open/rpcgen/package/span"
	"go.scnd.dev/open/rpcgen/package/telemetry"
	"go.scnd.dev/open/rpcgen/utility/source"
	"go.uber.org/fx"
)

type Pipeline struct {
	App        index.App
	Config     *config.Config
	Telemetry  *telemetry.Telemetry
	Reader     *source.Reader
	Runner     *typeshare.Runner
	Aggregator *aggregate.Aggregator
	Emitter    *emit.Emitter
	Writer     *output.Writer
	Publisher  *output.Publisher
}

type Params struct {
	fx.In
	App        index.App
	Config     *config.Config
	Telemetry  *telemetry.Telemetry
	Reader     *source.Reader
	Runner     *typeshare.Runner
	Aggregator *aggregate.Aggregator
	Emitter    *emit.Emitter
	Writer     *output.Writer
	Publisher  *output.Publisher
}

func construct(params Params) *Pipeline {
	return &Pipeline{
		App:        params.App,
		Config:     params.Config,
		Telemetry:  params.Telemetry,
		Reader:     params.Reader,
		Runner:     params.Runner,
		Aggregator: params.Aggregator,
		Emitter:    params.Emitter,
		Writer:     params.Writer,
		Publisher:  params.Publisher,
	}
}

func New(app index.App) (*Pipeline, error) {
	var pipeline *Pipeline
	container := fx.New(
		fx.NopLogger,
		fx.Provide(
			func() index.App { return app },
			NewConfig,
			NewTelemetry,
			NewReader,
			NewRunner,
			NewEmitter,
			NewAggregator,
			NewWriter,
			NewPublisher,
			construct,
		),
		fx.Populate(&pipeline),
	)
	if err := container.Err(); err != nil {
		return nil, fmt.Errorf("failed to assemble pipeline: %w", err)
	}

	return pipeline, nil
}

// Build runs both passes over the configured root without writing anything.
func (r *Pipeline) Build(ctx context.Context) (*emit.Document, error) {
	return r.Aggregator.Run(ctx, r.Config.RootPath())
}

func (r *Pipeline) Generate(ctx context.Context, bindings bool) (*emit.Document, error) {
	s, ctx := span.With(ctx, "pipeline")
	defer s.End()

	// * regenerate bindings
	if bindings && *r.Config.Typeshare.Enabled {
		if err := r.Runner.Run(ctx, r.Config.BindingsPath(), r.Config.RootPath()); err != nil {
			return nil, s.Error("unable to generate bindings", err)
		}
		r.Reader.Forget(r.Config.BindingsPath())
	}

	// * extract and render
	document, err := r.Build(ctx)
	if err != nil {
		return nil, s.Error("unable to build client document", err)
	}
	content := r.Emitter.Render(document)

	// * write and publish
	if err := r.Writer.Write(ctx, content); err != nil {
		return nil, s.Error("unable to write client document", err)
	}
	if err := r.Publisher.Publish(ctx, content); err != nil {
		return nil, s.Error("unable to publish client document", err)
	}

	log.Printf("generated %d clients with %d handlers into %s (%d sources cached)", len(document.Modules), document.Handlers(), r.Writer.Path, r.Reader.Len())
	return document, nil
}

func (r *Pipeline) Close(ctx context.Context) error {
	return r.Telemetry.Shutdown(ctx)
}
