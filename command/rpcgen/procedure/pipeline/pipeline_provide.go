package pipeline

import (
	"context"

	"go.scnd.dev/open/rpcgen/command/rpcgen/app"
	"go.scnd.dev/open/rpcgen/command/rpcgen/index"
	"go.scnd.dev/open/rpcgen/command/rpcgen/procedure/aggregate"
	"go.scnd.dev/open/rpcgen/command/rpcgen/procedure/emit"
	"go.scnd.dev/open/rpcgen/command/rpcgen/procedure/extract"
	"go.scnd.dev/open/rpcgen/command/rpcgen/procedure/output"
	"go.scnd.dev/open/rpcgen/command/rpcgen/procedure/tree"
	"go.scnd.dev/open/rpcgen/command/rpcgen/procedure/typeshare"
	"go.scnd.dev/open/rpcgen/common/config"
	"go.scnd.dev/open/rpcgen/package/telemetry"
	"go.scnd.dev/open/rpcgen/utility/source"
)

func NewConfig(app index.App) *config.Config {
	return app.Config()
}

func NewTelemetry(cfg *config.Config) (*telemetry.Telemetry, error) {
	return telemetry.New(context.Background(), cfg.Telemetry, app.Version)
}

func NewReader(cfg *config.Config) (*source.Reader, error) {
	return source.NewReader(*cfg.CacheSize)
}

func NewRunner(app index.App, cfg *config.Config) *typeshare.Runner {
	return typeshare.NewRunner(*cfg.Typeshare.Command, *cfg.Typeshare.Language, *app.Verbose())
}

func NewEmitter(cfg *config.Config) (*emit.Emitter, error) {
	return emit.NewEmitter(*cfg.RpcPath, *cfg.TypesImport)
}

func NewAggregator(cfg *config.Config, reader *source.Reader, emitter *emit.Emitter, telemetry *telemetry.Telemetry) *aggregate.Aggregator {
	return &aggregate.Aggregator{
		Reader: reader,
		Classifier: &tree.Classifier{
			BindingsFile:  *cfg.BindingsFile,
			LibraryMarker: *cfg.LibraryMarker,
			HandlerSuffix: *cfg.HandlerSuffix,
			ArtifactDir:   *cfg.ArtifactDir,
		},
		Extractor:      extract.NewExtractor(cfg.InjectedParams, *cfg.NestedParamSplit),
		Emitter:        emitter,
		Instrument:     telemetry.Instrument,
		StrictBindings: *cfg.StrictBindings,
	}
}

func NewWriter(cfg *config.Config) *output.Writer {
	return output.NewWriter(cfg.ClientPath())
}

func NewPublisher(cfg *config.Config) (*output.Publisher, error) {
	return output.NewPublisher(cfg.Publish)
}
