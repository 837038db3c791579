package generate

import (
	"context"
	"log"

	"go.scnd.dev/open/rpcgen/command/rpcgen/app"
	"go.scnd.dev/open/rpcgen/command/rpcgen/index"
	"go.scnd.dev/open/rpcgen/command/rpcgen/procedure/pipeline"
)

type Command struct {
	SkipTypeshare bool `name:"skip-typeshare" help:"Use the existing bindings instead of running the type binding generator."`
}

func (r *Command) Run(app *app.App) error {
	return Run(app, r)
}

func Run(app index.App, command *Command) error {
	ctx := context.Background()

	// * assemble pipeline
	p, err := pipeline.New(app)
	if err != nil {
		return err
	}
	defer func() {
		if err := p.Close(ctx); err != nil {
			log.Printf("warning: unable to flush telemetry: %v", err)
		}
	}()

	// * generate client
	if _, err := p.Generate(ctx, !command.SkipTypeshare); err != nil {
		return err
	}

	return nil
}
