package inspect

import (
	"context"
	"log"
	"os"

	"go.scnd.dev/open/rpcgen/command/rpcgen/app"
	"go.scnd.dev/open/rpcgen/command/rpcgen/index"
	"go.scnd.dev/open/rpcgen/command/rpcgen/procedure/pipeline"
	"go.scnd.dev/open/rpcgen/command/rpcgen/procedure/printer"
)

type Command struct{}

func (r *Command) Run(app *app.App) error {
	return Run(app, r)
}

func Run(app index.App, command *Command) error {
	ctx := context.Background()

	p, err := pipeline.New(app)
	if err != nil {
		return err
	}
	defer func() {
		if err := p.Close(ctx); err != nil {
			log.Printf("warning: unable to flush telemetry: %v", err)
		}
	}()

	document, err := p.Build(ctx)
	if err != nil {
		return err
	}

	return printer.PrintDocument(os.Stdout, document)
}
