package watch

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.scnd.dev/open/rpcgen/command/rpcgen/app"
	"go.scnd.dev/open/rpcgen/command/rpcgen/index"
	"go.scnd.dev/open/rpcgen/command/rpcgen/procedure/pipeline"
)

type Command struct {
	Debounce      time.Duration `default:"300ms" help:"Quiet period before regenerating after a change."`
	SkipTypeshare bool          `name:"skip-typeshare" help:"Never run the type binding generator."`
}

func (r *Command) Run(app *app.App) error {
	return Run(app, r)
}

func Run(app index.App, command *Command) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p, err := pipeline.New(app)
	if err != nil {
		return err
	}
	defer func() {
		if err := p.Close(context.Background()); err != nil {
			log.Printf("warning: unable to flush telemetry: %v", err)
		}
	}()

	watcher := NewWatcher(p, command.Debounce, !command.SkipTypeshare && *p.Config.Typeshare.Enabled)
	return watcher.Watch(ctx)
}
