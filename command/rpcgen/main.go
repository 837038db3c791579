package main

import (
	"github.com/alecthomas/kong"
	"go.scnd.dev/open/rpcgen/command/rpcgen/app"
	"go.scnd.dev/open/rpcgen/command/rpcgen/subcommand/generate"
	"go.scnd.dev/open/rpcgen/command/rpcgen/subcommand/inspect"
	"go.scnd.dev/open/rpcgen/command/rpcgen/subcommand/watch"
)

type Command struct {
	Verbose   bool              `help:"Enable verbose output." short:"v"`
	Directory string            `help:"Directory holding rpcgen.yml." short:"C" type:"path"`
	Generate  *generate.Command `cmd:"generate" default:"withargs" help:"Generate the rpc client from the handler sources."`
	Inspect   *inspect.Command  `cmd:"inspect" help:"Print the extracted handlers without writing the client."`
	Watch     *watch.Command    `cmd:"watch" help:"Regenerate the rpc client whenever handler sources change."`
}

func main() {
	command := new(Command)
	ctx := kong.Parse(
		command,
		kong.Name("rpcgen"),
		kong.Description("RPC Client Generator"),
	)
	application, err := app.New(command.Verbose, command.Directory)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(application)
	ctx.FatalIfErrorf(err)
}
