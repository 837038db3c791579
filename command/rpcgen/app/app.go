package app

import (
	"os"
	"path/filepath"

	"go.scnd.dev/open/rpcgen/common/config"
)

const Version = "0.3.0"

type App struct {
	verbose   *bool
	directory *string
	config    *config.Config
}

func New(verbose bool, directory string) (*App, error) {
	// * resolve working directory
	if directory == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		directory = wd
	}
	directory, err := filepath.Abs(directory)
	if err != nil {
		return nil, err
	}

	// * load configuration
	cfg, err := config.Load(directory)
	if err != nil {
		return nil, err
	}

	return &App{
		verbose:   &verbose,
		directory: &directory,
		config:    cfg,
	}, nil
}

func (r *App) Verbose() *bool {
	return r.verbose
}

func (r *App) Directory() *string {
	return r.directory
}

func (r *App) Config() *config.Config {
	return r.config
}
