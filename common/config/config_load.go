package config

import (
	"fmt"
	"path/filepath"

	"github.com/bsthun/gut"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

var validate = validator.New()

// Load reads rpcgen.yml from directory, fills defaults and validates the result.
func Load(directory string) (*Config, error) {
	// * load environment overrides
	_ = godotenv.Load(filepath.Join(directory, ".env"))

	// * parse config file
	config, err := New[Config](directory)
	if err != nil {
		return nil, err
	}
	config.Directory = gut.Ptr(directory)

	// * fill defaults
	Default(config)

	// * validate config
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("invalid configuration file: %w", err)
	}

	return config, nil
}

func Default(config *Config) {
	if config.TypesImport == nil && config.TypesDir != nil {
		config.TypesImport = gut.Ptr(*config.TypesDir)
	}
	if config.ClientFile == nil {
		config.ClientFile = gut.Ptr("generated_client.ts")
	}
	if config.BindingsFile == nil {
		config.BindingsFile = gut.Ptr("bindings.ts")
	}
	if config.LibraryMarker == nil {
		config.LibraryMarker = gut.Ptr("lib-rpc")
	}
	if config.HandlerSuffix == nil {
		config.HandlerSuffix = gut.Ptr("_rpc.rs")
	}
	if config.ArtifactDir == nil {
		config.ArtifactDir = gut.Ptr("target")
	}
	if config.RpcPath == nil {
		config.RpcPath = gut.Ptr("/api/rpc")
	}
	if config.InjectedParams == nil {
		config.InjectedParams = []string{"ctx: Ctx", "mm: ModelManager"}
	}
	if config.NestedParamSplit == nil {
		config.NestedParamSplit = gut.Ptr(false)
	}
	if config.StrictBindings == nil {
		config.StrictBindings = gut.Ptr(false)
	}
	if config.CacheSize == nil {
		config.CacheSize = gut.Ptr(256)
	}
	if config.Typeshare == nil {
		config.Typeshare = new(Typeshare)
	}
	if config.Typeshare.Enabled == nil {
		config.Typeshare.Enabled = gut.Ptr(true)
	}
	if config.Typeshare.Command == nil {
		config.Typeshare.Command = gut.Ptr("typeshare")
	}
	if config.Typeshare.Language == nil {
		config.Typeshare.Language = gut.Ptr("typescript")
	}
	if config.Publish != nil {
		if config.Publish.Object == nil {
			config.Publish.Object = gut.Ptr(*config.ClientFile)
		}
	}
	if config.Telemetry != nil && config.Telemetry.Organization == nil {
		config.Telemetry.Organization = gut.Ptr("anonymous")
	}
}

// Resolve anchors a configured path to the directory holding the configuration file.
func (r *Config) Resolve(path string) string {
	if filepath.IsAbs(path) || r.Directory == nil {
		return path
	}

	return filepath.Join(*r.Directory, path)
}

func (r *Config) RootPath() string {
	return r.Resolve(*r.Root)
}

func (r *Config) BindingsPath() string {
	return filepath.Join(r.Resolve(*r.TypesDir), *r.BindingsFile)
}

func (r *Config) ClientPath() string {
	return filepath.Join(r.Resolve(*r.ClientDir), *r.ClientFile)
}
