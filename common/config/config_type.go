package config

type Config struct {
	Root             *string    `yaml:"root" validate:"required,min=1"`
	TypesDir         *string    `yaml:"types_dir" validate:"required,min=1"`
	TypesImport      *string    `yaml:"types_import"`
	ClientDir        *string    `yaml:"client_dir" validate:"required,min=1"`
	ClientFile       *string    `yaml:"client_file" validate:"required,min=1"`
	BindingsFile     *string    `yaml:"bindings_file" validate:"required,min=1"`
	LibraryMarker    *string    `yaml:"library_marker" validate:"required,min=1"`
	HandlerSuffix    *string    `yaml:"handler_suffix" validate:"required,min=1"`
	ArtifactDir      *string    `yaml:"artifact_dir" validate:"required,min=1"`
	RpcPath          *string    `yaml:"rpc_path" validate:"required,startswith=/"`
	InjectedParams   []string   `yaml:"injected_params"`
	NestedParamSplit *bool      `yaml:"nested_param_split"`
	StrictBindings   *bool      `yaml:"strict_bindings"`
	CacheSize        *int       `yaml:"cache_size" validate:"required,gt=0"`
	Typeshare        *Typeshare `yaml:"typeshare" validate:"required"`
	Publish          *Publish   `yaml:"publish"`
	Telemetry        *Telemetry `yaml:"telemetry"`
	Directory        *string    `yaml:"-"`
}

type Typeshare struct {
	Enabled  *bool   `yaml:"enabled"`
	Command  *string `yaml:"command" validate:"required,min=1"`
	Language *string `yaml:"language" validate:"required,min=1"`
}

type Publish struct {
	Endpoint  *string `yaml:"endpoint" validate:"required,url"`
	AccessKey *string `yaml:"access_key" validate:"required"`
	SecretKey *string `yaml:"secret_key" validate:"required"`
	Bucket    *string `yaml:"bucket" validate:"required"`
	Object    *string `yaml:"object"`
}

type Telemetry struct {
	Url          *string `yaml:"url" validate:"required"`
	Organization *string `yaml:"organization"`
}
