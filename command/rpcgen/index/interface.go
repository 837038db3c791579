package index

import (
	"go.scnd.dev/open/rpcgen/common/config"
)

type App interface {
	Verbose() *bool
	Directory() *string
	Config() *config.Config
}
