package emit

import (
	"go.scnd.dev/open/rpcgen/command/rpcgen/procedure/extract"
)

type Stub struct {
	Handler    *extract.Handler
	Shape      extract.Shape
	ParamName  string
	ParamType  string
	ReturnType string
	Text       string
}

// Module holds the stubs of one entity tag, rendered as one exported client object.
type Module struct {
	Entity string
	Path   string
	Stubs  []*Stub
}

type Document struct {
	Bindings []string
	Modules  []*Module
}

func (r *Document) Handlers() int {
	count := 0
	for _, module := range r.Modules {
		count += len(module.Stubs)
	}

	return count
}
