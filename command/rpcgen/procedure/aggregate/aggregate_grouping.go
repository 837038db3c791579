package aggregate

import (
	"fmt"

	"go.scnd.dev/open/rpcgen/command/rpcgen/procedure/emit"
	"go.scnd.dev/open/rpcgen/command/rpcgen/procedure/extract"
	"go.scnd.dev/open/rpcgen/package/span"
)

// Grouping collects modules by entity tag in first-seen order.
type Grouping struct {
	modules []*emit.Module
	index   map[string]*emit.Module
}

func NewGrouping() *Grouping {
	return &Grouping{
		modules: make([]*emit.Module, 0),
		index:   make(map[string]*emit.Module),
	}
}

func (r *Grouping) Add(entity string, path string, stubs []*emit.Stub) error {
	module, ok := r.index[entity]
	if !ok {
		module = &emit.Module{
			Entity: entity,
			Path:   path,
			Stubs:  make([]*emit.Stub, 0),
		}
		r.index[entity] = module
		r.modules = append(r.modules, module)
	}
	if module.Path != path {
		return span.NewError(nil, fmt.Sprintf("entity %s is declared by %s and %s", entity, module.Path, path), extract.ErrDuplicateEntity)
	}

	module.Stubs = append(module.Stubs, stubs...)
	return nil
}

func (r *Grouping) Modules() []*emit.Module {
	return r.modules
}
