package extract

import (
	"fmt"
	"log"
	"strings"

	"go.scnd.dev/open/rpcgen/package/span"
	"go.scnd.dev/open/rpcgen/utility/form"
)

// File is one handler definition file. Entity is the tag all of its handlers are grouped under.
type File struct {
	Path    string
	Entity  string
	Content string
}

type Result struct {
	Handlers []*Handler
	Skipped  []string
}

type Extractor struct {
	injected map[string]struct{}
	nested   bool
}

func NewExtractor(injected []string, nested bool) *Extractor {
	return &Extractor{
		injected: injectedSet(injected),
		nested:   nested,
	}
}

func injectedSet(injected []string) map[string]struct{} {
	set := make(map[string]struct{}, len(injected))
	for _, param := range injected {
		set[strings.TrimSpace(param)] = struct{}{}
	}
	return set
}

func (r *Extractor) Extract(file *File) (*Result, error) {
	result := &Result{
		Handlers: make([]*Handler, 0),
		Skipped:  make([]string, 0),
	}

	// * collect candidate names from both conventions
	explicit := ScanExplicit(file.Content)
	routes := ScanRoutes(file.Content)
	routed := make(map[string]struct{}, len(routes))
	for _, route := range routes {
		routed[route] = struct{}{}
	}

	// * resolve candidates through their own signature first
	seen := make(map[string]struct{})
	pending := make([]string, 0)
	for _, name := range append(explicit, routes...) {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		signature, found := r.Signature(file.Content, name)
		if !found {
			if _, ok := routed[name]; ok {
				pending = append(pending, name)
			}
			continue
		}

		handler := &Handler{
			Name:       name,
			Entity:     file.Entity,
			Params:     signature.Params,
			Result:     signature.Result,
			Convention: ConventionExplicit,
		}
		if handler.Renderable() {
			result.Handlers = append(result.Handlers, handler)
		}
	}

	// * synthesize the remaining routes from the common fns declaration
	if err := r.Declarative(file, pending, result); err != nil {
		return nil, err
	}

	return result, nil
}

// Declarative synthesizes handlers for route names that have no signature of their own.
func (r *Extractor) Declarative(file *File, names []string, result *Result) error {
	if len(names) == 0 {
		return nil
	}

	declaration := ScanDeclaration(file.Content)
	entity, ok := declaration.Role(RoleEntity)
	if !ok {
		return span.NewError(nil, fmt.Sprintf("unable to resolve routes %v of %s", names, file.Path), ErrEntityMissing)
	}
	suffix := form.ToSnakeCase(entity)

	for _, name := range names {
		kind := MatchKind(name, suffix)
		if kind == nil {
			log.Printf("warning: handler %s of %s matches no common rpc fn, skipping", name, file.Path)
			result.Skipped = append(result.Skipped, name)
			continue
		}

		paramType, err := kind.ParamType(declaration)
		if err != nil {
			return span.NewError(nil, fmt.Sprintf("unable to resolve handler %s of %s", name, file.Path), err)
		}

		result.Handlers = append(result.Handlers, &Handler{
			Name:   name,
			Entity: file.Entity,
			Params: []*Param{
				{
					Name: "params",
					Type: paramType,
				},
			},
			Result:     kind.Result(entity),
			Convention: ConventionDeclarative,
		})
	}

	return nil
}
