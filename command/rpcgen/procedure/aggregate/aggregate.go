package aggregate

import (
	"context"
	"fmt"
	"log"

	"go.scnd.dev/open/rpcgen/command/rpcgen/procedure/emit"
	"go.scnd.dev/open/rpcgen/command/rpcgen/procedure/extract"
	"go.scnd.dev/open/rpcgen/command/rpcgen/procedure/tree"
	"go.scnd.dev/open/rpcgen/package/span"
	"go.scnd.dev/open/rpcgen/package/telemetry"
	"go.scnd.dev/open/rpcgen/utility/source"
)

type Aggregator struct {
	Reader         *source.Reader
	Classifier     *tree.Classifier
	Extractor      *extract.Extractor
	Emitter        *emit.Emitter
	Instrument     *telemetry.Instrument
	StrictBindings bool
}

// Run builds the document of the tree under root in two passes: the binding catalog is
// complete before the first handler file is read.
func (r *Aggregator) Run(ctx context.Context, root string) (*emit.Document, error) {
	s, ctx := span.With(ctx, "aggregate")
	defer s.End()
	s.Variable("root", root)

	directory, err := tree.New(root)
	if err != nil {
		return nil, s.Error("unable to scan root", err)
	}

	catalog, err := r.Catalog(ctx, directory)
	if err != nil {
		return nil, s.Error("unable to build binding catalog", err)
	}

	document, err := r.Collect(ctx, directory, catalog)
	if err != nil {
		return nil, s.Error("unable to collect handlers", err)
	}

	return document, nil
}

func (r *Aggregator) Catalog(ctx context.Context, directory *tree.Directory) (extract.Catalog, error) {
	builder := extract.NewCatalogBuilder()
	err := directory.Walk(func(path string) error {
		if !r.Classifier.IsBinding(path) {
			return nil
		}

		content, err := r.Reader.Read(path)
		if err != nil {
			return span.NewError(nil, "unable to read bindings", err)
		}
		r.Instrument.FilesScanned(ctx, 1, string(tree.KindBinding))
		builder.Add(extract.ScanBindings(content)...)

		return nil
	})
	if err != nil {
		return extract.Catalog{}, err
	}

	return builder.Build(), nil
}

func (r *Aggregator) Collect(ctx context.Context, directory *tree.Directory, catalog extract.Catalog) (*emit.Document, error) {
	grouping := NewGrouping()
	err := directory.Walk(func(path string) error {
		if !r.Classifier.IsHandler(path) {
			return nil
		}

		content, err := r.Reader.Read(path)
		if err != nil {
			return span.NewError(nil, "unable to read handlers", err)
		}
		r.Instrument.FilesScanned(ctx, 1, string(tree.KindHandler))

		// * extract handlers of the file
		file := &extract.File{
			Path:    path,
			Entity:  r.Classifier.Entity(path),
			Content: content,
		}
		result, err := r.Extractor.Extract(file)
		if err != nil {
			return err
		}
		r.Instrument.RoutesSkipped(ctx, int64(len(result.Skipped)), file.Entity)

		// * render stubs
		stubs, err := r.Stubs(file, result.Handlers, catalog)
		if err != nil {
			return err
		}
		if len(stubs) == 0 {
			return nil
		}
		r.Instrument.HandlersEmitted(ctx, int64(len(stubs)), file.Entity)

		return grouping.Add(file.Entity, path, stubs)
	})
	if err != nil {
		return nil, err
	}

	return &emit.Document{
		Bindings: catalog.Names(),
		Modules:  grouping.Modules(),
	}, nil
}

func (r *Aggregator) Stubs(file *extract.File, handlers []*extract.Handler, catalog extract.Catalog) ([]*emit.Stub, error) {
	stubs := make([]*emit.Stub, 0, len(handlers))
	for _, handler := range handlers {
		stub, err := r.Emitter.Stub(handler)
		if err != nil {
			return nil, span.NewError(nil, fmt.Sprintf("unable to render %s of %s", handler.Name, file.Path), err)
		}
		if stub == nil {
			continue
		}

		// * check binding coverage
		for _, typ := range []string{stub.ParamType, stub.ReturnType} {
			if emit.Covered(catalog, typ) {
				continue
			}
			if r.StrictBindings {
				log.Printf("warning: skipping %s of %s, %s is not declared in bindings", handler.Name, file.Path, typ)
				stub = nil
				break
			}
			log.Printf("warning: %s of %s refers to %s which is not declared in bindings", handler.Name, file.Path, typ)
		}
		if stub == nil {
			continue
		}

		stubs = append(stubs, stub)
	}

	return stubs, nil
}
