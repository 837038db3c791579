package emit

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/lithammer/dedent"
	tmpl "go.scnd.dev/open/rpcgen/command/rpcgen/procedure/emit/template"
	"go.scnd.dev/open/rpcgen/command/rpcgen/procedure/extract"
)

var Banner = strings.TrimPrefix(dedent.Dedent(`
	//*********************************************************************************
	//***THIS FILE IS GENERATED AUTOMATICALLY AND WILL BE OVERWRITTEN. DO NOT MODIFY***
	//*********************************************************************************
`), "\n")

var bodies = map[extract.Shape]string{
	extract.ShapeCreated:      `...params`,
	extract.ShapeUpdated:      "\"id\": params.id,\n            \"data\": params.data,",
	extract.ShapeListed:       `...params,`,
	extract.ShapeIdentified:   `"id": params.id`,
	extract.ShapeUnclassified: ``,
}

// Declared lists the non generic types the preamble defines itself.
var Declared = []string{"ListOptions", "ClientErrorValue", "RpcError", extract.MarkerIdentified}

type Emitter struct {
	RpcPath     string
	TypesImport string
	stub        *template.Template
}

func NewEmitter(rpcPath string, typesImport string) (*Emitter, error) {
	stub, err := template.New("stub").Parse(tmpl.Stub)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stub template: %w", err)
	}

	return &Emitter{
		RpcPath:     rpcPath,
		TypesImport: typesImport,
		stub:        stub,
	}, nil
}

// Stub renders the call site of a handler. It returns nil for a handler without parameters.
func (r *Emitter) Stub(handler *extract.Handler) (*Stub, error) {
	first := handler.First()
	if first == nil {
		return nil, nil
	}

	// * shape the request from the first parameter
	shape := extract.ClassifyShape(first.Type)
	name := "params"
	if shape == extract.ShapeUnclassified && first.Name != "" {
		name = first.Name
	}
	stub := &Stub{
		Handler:    handler,
		Shape:      shape,
		ParamName:  name,
		ParamType:  extract.MapType(first.Type),
		ReturnType: extract.ReturnPayload(handler.Result),
		Text:       "",
	}

	// * render template
	builder := new(strings.Builder)
	if err := r.stub.Execute(builder, map[string]any{
		"Name":       handler.Name,
		"ParamName":  stub.ParamName,
		"ParamType":  stub.ParamType,
		"RpcPath":    r.RpcPath,
		"Body":       bodies[shape],
		"ReturnType": stub.ReturnType,
	}); err != nil {
		return nil, fmt.Errorf("failed to render stub %s: %w", handler.Name, err)
	}
	stub.Text = builder.String()

	return stub, nil
}

func (r *Emitter) Module(module *Module) string {
	texts := make([]string, len(module.Stubs))
	for i, stub := range module.Stubs {
		texts[i] = stub.Text
	}

	return fmt.Sprintf("\n\nexport const %s_client = {\n%s\n};\n", module.Entity, strings.Join(texts, "\n"))
}

func (r *Emitter) Preamble(bindings []string) string {
	imports := []string{
		fmt.Sprintf("import type {%s} from \"%s/bindings\";", strings.Join(bindings, ", "), r.TypesImport),
		fmt.Sprintf("export * from \"%s\";", r.TypesImport),
		`import { baseApiUrl, handleError } from "."`,
		`import { Try, Err } from "@oxi";`,
		"",
		tmpl.Preamble,
	}

	return strings.Join(imports, "\n")
}

func (r *Emitter) Render(document *Document) string {
	builder := new(strings.Builder)
	builder.WriteString(Banner)
	builder.WriteString("\n")
	builder.WriteString(r.Preamble(document.Bindings))
	builder.WriteString("\n")
	for _, module := range document.Modules {
		builder.WriteString(r.Module(module))
	}

	return builder.String()
}

// Covered reports whether a client side type is defined by the preamble or the bindings.
func Covered(catalog extract.Catalog, typeText string) bool {
	for _, declared := range Declared {
		if typeText == declared {
			return true
		}
	}

	return catalog.Covers(typeText)
}
