package printer

import (
	"fmt"
	"io"

	"github.com/ddddddO/gtree"
	"go.scnd.dev/open/rpcgen/command/rpcgen/procedure/emit"
	"go.scnd.dev/open/rpcgen/utility/form"
)

func PrintDocument(w io.Writer, document *emit.Document) error {
	root := gtree.NewRoot(fmt.Sprintf("rpc clients (%d bindings, %d handlers)", len(document.Bindings), document.Handlers()))
	for _, module := range document.Modules {
		node := root.Add(fmt.Sprintf("%s_client: %s (%s)", module.Entity, form.ToTitleCase(module.Entity), form.ToPascalCase(module.Entity)))
		for _, stub := range module.Stubs {
			node.Add(fmt.Sprintf("%s [%s, %s] -> %s", stub.Handler.Name, stub.Shape, stub.Handler.Convention, stub.ReturnType))
		}
	}

	return gtree.OutputFromRoot(w, root)
}
