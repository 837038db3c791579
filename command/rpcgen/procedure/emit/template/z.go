package template

import (
	_ "embed"
)

//go:embed stub.ts.tmpl
var Stub string

//go:embed preamble.ts
var Preamble string
