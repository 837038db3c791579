package span

import (
	"context"
)

type ContextKey struct {
	Name string
}

var (
	ContextKeySpan = ContextKey{
		Name: "rpcgen.span",
	}
)

func FromContext(ctx context.Context) *Span {
	s, ok := ctx.Value(ContextKeySpan).(*Span)
	if !ok {
		return nil
	}

	return s
}
