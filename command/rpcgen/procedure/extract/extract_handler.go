package extract

type Convention string

const (
	ConventionExplicit    Convention = "explicit"
	ConventionDeclarative Convention = "declarative"
)

type Param struct {
	Name string
	Type string
}

// Signature holds the raw parameter pairs and result text of a located handler function.
// A handler that could not be located yields an empty signature.
type Signature struct {
	Params []*Param
	Result string
}

type Handler struct {
	Name       string
	Entity     string
	Params     []*Param
	Result     string
	Convention Convention
}

// Renderable reports whether the handler has a parameter to shape a request from.
func (r *Handler) Renderable() bool {
	return len(r.Params) > 0
}

func (r *Handler) First() *Param {
	if len(r.Params) == 0 {
		return nil
	}

	return r.Params[0]
}
