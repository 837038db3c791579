package extract

import (
	"fmt"
)

// Kind is one canonical handler generated by generate_common_rpc_fns.
type Kind struct {
	Name    string
	Pattern string
	Role    Role
	Param   string
	Shape   Shape
	Many    bool
}

var Kinds = []*Kind{
	{Name: "get", Pattern: "get_%s", Role: "", Param: MarkerIdentified, Shape: ShapeIdentified, Many: false},
	{Name: "create", Pattern: "create_%s", Role: RoleForCreate, Param: MarkerCreated + "<%s>", Shape: ShapeCreated, Many: false},
	{Name: "delete", Pattern: "delete_%s", Role: "", Param: MarkerIdentified, Shape: ShapeIdentified, Many: false},
	{Name: "update", Pattern: "update_%s", Role: RoleForUpdate, Param: MarkerUpdated + "<%s>", Shape: ShapeUpdated, Many: false},
	{Name: "list", Pattern: "list_%ss", Role: RoleFilter, Param: MarkerListed + "<%s>", Shape: ShapeListed, Many: true},
}

var roleErrors = map[Role]error{
	RoleEntity:    ErrEntityMissing,
	RoleForCreate: ErrForCreateMissing,
	RoleForUpdate: ErrForUpdateMissing,
	RoleFilter:    ErrFilterMissing,
}

// MatchKind finds the kind whose name template, expanded with the snake case entity suffix,
// equals the handler name.
func MatchKind(name string, suffix string) *Kind {
	for _, kind := range Kinds {
		if kind.HandlerName(suffix) == name {
			return kind
		}
	}

	return nil
}

func (r *Kind) HandlerName(suffix string) string {
	return fmt.Sprintf(r.Pattern, suffix)
}

func (r *Kind) Result(entity string) string {
	if r.Many {
		return fmt.Sprintf("Result<%s<Vec<%s>>>", WrapperResult, entity)
	}

	return fmt.Sprintf("Result<%s<%s>>", WrapperResult, entity)
}

func (r *Kind) ParamType(declaration *Declaration) (string, error) {
	if r.Role == "" {
		return r.Param, nil
	}

	value, ok := declaration.Role(r.Role)
	if !ok {
		return "", roleErrors[r.Role]
	}

	return fmt.Sprintf(r.Param, value), nil
}
