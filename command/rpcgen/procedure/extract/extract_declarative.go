package extract

import (
	"regexp"
	"strings"
)

type Role string

const (
	RoleEntity    Role = "Entity"
	RoleForCreate Role = "ForCreate"
	RoleForUpdate Role = "ForUpdate"
	RoleFilter    Role = "Filter"
)

var (
	routeBuilderRegex = regexp.MustCompile(`router_builder!\(([\s\S]*?)\)`)
	commonFnsRegex    = regexp.MustCompile(`generate_common_rpc_fns!\(([\s\S]*?)\)`)
	commonFnsRole     = regexp.MustCompile(`(?m)^\s+(\w+):\s+(\w+),?$`)
	lineComment       = regexp.MustCompile(`(?m)^\s*//.*$`)
)

// Declaration maps the roles of a generate_common_rpc_fns invocation to their type names.
type Declaration struct {
	Roles map[Role]string
}

func (r *Declaration) Role(role Role) (string, bool) {
	if r == nil {
		return "", false
	}
	value, ok := r.Roles[role]
	return value, ok
}

// ScanRoutes returns the handler names of the first router_builder invocation.
func ScanRoutes(content string) []string {
	routes := make([]string, 0)

	// * drop commented out lines before matching
	match := routeBuilderRegex.FindStringSubmatch(lineComment.ReplaceAllString(content, ""))
	if match == nil {
		return routes
	}

	for _, route := range strings.Split(match[1], ",") {
		route = strings.TrimSpace(route)
		if route == "" {
			continue
		}
		routes = append(routes, route)
	}

	return routes
}

// ScanDeclaration returns nil when the file has no generate_common_rpc_fns invocation.
func ScanDeclaration(content string) *Declaration {
	match := commonFnsRegex.FindStringSubmatch(content)
	if match == nil {
		return nil
	}

	declaration := &Declaration{
		Roles: make(map[Role]string),
	}
	for _, pair := range commonFnsRole.FindAllStringSubmatch(match[1], -1) {
		declaration.Roles[Role(pair[1])] = pair[2]
	}

	return declaration
}
