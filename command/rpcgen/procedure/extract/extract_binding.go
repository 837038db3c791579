package extract

import (
	"regexp"
	"strings"
)

var bindingRegex = regexp.MustCompile(`export (?:interface|type) (?P<name>\w+) (?:\{|=)`)

// ScanBindings returns the exported interface and type names of a bindings file in file order.
func ScanBindings(content string) []string {
	names := make([]string, 0)
	for _, match := range bindingRegex.FindAllStringSubmatch(content, -1) {
		names = append(names, match[1])
	}

	return names
}

// CatalogBuilder accumulates binding names across files. Build freezes the result.
type CatalogBuilder struct {
	names []string
	index map[string]struct{}
}

func NewCatalogBuilder() *CatalogBuilder {
	return &CatalogBuilder{
		names: make([]string, 0),
		index: make(map[string]struct{}),
	}
}

func (r *CatalogBuilder) Add(names ...string) {
	for _, name := range names {
		if _, ok := r.index[name]; ok {
			continue
		}
		r.index[name] = struct{}{}
		r.names = append(r.names, name)
	}
}

func (r *CatalogBuilder) Build() Catalog {
	names := make([]string, len(r.names))
	copy(names, r.names)
	index := make(map[string]struct{}, len(names))
	for _, name := range names {
		index[name] = struct{}{}
	}

	return Catalog{
		names: names,
		index: index,
	}
}

// Catalog is the read-only set of binding names in first-seen order.
type Catalog struct {
	names []string
	index map[string]struct{}
}

func (r Catalog) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

func (r Catalog) Len() int {
	return len(r.names)
}

func (r Catalog) Contains(name string) bool {
	_, ok := r.index[name]
	return ok
}

// Covers reports whether a client side type text refers to a known binding, either directly
// or as a single level generic argument.
func (r Catalog) Covers(typeText string) bool {
	if typeText == "null" || typeText == "String" || typeText == "string" {
		return true
	}
	if r.Contains(typeText) {
		return true
	}
	for _, name := range r.names {
		if strings.Contains(typeText, "<"+name+">") {
			return true
		}
	}

	return false
}
