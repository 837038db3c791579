package extract

import (
	"regexp"
)

var explicitRegex = regexp.MustCompile(`(\w+)\s*\.into_dyn\b`)

// ScanExplicit returns the handler names promoted with into_dyn, in file order.
func ScanExplicit(content string) []string {
	names := make([]string, 0)
	for _, match := range explicitRegex.FindAllStringSubmatch(content, -1) {
		names = append(names, match[1])
	}

	return names
}
