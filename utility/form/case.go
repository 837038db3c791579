package form

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func CaseParser(s string) []string {
	if s == "" {
		return []string{}
	}

	var segments []string
	var current strings.Builder

	for i, r := range s {
		if i == 0 {
			current.WriteRune(unicode.ToLower(r))
			continue
		}

		// * split on uppercase letters or underscores
		if unicode.IsUpper(r) || r == '_' {
			if current.Len() > 0 {
				segments = append(segments, current.String())
				current.Reset()
			}
			if r != '_' {
				current.WriteRune(unicode.ToLower(r))
			}
		} else {
			current.WriteRune(r)
		}
	}

	// * add last segment
	if current.Len() > 0 {
		segments = append(segments, current.String())
	}

	return segments
}

// ToSnakeCase converts a string to snake case
func ToSnakeCase(s string) string {
	segments := CaseParser(s)
	if len(segments) == 0 {
		return s
	}

	return strings.Join(segments, "_")
}

// ToPascalCase converts a string to pascal case
func ToPascalCase(s string) string {
	segments := CaseParser(s)
	if len(segments) == 0 {
		return s
	}

	var result strings.Builder
	for _, segment := range segments {
		if len(segment) > 0 {
			result.WriteString(strings.ToUpper(segment[:1]))
			result.WriteString(segment[1:])
		}
	}

	return result.String()
}

// ToTitleCase converts a snake or camel case identifier into space separated words
func ToTitleCase(s string) string {
	segments := CaseParser(s)
	if len(segments) == 0 {
		return s
	}

	return cases.Title(language.English).String(strings.Join(segments, " "))
}
