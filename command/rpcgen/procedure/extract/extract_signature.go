package extract

import (
	"regexp"
	"strings"
)

func signatureRegex(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?s)async fn ` + regexp.QuoteMeta(name) + `\((?P<params>.*?)\)\s*->\s(?P<result>.*?)\s*\{`)
}

// Signature locates the async function named name and returns its parameters without the
// injected ones. The second value is false when no such function exists in content.
func (r *Extractor) Signature(content string, name string) (*Signature, bool) {
	match := signatureRegex(name).FindStringSubmatch(content)
	if match == nil {
		return &Signature{
			Params: []*Param{},
			Result: "",
		}, false
	}

	// * drop whole pieces that equal an injected parameter
	pieces := splitPieces(match[1], r.nested)
	kept := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		if _, ok := r.injected[strings.TrimSpace(piece)]; ok {
			continue
		}
		kept = append(kept, piece)
	}

	return &Signature{
		Params: parseParams(kept),
		Result: match[2],
	}, true
}

// SplitParams splits a parameter list into name and type pairs. The flat split cuts at every
// comma, so a generic argument list holding a comma is split apart. The nested split only cuts
// at commas outside brackets.
func SplitParams(text string, nested bool) []*Param {
	return parseParams(splitPieces(text, nested))
}

func splitPieces(text string, nested bool) []string {
	if nested {
		return splitNested(text)
	}
	return strings.Split(text, ",")
}

func parseParams(pieces []string) []*Param {
	params := make([]*Param, 0, len(pieces))
	for _, piece := range pieces {
		if strings.TrimSpace(piece) == "" {
			continue
		}

		name, typ, ok := strings.Cut(piece, ": ")
		if !ok {
			params = append(params, &Param{
				Name: strings.TrimSpace(piece),
				Type: "",
			})
			continue
		}
		params = append(params, &Param{
			Name: strings.TrimSpace(name),
			Type: strings.TrimSpace(typ),
		})
	}

	return params
}

func splitNested(text string) []string {
	pieces := make([]string, 0)
	depth := 0
	start := 0
	for i, c := range text {
		switch c {
		case '<', '(', '[', '{':
			depth++
		case '>', ')', ']', '}':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				pieces = append(pieces, text[start:i])
				start = i + 1
			}
		}
	}

	return append(pieces, text[start:])
}
