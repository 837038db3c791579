package extract

import (
	"regexp"
	"strings"
)

type Shape string

const (
	ShapeCreated      Shape = "created"
	ShapeUpdated      Shape = "updated"
	ShapeListed       Shape = "listed"
	ShapeIdentified   Shape = "identified"
	ShapeUnclassified Shape = "unclassified"
)

const (
	MarkerCreated    = "ParamsForCreate"
	MarkerUpdated    = "ParamsForUpdate"
	MarkerListed     = "ParamsList"
	MarkerIdentified = "ParamsIded"
	WrapperResult    = "DataRpcResult"
)

var shapeMarkers = []struct {
	Marker string
	Shape  Shape
}{
	{Marker: MarkerCreated, Shape: ShapeCreated},
	{Marker: MarkerUpdated, Shape: ShapeUpdated},
	{Marker: MarkerListed, Shape: ShapeListed},
	{Marker: MarkerIdentified, Shape: ShapeIdentified},
}

var typeReplacer = strings.NewReplacer(
	"Vec", "Array",
	"i64", "string",
	"()", "null",
)

var payloadRegex = regexp.MustCompile(`<` + WrapperResult + `<(?P<entity>.*)>>`)

// ClassifyShape inspects the raw parameter type text, before mapping.
func ClassifyShape(typeText string) Shape {
	for _, marker := range shapeMarkers {
		if strings.Contains(typeText, marker.Marker) {
			return marker.Shape
		}
	}

	return ShapeUnclassified
}

// MapType rewrites server side type idioms into client side ones.
func MapType(typeText string) string {
	return typeReplacer.Replace(typeText)
}

// ReturnPayload extracts the mapped payload of a wrapped result type, or null when the
// result is not wrapped.
func ReturnPayload(result string) string {
	match := payloadRegex.FindStringSubmatch(result)
	if match == nil {
		return "null"
	}

	return MapType(match[1])
}
