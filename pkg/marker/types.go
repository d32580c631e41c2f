// Package marker transforms transit datasets (stations, lines, rivers) into
// the BlueMap marker document rendered by [github.com/matzehuels/markergen/pkg/hocon].
//
// Input records are declared explicitly per dataset rather than decoded into
// untyped maps: required fields are plain struct fields, optional fields are
// pointers, and defaults for absent optional fields are substituted at
// construction time so no marker ever lacks a styling key.
package marker

// Point is a single 2D vertex of a line or river path. The vertical (map
// height) coordinate is fixed per dataset at build time; the record's y
// becomes the marker's z.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Station is one transit station record, rendered as a poi marker.
type Station struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Line is one transit line record, rendered as a line marker. Color and
// Width are optional: a missing color resolves to the default table entry
// and a missing width defaults to 5.
type Line struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Color  string   `json:"color"`
	Width  *float64 `json:"width"`
	Points []Point  `json:"points"`
}

// River is one river record, rendered as a line marker one height unit below
// stations and lines. Width is optional and defaults to 10; the color is
// fixed and not name-resolved.
type River struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Width  *float64 `json:"width"`
	Points []Point  `json:"points"`
}
