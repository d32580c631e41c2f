package marker

import "github.com/matzehuels/markergen/pkg/hocon"

// Color is an RGBA tuple the way BlueMap expects it: 8-bit channels and an
// alpha between 0.0 and 1.0.
type Color struct {
	R, G, B uint8
	A       float64
}

// colorTable maps the color names accepted in line records to their tuples.
// The "default" entry doubles as the fallback for unknown names.
var colorTable = map[string]Color{
	"red":        {255, 0, 0, 1.0},
	"orange":     {255, 165, 0, 1.0},
	"purple":     {128, 0, 128, 1.0},
	"green":      {0, 128, 0, 1.0},
	"brown":      {165, 42, 42, 1.0},
	"blue":       {0, 0, 255, 1.0},
	"yellow":     {255, 255, 0, 1.0},
	"DodgerBlue": {30, 144, 255, 1.0},
	"LightGray":  {211, 211, 211, 1.0},
	"default":    {255, 255, 255, 1.0},
}

// ResolveColor looks up a color name from a line record. Unknown or empty
// names are not an error; they resolve to the default (white) entry.
func ResolveColor(name string) Color {
	if c, ok := colorTable[name]; ok {
		return c
	}
	return colorTable["default"]
}

// value renders the color as an ordered {r, g, b, a} mapping.
func (c Color) value() *hocon.Map {
	return hocon.NewMap().
		Set("r", hocon.Int(c.R)).
		Set("g", hocon.Int(c.G)).
		Set("b", hocon.Int(c.B)).
		Set("a", hocon.Float(c.A))
}
