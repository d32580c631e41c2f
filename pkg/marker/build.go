package marker

import (
	"fmt"

	"github.com/matzehuels/markergen/pkg/hocon"
)

const (
	// markerHeight is the vertical offset for station and line markers.
	// Rivers sit one unit lower so they render beneath crossing lines.
	markerHeight = 80
	riverHeight  = markerHeight - 1

	defaultLineWidth  = 5
	defaultRiverWidth = 10

	minDistance = 10
	maxDistance = 10_000_000

	poiIcon = "assets/poi.svg"
)

// riverColor is the fixed cyan used for all river markers.
var riverColor = Color{R: 0, G: 255, B: 255, A: 0.8}

// BuildDocument assembles the marker document from the three datasets. The
// result is rooted at a single "marker-sets" key; each dataset contributes
// one set, keyed stations/lines/rivers in that order, only when non-empty.
// Three empty datasets yield a document with zero sets, which is still a
// valid configuration.
func BuildDocument(stations []Station, lines []Line, rivers []River) *hocon.Map {
	sets := hocon.NewMap()
	if len(stations) > 0 {
		sets.Set("stations", markerSet("Metro Stations", stationMarkers(stations)))
	}
	if len(lines) > 0 {
		sets.Set("lines", markerSet("Metro Lines", lineMarkers(lines)))
	}
	if len(rivers) > 0 {
		sets.Set("rivers", markerSet("Rivers", riverMarkers(rivers)))
	}
	return hocon.NewMap().Set("marker-sets", sets)
}

// markerSet wraps markers with the set-level fields. Every set is toggleable
// and shown by default; default-hidden is set uniformly on all three sets.
func markerSet(label string, markers *hocon.Map) *hocon.Map {
	return hocon.NewMap().
		Set("label", hocon.String(label)).
		Set("toggleable", hocon.Bool(true)).
		Set("default-hidden", hocon.Bool(false)).
		Set("markers", markers)
}

func stationMarkers(stations []Station) *hocon.Map {
	markers := hocon.NewMap()
	for _, s := range stations {
		markers.Set(s.ID, hocon.NewMap().
			Set("type", hocon.String("poi")).
			Set("label", hocon.String(s.Name)).
			Set("position", position(s.X, markerHeight, s.Y)).
			Set("icon", hocon.String(poiIcon)).
			Set("anchor", hocon.NewMap().Set("x", hocon.Int(25)).Set("y", hocon.Int(45))).
			Set("sorting", hocon.Int(0)).
			Set("listed", hocon.Bool(true)).
			Set("min-distance", hocon.Int(minDistance)).
			Set("max-distance", hocon.Int(maxDistance)))
	}
	return markers
}

func lineMarkers(lines []Line) *hocon.Map {
	markers := hocon.NewMap()
	for _, l := range lines {
		markers.Set(l.ID, hocon.NewMap().
			Set("type", hocon.String("line")).
			Set("label", hocon.String(l.Name)).
			Set("line", path(l.Points, markerHeight)).
			Set("detail", hocon.String(fmt.Sprintf("%s (ID: %s)", l.Name, l.ID))).
			Set("depth-test", hocon.Bool(false)).
			Set("line-width", width(l.Width, defaultLineWidth)).
			Set("line-color", ResolveColor(l.Color).value()).
			Set("sorting", hocon.Int(0)).
			Set("listed", hocon.Bool(true)).
			Set("min-distance", hocon.Int(minDistance)).
			Set("max-distance", hocon.Int(maxDistance)))
	}
	return markers
}

func riverMarkers(rivers []River) *hocon.Map {
	markers := hocon.NewMap()
	for _, r := range rivers {
		markers.Set(r.ID, hocon.NewMap().
			Set("type", hocon.String("line")).
			Set("label", hocon.String(r.Name)).
			Set("line", path(r.Points, riverHeight)).
			Set("depth-test", hocon.Bool(false)).
			Set("line-width", width(r.Width, defaultRiverWidth)).
			Set("line-color", riverColor.value()).
			Set("sorting", hocon.Int(0)).
			Set("listed", hocon.Bool(true)).
			Set("min-distance", hocon.Int(minDistance)).
			Set("max-distance", hocon.Int(maxDistance)))
	}
	return markers
}

// position maps a record's {x, y} onto BlueMap's {x, height, z}: the map is
// viewed top-down, so the record's y becomes the world z.
func position(x, height, z float64) *hocon.Map {
	return hocon.NewMap().
		Set("x", hocon.Float(x)).
		Set("y", hocon.Float(height)).
		Set("z", hocon.Float(z))
}

// path lifts a 2D point sequence to world coordinates at a fixed height,
// preserving point order.
func path(points []Point, height float64) hocon.List {
	l := make(hocon.List, len(points))
	for i, p := range points {
		l[i] = position(p.X, height, p.Y)
	}
	return l
}

// width returns w when present, the dataset default otherwise.
func width(w *float64, def int64) hocon.Value {
	if w == nil {
		return hocon.Int(def)
	}
	return hocon.Float(*w)
}
