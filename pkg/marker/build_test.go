package marker

import (
	"strings"
	"testing"

	"github.com/matzehuels/markergen/pkg/hocon"
)

func mustMap(t *testing.T, v hocon.Value) *hocon.Map {
	t.Helper()
	m, ok := v.(*hocon.Map)
	if !ok {
		t.Fatalf("value is %T, want *hocon.Map", v)
	}
	return m
}

func markerSets(t *testing.T, doc *hocon.Map) *hocon.Map {
	t.Helper()
	v, ok := doc.Get("marker-sets")
	if !ok {
		t.Fatal("document has no marker-sets key")
	}
	return mustMap(t, v)
}

func TestBuildDocumentAllDatasets(t *testing.T) {
	doc := BuildDocument(
		[]Station{{ID: "s1", Name: "Central", X: 100, Y: 200}},
		[]Line{{ID: "l1", Name: "Red Line", Color: "red", Points: []Point{{0, 0}, {10, 0}}}},
		[]River{{ID: "r1", Name: "Old River", Points: []Point{{5, 5}}}},
	)

	sets := markerSets(t, doc)
	want := []string{"stations", "lines", "rivers"}
	keys := sets.Keys()
	if len(keys) != len(want) {
		t.Fatalf("got %d marker sets, want %d", len(keys), len(want))
	}
	for i, k := range want {
		if keys[i] != k {
			t.Errorf("set[%d] = %q, want %q", i, keys[i], k)
		}
	}
}

func TestBuildDocumentEmptyDatasets(t *testing.T) {
	doc := BuildDocument(nil, nil, nil)

	if sets := markerSets(t, doc); sets.Len() != 0 {
		t.Errorf("got %d marker sets, want 0", sets.Len())
	}
}

func TestBuildDocumentOmitsEmptySets(t *testing.T) {
	doc := BuildDocument([]Station{{ID: "s1", Name: "Central", X: 100, Y: 200}}, nil, nil)

	sets := markerSets(t, doc)
	if sets.Len() != 1 {
		t.Fatalf("got %d marker sets, want 1", sets.Len())
	}
	if _, ok := sets.Get("lines"); ok {
		t.Error("lines set present for empty dataset")
	}
	if _, ok := sets.Get("rivers"); ok {
		t.Error("rivers set present for empty dataset")
	}
}

func TestStationMarker(t *testing.T) {
	doc := BuildDocument([]Station{{ID: "s1", Name: "Central", X: 100, Y: 200}}, nil, nil)

	sets := markerSets(t, doc)
	stations := mustMap(t, mustGet(t, sets, "stations"))

	if v := mustGet(t, stations, "label"); v != hocon.String("Metro Stations") {
		t.Errorf("label = %v, want Metro Stations", v)
	}
	if v := mustGet(t, stations, "toggleable"); v != hocon.Bool(true) {
		t.Errorf("toggleable = %v, want true", v)
	}
	if v := mustGet(t, stations, "default-hidden"); v != hocon.Bool(false) {
		t.Errorf("default-hidden = %v, want false", v)
	}

	markers := mustMap(t, mustGet(t, stations, "markers"))
	m := mustMap(t, mustGet(t, markers, "s1"))

	if v := mustGet(t, m, "type"); v != hocon.String("poi") {
		t.Errorf("type = %v, want poi", v)
	}
	if v := mustGet(t, m, "label"); v != hocon.String("Central") {
		t.Errorf("label = %v, want Central", v)
	}
	pos := mustMap(t, mustGet(t, m, "position"))
	if x := mustGet(t, pos, "x"); x != hocon.Float(100) {
		t.Errorf("position.x = %v, want 100", x)
	}
	if y := mustGet(t, pos, "y"); y != hocon.Float(80) {
		t.Errorf("position.y = %v, want 80", y)
	}
	if z := mustGet(t, pos, "z"); z != hocon.Float(200) {
		t.Errorf("position.z = %v, want 200", z)
	}
	if v := mustGet(t, m, "icon"); v != hocon.String("assets/poi.svg") {
		t.Errorf("icon = %v, want assets/poi.svg", v)
	}
	if v := mustGet(t, m, "max-distance"); v != hocon.Int(10000000) {
		t.Errorf("max-distance = %v, want 10000000", v)
	}
}

func TestLineMarker(t *testing.T) {
	doc := BuildDocument(nil, []Line{{
		ID:     "l1",
		Name:   "Red Line",
		Color:  "red",
		Points: []Point{{0, 0}, {10, 0}},
	}}, nil)

	sets := markerSets(t, doc)
	markers := mustMap(t, mustGet(t, mustMap(t, mustGet(t, sets, "lines")), "markers"))
	m := mustMap(t, mustGet(t, markers, "l1"))

	if v := mustGet(t, m, "type"); v != hocon.String("line") {
		t.Errorf("type = %v, want line", v)
	}
	if v := mustGet(t, m, "detail"); v != hocon.String("Red Line (ID: l1)") {
		t.Errorf("detail = %v, want Red Line (ID: l1)", v)
	}
	if v := mustGet(t, m, "depth-test"); v != hocon.Bool(false) {
		t.Errorf("depth-test = %v, want false", v)
	}
	if v := mustGet(t, m, "line-width"); v != hocon.Int(5) {
		t.Errorf("line-width = %v, want default 5", v)
	}

	color := mustMap(t, mustGet(t, m, "line-color"))
	if r := mustGet(t, color, "r"); r != hocon.Int(255) {
		t.Errorf("line-color.r = %v, want 255", r)
	}
	if g := mustGet(t, color, "g"); g != hocon.Int(0) {
		t.Errorf("line-color.g = %v, want 0", g)
	}
	if a := mustGet(t, color, "a"); a != hocon.Float(1.0) {
		t.Errorf("line-color.a = %v, want 1.0", a)
	}

	line, ok := mustGet(t, m, "line").(hocon.List)
	if !ok {
		t.Fatal("line is not a hocon.List")
	}
	if len(line) != 2 {
		t.Fatalf("line has %d points, want 2", len(line))
	}
	for i, p := range line {
		if y := mustGet(t, mustMap(t, p), "y"); y != hocon.Float(80) {
			t.Errorf("point %d height = %v, want 80", i, y)
		}
	}
}

func TestLineMarkerExplicitWidth(t *testing.T) {
	w := 3.0
	doc := BuildDocument(nil, []Line{{
		ID:     "l1",
		Name:   "Thin Line",
		Width:  &w,
		Points: []Point{{0, 0}},
	}}, nil)

	sets := markerSets(t, doc)
	markers := mustMap(t, mustGet(t, mustMap(t, mustGet(t, sets, "lines")), "markers"))
	m := mustMap(t, mustGet(t, markers, "l1"))

	if v := mustGet(t, m, "line-width"); v != hocon.Float(3) {
		t.Errorf("line-width = %v, want 3", v)
	}
}

func TestRiverMarker(t *testing.T) {
	doc := BuildDocument(nil, nil, []River{{
		ID:     "r1",
		Name:   "Old River",
		Points: []Point{{5, 7}},
	}})

	sets := markerSets(t, doc)
	markers := mustMap(t, mustGet(t, mustMap(t, mustGet(t, sets, "rivers")), "markers"))
	m := mustMap(t, mustGet(t, markers, "r1"))

	// Rivers sit one unit below stations and lines.
	line := mustGet(t, m, "line").(hocon.List)
	if y := mustGet(t, mustMap(t, line[0]), "y"); y != hocon.Float(79) {
		t.Errorf("river height = %v, want 79", y)
	}
	if v := mustGet(t, m, "line-width"); v != hocon.Int(10) {
		t.Errorf("line-width = %v, want default 10", v)
	}
	if _, ok := m.Get("detail"); ok {
		t.Error("river marker has a detail key")
	}

	color := mustMap(t, mustGet(t, m, "line-color"))
	if g := mustGet(t, color, "g"); g != hocon.Int(255) {
		t.Errorf("line-color.g = %v, want 255", g)
	}
	if a := mustGet(t, color, "a"); a != hocon.Float(0.8) {
		t.Errorf("line-color.a = %v, want 0.8", a)
	}
}

func TestDocumentEncodesEndToEnd(t *testing.T) {
	doc := BuildDocument(
		[]Station{{ID: "s1", Name: "Central", X: 100, Y: 200}},
		nil, nil,
	)

	out := hocon.Encode(doc)
	for _, want := range []string{
		"marker-sets: {",
		"stations: {",
		`label: "Central"`,
		`type: "poi"`,
		"x: 100",
		"y: 80",
		"z: 200",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("encoded document missing %q:\n%s", want, out)
		}
	}
	for _, absent := range []string{"lines:", "rivers:"} {
		if strings.Contains(out, absent) {
			t.Errorf("encoded document unexpectedly contains %q", absent)
		}
	}
}

func mustGet(t *testing.T, m *hocon.Map, key string) hocon.Value {
	t.Helper()
	v, ok := m.Get(key)
	if !ok {
		t.Fatalf("map has no %q key", key)
	}
	return v
}
