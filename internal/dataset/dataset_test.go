package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/obvius1/Location-Search-Game/internal/geo"
)

func TestGhentValid(t *testing.T) {
	s := Ghent()

	if errs := s.Validate(); len(errs) != 0 {
		t.Fatalf("demo dataset should validate cleanly, got %v", errs)
	}
	if s.RadiusM != 16000 {
		t.Errorf("play radius = %v, want 16000", s.RadiusM)
	}

	ring, ok := s.Ring("r40")
	if !ok {
		t.Fatal("r40 ring missing")
	}
	if len(ring.Polygon.Outer) < 100 {
		t.Errorf("r40 ring suspiciously small: %d points", len(ring.Polygon.Outer))
	}

	if _, ok := s.Separator("leie-schelde"); !ok {
		t.Error("leie-schelde separator missing")
	}
	if _, ok := s.Buffer("watersportbaan-corridor"); !ok {
		t.Error("watersportbaan buffer missing")
	}
	if _, ok := s.POI("dampoort"); !ok {
		t.Error("dampoort POI missing")
	}
	if _, ok := s.Collection("hospitals"); !ok {
		t.Error("hospitals collection missing")
	}
	if _, ok := s.Collection("nonexistent"); ok {
		t.Error("unknown collection should report not-ok")
	}
}

func TestGhentBoundsCoverZone(t *testing.T) {
	s := Ghent()
	b := s.Bounds(0.02)

	edge := geo.CircleRing(s.Center, s.RadiusM, 32)
	for _, p := range edge {
		if !b.Contains(p) {
			t.Fatalf("bounds %+v do not cover zone edge point %+v", b, p)
		}
	}
}

func TestValidateReportsDegenerate(t *testing.T) {
	s := &Set{
		Name:       "broken",
		Rings:      []NamedPolygon{{Name: "empty"}},
		Separators: []NamedPolyline{{Name: "dot", Line: geo.Polyline{{Lat: 1, Lng: 1}}}},
		Collections: map[string][]POI{
			"void": {},
		},
	}

	errs := s.Validate()
	if len(errs) != 3 {
		t.Fatalf("expected 3 validation errors, got %d: %v", len(errs), errs)
	}
}

const testGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature",
     "properties": {"kind": "zone", "name": "center", "radius_m": 16000},
     "geometry": {"type": "Point", "coordinates": [3.72476097, 51.0536844]}},
    {"type": "Feature",
     "properties": {"kind": "ring", "name": "r40"},
     "geometry": {"type": "Polygon", "coordinates": [[
       [3.70, 51.04], [3.75, 51.04], [3.75, 51.07], [3.70, 51.07], [3.70, 51.04]]]}},
    {"type": "Feature",
     "properties": {"kind": "separator", "name": "leie-schelde"},
     "geometry": {"type": "LineString", "coordinates": [[3.69, 51.045], [3.76, 51.052]]}},
    {"type": "Feature",
     "properties": {"kind": "poi", "name": "Station Dampoort", "key": "dampoort"},
     "geometry": {"type": "Point", "coordinates": [3.740287984, 51.056221]}},
    {"type": "Feature",
     "properties": {"kind": "poi", "name": "UZ Gent", "collection": "hospitals"},
     "geometry": {"type": "Point", "coordinates": [3.7252, 51.0241]}},
    {"type": "Feature",
     "properties": {"kind": "neighborhood", "name": "Binnenstad", "id": 1},
     "geometry": {"type": "Polygon", "coordinates": [[
       [3.712, 51.044], [3.740, 51.044], [3.740, 51.064], [3.712, 51.064], [3.712, 51.044]]]}}
  ]
}`

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "gent.geojson"), []byte(testGeoJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}

	// Coordinate order must flip from GeoJSON (lng,lat) to (lat,lng).
	if s.Center.Lat != 51.0536844 || s.Center.Lng != 3.72476097 {
		t.Errorf("center = %+v, coordinate order wrong", s.Center)
	}

	ring, ok := s.Ring("r40")
	if !ok {
		t.Fatal("ring not loaded")
	}
	// Closing point of the GeoJSON ring is dropped.
	if len(ring.Polygon.Outer) != 4 {
		t.Errorf("ring has %d points, want 4", len(ring.Polygon.Outer))
	}

	if poi, ok := s.POI("dampoort"); !ok || poi.Point.Lat != 51.056221 {
		t.Errorf("dampoort POI not loaded correctly: %+v ok=%v", poi, ok)
	}
	if c, ok := s.Collection("hospitals"); !ok || len(c) != 1 {
		t.Errorf("hospitals collection not loaded: %v ok=%v", c, ok)
	}
	if len(s.Neighborhoods) != 1 || s.Neighborhoods[0].ID != 1 {
		t.Errorf("neighborhood not loaded: %+v", s.Neighborhoods)
	}
}

func TestLoadDirRejectsMissingZone(t *testing.T) {
	dir := t.TempDir()
	noZone := `{"type":"FeatureCollection","features":[
		{"type":"Feature","properties":{"kind":"poi","name":"x"},
		 "geometry":{"type":"Point","coordinates":[3.7,51.0]}}]}`
	if err := os.WriteFile(filepath.Join(dir, "bad.geojson"), []byte(noZone), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadDir(dir); err == nil {
		t.Fatal("expected error for dataset without a zone feature")
	}
}
