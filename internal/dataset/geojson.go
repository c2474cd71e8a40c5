package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/obvius1/Location-Search-Game/internal/geo"
)

// Feature properties understood by the loader:
//
//	kind        ring | separator | buffer | poi | neighborhood | zone
//	name        display / lookup name
//	key         lookup key for POIs (defaults to a slug of name)
//	collection  POI collection type ("hospitals", ...)
//	id          numeric neighborhood identifier
//	radius_m    play-zone radius for kind=zone (point feature)
//
// GeoJSON is (lng,lat); conversion to the internal (lat,lng) Point
// happens here and nowhere else.

// LoadDir reads every *.geojson file in dir into a Set. The set name is
// the directory base name.
func LoadDir(dir string) (*Set, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading dataset dir: %w", err)
	}

	s := &Set{
		Name:        filepath.Base(dir),
		POIs:        make(map[string]POI),
		Collections: make(map[string][]POI),
	}

	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".geojson") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := loadFile(s, path); err != nil {
			return nil, fmt.Errorf("loading %s: %w", entry.Name(), err)
		}
		loaded++
	}
	if loaded == 0 {
		return nil, fmt.Errorf("no .geojson files in %s", dir)
	}
	if s.RadiusM == 0 {
		return nil, fmt.Errorf("dataset %s has no zone feature", s.Name)
	}
	return s, nil
}

func loadFile(s *Set, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return fmt.Errorf("parsing feature collection: %w", err)
	}

	for i, f := range fc.Features {
		if err := addFeature(s, f); err != nil {
			return fmt.Errorf("feature %d: %w", i, err)
		}
	}
	return nil
}

func addFeature(s *Set, f *geojson.Feature) error {
	kind := stringProp(f, "kind")
	name := stringProp(f, "name")

	switch kind {
	case "zone":
		pt, ok := f.Geometry.(orb.Point)
		if !ok {
			return fmt.Errorf("zone must be a Point, got %T", f.Geometry)
		}
		radius, ok := floatProp(f, "radius_m")
		if !ok || radius <= 0 {
			return fmt.Errorf("zone needs a positive radius_m")
		}
		s.Center = toPoint(pt)
		s.RadiusM = radius

	case "ring":
		poly, err := toPolygon(f.Geometry)
		if err != nil {
			return err
		}
		s.Rings = append(s.Rings, NamedPolygon{Name: name, Polygon: poly})

	case "buffer":
		poly, err := toPolygon(f.Geometry)
		if err != nil {
			return err
		}
		s.Buffers = append(s.Buffers, NamedPolygon{Name: name, Polygon: poly})

	case "separator":
		ls, ok := f.Geometry.(orb.LineString)
		if !ok {
			return fmt.Errorf("separator must be a LineString, got %T", f.Geometry)
		}
		line := make(geo.Polyline, 0, len(ls))
		for _, pt := range ls {
			line = append(line, toPoint(pt))
		}
		s.Separators = append(s.Separators, NamedPolyline{Name: name, Line: line})

	case "poi":
		pt, ok := f.Geometry.(orb.Point)
		if !ok {
			return fmt.Errorf("poi must be a Point, got %T", f.Geometry)
		}
		poi := POI{Name: name, Point: toPoint(pt)}
		if typ := stringProp(f, "collection"); typ != "" {
			s.Collections[typ] = append(s.Collections[typ], poi)
		} else {
			key := stringProp(f, "key")
			if key == "" {
				key = slug(name)
			}
			s.POIs[key] = poi
		}

	case "neighborhood":
		poly, err := toPolygon(f.Geometry)
		if err != nil {
			return err
		}
		id, ok := floatProp(f, "id")
		if !ok {
			id = float64(len(s.Neighborhoods) + 1)
		}
		s.Neighborhoods = append(s.Neighborhoods, Neighborhood{
			ID:      int(id),
			Name:    name,
			Polygon: poly,
		})

	case "":
		return fmt.Errorf("feature has no kind property")
	default:
		return fmt.Errorf("unknown feature kind %q", kind)
	}
	return nil
}

func toPoint(pt orb.Point) geo.Point {
	// orb points are (lng, lat).
	return geo.Point{Lat: pt.Lat(), Lng: pt.Lon()}
}

func toPolygon(g orb.Geometry) (geo.Polygon, error) {
	poly, ok := g.(orb.Polygon)
	if !ok {
		return geo.Polygon{}, fmt.Errorf("expected Polygon geometry, got %T", g)
	}
	if len(poly) == 0 {
		return geo.Polygon{}, fmt.Errorf("polygon has no rings")
	}

	out := geo.Polygon{Outer: toRing(poly[0])}
	for _, hole := range poly[1:] {
		out.Holes = append(out.Holes, toRing(hole))
	}
	return out, nil
}

func toRing(r orb.Ring) geo.Ring {
	ring := make(geo.Ring, 0, len(r))
	for i, pt := range r {
		// GeoJSON rings repeat the first point at the end; the
		// internal representation closes implicitly.
		if i == len(r)-1 && len(r) > 1 && pt == r[0] {
			break
		}
		ring = append(ring, toPoint(pt))
	}
	return ring
}

func stringProp(f *geojson.Feature, key string) string {
	if v, ok := f.Properties[key].(string); ok {
		return v
	}
	return ""
}

func floatProp(f *geojson.Feature, key string) (float64, bool) {
	switch v := f.Properties[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	}
	return 0, false
}

func slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}
