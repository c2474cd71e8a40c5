// Package dataset holds the static geography a game is played against:
// the play zone, the ring-road polygon, separator lines, buffer
// corridors, named POIs and POI collections, and neighborhood polygons.
// Datasets are loaded once at startup and immutable for the session.
package dataset

import (
	"fmt"

	"github.com/obvius1/Location-Search-Game/internal/geo"
)

// POI is a named point of interest.
type POI struct {
	Name  string    `json:"name"`
	Point geo.Point `json:"point"`
}

// Neighborhood is a named polygon with a stable numeric identifier.
// Adjacency between neighborhoods is derived from geometry, never
// stored.
type Neighborhood struct {
	ID      int         `json:"id"`
	Name    string      `json:"name"`
	Polygon geo.Polygon `json:"polygon"`
}

// NamedPolyline is an open separator line, e.g. a river.
type NamedPolyline struct {
	Name string       `json:"name"`
	Line geo.Polyline `json:"line"`
}

// NamedPolygon is a precomputed area, e.g. a buffer corridor around a
// waterway.
type NamedPolygon struct {
	Name    string      `json:"name"`
	Polygon geo.Polygon `json:"polygon"`
}

// Set aggregates all static geography for one play area.
type Set struct {
	Name string `json:"name"`

	// Center and RadiusM define the circular play zone.
	Center  geo.Point `json:"center"`
	RadiusM float64   `json:"radiusM"`

	// Rings are containment boundaries, e.g. an inner ring road.
	Rings []NamedPolygon `json:"rings"`

	Separators    []NamedPolyline  `json:"separators"`
	Buffers       []NamedPolygon   `json:"buffers"`
	POIs          map[string]POI   `json:"pois"`
	Collections   map[string][]POI `json:"collections"`
	Neighborhoods []Neighborhood   `json:"neighborhoods"`
}

// Bounds returns a box that covers the whole play zone with the given
// margin in degrees. Exclusion polygons are clamped to it so they never
// have to extend to infinity.
func (s *Set) Bounds(marginDeg float64) geo.Bounds {
	zone := geo.RingBounds(geo.CircleRing(s.Center, s.RadiusM, 16))
	return zone.Pad(marginDeg)
}

// Ring returns the named containment ring.
func (s *Set) Ring(name string) (NamedPolygon, bool) {
	for _, r := range s.Rings {
		if r.Name == name {
			return r, true
		}
	}
	return NamedPolygon{}, false
}

// Separator returns the named separator line.
func (s *Set) Separator(name string) (NamedPolyline, bool) {
	for _, l := range s.Separators {
		if l.Name == name {
			return l, true
		}
	}
	return NamedPolyline{}, false
}

// Buffer returns the named buffer polygon.
func (s *Set) Buffer(name string) (NamedPolygon, bool) {
	for _, b := range s.Buffers {
		if b.Name == name {
			return b, true
		}
	}
	return NamedPolygon{}, false
}

// POI returns the named point of interest.
func (s *Set) POI(name string) (POI, bool) {
	p, ok := s.POIs[name]
	return p, ok
}

// Collection returns the POI collection for the given type. The
// returned slice is in dataset order, which evaluators use for
// deterministic tie-breaking.
func (s *Set) Collection(typ string) ([]POI, bool) {
	c, ok := s.Collections[typ]
	return c, ok && len(c) > 0
}

// Validate reports geometry that evaluators will classify as
// undetermined: rings with fewer than three points, separators with
// fewer than two, empty collections. The dataset stays usable; this is
// diagnostic only.
func (s *Set) Validate() []error {
	var errs []error
	for _, r := range s.Rings {
		if len(r.Polygon.Outer) < 3 {
			errs = append(errs, fmt.Errorf("ring %q: outer ring has %d points", r.Name, len(r.Polygon.Outer)))
		}
	}
	for _, l := range s.Separators {
		if len(l.Line) < 2 {
			errs = append(errs, fmt.Errorf("separator %q: polyline has %d points", l.Name, len(l.Line)))
		}
	}
	for _, b := range s.Buffers {
		if len(b.Polygon.Outer) < 3 {
			errs = append(errs, fmt.Errorf("buffer %q: outer ring has %d points", b.Name, len(b.Polygon.Outer)))
		}
	}
	for typ, c := range s.Collections {
		if len(c) == 0 {
			errs = append(errs, fmt.Errorf("collection %q is empty", typ))
		}
	}
	for _, n := range s.Neighborhoods {
		if len(n.Polygon.Outer) < 3 {
			errs = append(errs, fmt.Errorf("neighborhood %q: outer ring has %d points", n.Name, len(n.Polygon.Outer)))
		}
	}
	return errs
}
