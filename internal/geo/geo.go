// Package geo holds the geometric primitives and predicates the game is
// built on: haversine distance, ray-cast containment, segment distance,
// line-side tests and ring adjacency. Everything here is pure and
// stateless; coordinates are WGS84 degrees and distances are meters.
package geo

import "math"

// EarthRadius is the mean Earth radius in meters.
const EarthRadius = 6371000.0

// AdjacencyTolerance is the default tolerance for RingsAdjacent,
// roughly one meter expressed in degrees.
const AdjacencyTolerance = 1e-5

// Point is a coordinate in degrees, latitude first.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Ring is a closed sequence of points; the edge from the last point back
// to the first is implicit.
type Ring []Point

// Polyline is an open sequence of points.
type Polyline []Point

// Polygon is an outer ring with zero or more hole rings. A point is
// inside the polygon iff it is inside the outer ring and outside every
// hole.
type Polygon struct {
	Outer Ring   `json:"outer"`
	Holes []Ring `json:"holes,omitempty"`
}

// Bounds is an axis-aligned lat/lng box.
type Bounds struct {
	MinLat float64 `json:"minLat"`
	MinLng float64 `json:"minLng"`
	MaxLat float64 `json:"maxLat"`
	MaxLng float64 `json:"maxLng"`
}

func toRadians(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// Distance returns the great-circle distance between a and b in meters
// (haversine).
func Distance(a, b Point) float64 {
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Lat))*math.Cos(toRadians(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return EarthRadius * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// PointInRing reports whether p lies inside ring using an even-odd ray
// cast. Points exactly on an edge get the ray cast's inherent verdict;
// callers must not special-case the boundary. A ring with fewer than
// three points contains nothing.
func PointInRing(p Point, ring Ring) bool {
	if len(ring) < 3 {
		return false
	}
	inside := false
	for i, j := 0, len(ring)-1; i < len(ring); j, i = i, i+1 {
		xi, yi := ring[i].Lng, ring[i].Lat
		xj, yj := ring[j].Lng, ring[j].Lat

		if (yi > p.Lat) != (yj > p.Lat) &&
			p.Lng < (xj-xi)*(p.Lat-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

// Contains reports whether p lies inside the polygon: inside the outer
// ring and outside every hole.
func (poly Polygon) Contains(p Point) bool {
	if !PointInRing(p, poly.Outer) {
		return false
	}
	for _, hole := range poly.Holes {
		if PointInRing(p, hole) {
			return false
		}
	}
	return true
}

// lngScale is the longitude compression factor at the given latitude:
// a degree of longitude spans cos(lat) times the meters of a degree of
// latitude.
func lngScale(lat float64) float64 {
	return math.Cos(toRadians(lat))
}

// ClosestOnSegment returns the point on segment a-b closest to p. The
// projection is done in a locally scaled planar frame so that the
// parameter is honest in meters; a zero-length segment yields a.
func ClosestOnSegment(p, a, b Point) Point {
	scale := lngScale(p.Lat)

	ax, ay := a.Lng*scale, a.Lat
	bx, by := b.Lng*scale, b.Lat
	px, py := p.Lng*scale, p.Lat

	dx, dy := bx-ax, by-ay
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return a
	}

	t := ((px-ax)*dx + (py-ay)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))

	return Point{
		Lat: a.Lat + t*(b.Lat-a.Lat),
		Lng: a.Lng + t*(b.Lng-a.Lng),
	}
}

// DistanceToSegment returns the distance in meters from p to segment a-b.
func DistanceToSegment(p, a, b Point) float64 {
	return Distance(p, ClosestOnSegment(p, a, b))
}

// SideOfLine returns the 2D cross product of (a->b) x (a->p) in
// (lng,lat) space. Only the sign is meaningful: positive means p is left
// of the directed line a->b (north of a west-to-east line), negative
// right, zero exactly on the line.
func SideOfLine(p, a, b Point) float64 {
	return (b.Lng-a.Lng)*(p.Lat-a.Lat) - (b.Lat-a.Lat)*(p.Lng-a.Lng)
}

// distanceToSegmentDeg is a planar degree-space point-to-segment
// distance, used only for the adjacency tolerance test.
func distanceToSegmentDeg(p, a, b Point) float64 {
	dx, dy := b.Lng-a.Lng, b.Lat-a.Lat
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(p.Lng-a.Lng, p.Lat-a.Lat)
	}
	t := ((p.Lng-a.Lng)*dx + (p.Lat-a.Lat)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(p.Lng-(a.Lng+t*dx), p.Lat-(a.Lat+t*dy))
}

// RingsAdjacent reports whether rings a and b touch: any vertex of one
// lies within tolDeg (degrees) of an edge of the other, in either
// direction.
func RingsAdjacent(a, b Ring, tolDeg float64) bool {
	return ringTouches(a, b, tolDeg) || ringTouches(b, a, tolDeg)
}

func ringTouches(verts, edges Ring, tolDeg float64) bool {
	if len(verts) == 0 || len(edges) < 2 {
		return false
	}
	for _, v := range verts {
		for i := range edges {
			j := (i + 1) % len(edges)
			if distanceToSegmentDeg(v, edges[i], edges[j]) <= tolDeg {
				return true
			}
		}
	}
	return false
}

// CircleRing approximates a circle of radiusM meters around center with
// n points, counterclockwise. Longitude offsets are divided by cos(lat)
// to undo degree compression away from the equator.
func CircleRing(center Point, radiusM float64, n int) Ring {
	if n < 3 {
		n = 3
	}
	angular := radiusM / EarthRadius * (180 / math.Pi)
	scale := lngScale(center.Lat)

	ring := make(Ring, 0, n)
	for i := 0; i < n; i++ {
		angle := float64(i) * 2 * math.Pi / float64(n)
		ring = append(ring, Point{
			Lat: center.Lat + angular*math.Sin(angle),
			Lng: center.Lng + angular*math.Cos(angle)/scale,
		})
	}
	return ring
}

// Contains reports whether p lies inside the bounds (inclusive).
func (b Bounds) Contains(p Point) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat &&
		p.Lng >= b.MinLng && p.Lng <= b.MaxLng
}

// Pad grows the bounds by marginDeg degrees on every side.
func (b Bounds) Pad(marginDeg float64) Bounds {
	return Bounds{
		MinLat: b.MinLat - marginDeg,
		MinLng: b.MinLng - marginDeg,
		MaxLat: b.MaxLat + marginDeg,
		MaxLng: b.MaxLng + marginDeg,
	}
}

// Ring returns the bounds' corners as a counterclockwise ring.
func (b Bounds) Ring() Ring {
	return Ring{
		{Lat: b.MinLat, Lng: b.MinLng},
		{Lat: b.MinLat, Lng: b.MaxLng},
		{Lat: b.MaxLat, Lng: b.MaxLng},
		{Lat: b.MaxLat, Lng: b.MinLng},
	}
}

// RingBounds returns the bounding box of a ring. An empty ring yields
// the zero bounds.
func RingBounds(ring Ring) Bounds {
	if len(ring) == 0 {
		return Bounds{}
	}
	b := Bounds{
		MinLat: ring[0].Lat, MaxLat: ring[0].Lat,
		MinLng: ring[0].Lng, MaxLng: ring[0].Lng,
	}
	for _, p := range ring[1:] {
		b.MinLat = math.Min(b.MinLat, p.Lat)
		b.MaxLat = math.Max(b.MaxLat, p.Lat)
		b.MinLng = math.Min(b.MinLng, p.Lng)
		b.MaxLng = math.Max(b.MaxLng, p.Lng)
	}
	return b
}

// Centroid returns the arithmetic mean of the ring's vertices. Good
// enough as an interior reference point for the convex regions the
// exclusion builder assembles.
func (r Ring) Centroid() Point {
	if len(r) == 0 {
		return Point{}
	}
	var lat, lng float64
	for _, p := range r {
		lat += p.Lat
		lng += p.Lng
	}
	n := float64(len(r))
	return Point{Lat: lat / n, Lng: lng / n}
}
