// Package predicate evaluates the geographic questions of the game.
// Every evaluator is a pure function of (point, dataset, params): no
// state, no side effects, and no failure modes — malformed input is
// reported through the outcome, never a panic or an error return.
package predicate

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/obvius1/Location-Search-Game/internal/dataset"
	"github.com/obvius1/Location-Search-Game/internal/geo"
)

// Kind identifies a question type. Behavior is dispatched on this
// closed set, never on display text.
type Kind string

const (
	KindRing             Kind = "ring"              // inside/outside a boundary polygon
	KindLineSide         Kind = "line-side"         // which side of a separator line
	KindNearestOfTwo     Kind = "nearest-of-two"    // closer to POI A or POI B
	KindNearestOfMany    Kind = "nearest-of-many"   // closest POI in a collection
	KindFurthestOfMany   Kind = "furthest-of-many"  // farthest POI in a collection
	KindMeridian         Kind = "meridian"          // east/west of a reference POI
	KindBuffer           Kind = "buffer"            // inside/outside a buffer corridor
	KindNeighborhood     Kind = "neighborhood"      // containing neighborhood + adjacency
	KindRadiusCollection Kind = "radius-collection" // within radius of any POI in a collection
	KindRadiusPoint      Kind = "radius-point"      // within radius of a seeker-supplied point
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindRing, KindLineSide, KindNearestOfTwo, KindNearestOfMany,
		KindFurthestOfMany, KindMeridian, KindBuffer, KindNeighborhood,
		KindRadiusCollection, KindRadiusPoint:
		return true
	}
	return false
}

// Outcomes. Kinds that classify to a dataset entry (nearest-of-many,
// neighborhood) use the entry's name as the outcome instead.
const (
	OutcomeInside  = "inside"
	OutcomeOutside = "outside"
	OutcomeLeft    = "left"
	OutcomeRight   = "right"
	OutcomeEast    = "east"
	OutcomeWest    = "west"
	OutcomeYes     = "yes"
	OutcomeNo      = "no"

	// OutcomeUnknown means the question could not be answered for this
	// point (degenerate geometry, point in no neighborhood, malformed
	// target). OutcomeNoData means the dataset lacks the referenced
	// entry entirely. Both are degraded-but-visible results, not errors.
	OutcomeUnknown = "unknown"
	OutcomeNoData  = "no-data"
)

// Params carries everything an evaluator needs beyond the point and the
// dataset. One flat bag so cards and exclusion records serialize
// uniformly; which fields matter depends on the kind.
type Params struct {
	// Name references a dataset entry: ring, separator, buffer, or
	// reference POI, depending on the kind.
	Name string `json:"name,omitempty"`

	// PairA and PairB reference the two POIs of a nearest-of-two
	// question.
	PairA string `json:"pairA,omitempty"`
	PairB string `json:"pairB,omitempty"`

	// Collection references a POI collection by type.
	Collection string `json:"collection,omitempty"`

	// RadiusM is the radius for the proximity kinds.
	RadiusM float64 `json:"radiusM,omitempty"`

	// Target is the seeker-supplied "lat,lng" coordinate for
	// radius-point questions.
	Target string `json:"target,omitempty"`

	// Segment pins which separator segment a line-side answer was
	// judged against, so the exclusion geometry can be reconstructed
	// from the record alone. Copied from Answer.Segment when the
	// answer is recorded.
	Segment int `json:"segment,omitempty"`
}

// Answer is the typed result of one evaluation.
type Answer struct {
	Kind    Kind   `json:"kind"`
	Outcome string `json:"outcome"`
	Detail  string `json:"detail,omitempty"`

	// Distances carries auxiliary evidence in meters for display,
	// keyed by what was measured.
	Distances map[string]float64 `json:"distances,omitempty"`

	// Adjacent lists neighborhoods adjacent to the containing one
	// (neighborhood kind only).
	Adjacent []string `json:"adjacent,omitempty"`

	// Tie flags an exact-tie boundary case resolved by fixed policy.
	Tie bool `json:"tie,omitempty"`

	// Segment is the index of the nearest separator segment
	// (line-side kind only).
	Segment int `json:"segment,omitempty"`
}

// Undetermined reports whether the answer carries no usable
// classification.
func (a Answer) Undetermined() bool {
	return a.Outcome == OutcomeUnknown || a.Outcome == OutcomeNoData
}

// ParseTarget validates and parses a seeker-supplied "lat,lng" string.
// Rejecting malformed input happens here, before any game state is
// touched.
func ParseTarget(s string) (geo.Point, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return geo.Point{}, fmt.Errorf("target must be \"lat,lng\", got %q", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geo.Point{}, fmt.Errorf("invalid latitude %q", parts[0])
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geo.Point{}, fmt.Errorf("invalid longitude %q", parts[1])
	}
	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return geo.Point{}, fmt.Errorf("target coordinates must be finite")
	}
	return geo.Point{Lat: lat, Lng: lng}, nil
}

// CheckZone reports whether p lies inside the dataset's circular play
// zone, with the distance to the center as evidence.
func CheckZone(p geo.Point, ds *dataset.Set) (bool, float64) {
	d := geo.Distance(p, ds.Center)
	return d <= ds.RadiusM, d
}

// Evaluate answers one question kind for the hider's point.
func Evaluate(p geo.Point, ds *dataset.Set, kind Kind, params Params) Answer {
	switch kind {
	case KindRing:
		return evalRing(p, ds, params)
	case KindLineSide:
		return evalLineSide(p, ds, params)
	case KindNearestOfTwo:
		return evalNearestOfTwo(p, ds, params)
	case KindNearestOfMany:
		return evalExtremeOfMany(p, ds, params, KindNearestOfMany, false)
	case KindFurthestOfMany:
		return evalExtremeOfMany(p, ds, params, KindFurthestOfMany, true)
	case KindMeridian:
		return evalMeridian(p, ds, params)
	case KindBuffer:
		return evalBuffer(p, ds, params)
	case KindNeighborhood:
		return evalNeighborhood(p, ds, params)
	case KindRadiusCollection:
		return evalRadiusCollection(p, ds, params)
	case KindRadiusPoint:
		return evalRadiusPoint(p, params)
	}
	return Answer{Kind: kind, Outcome: OutcomeUnknown, Detail: "unknown question kind"}
}

func evalRing(p geo.Point, ds *dataset.Set, params Params) Answer {
	ring, ok := ds.Ring(params.Name)
	if !ok {
		return Answer{Kind: KindRing, Outcome: OutcomeNoData, Detail: "ring " + params.Name + " not in dataset"}
	}
	if len(ring.Polygon.Outer) < 3 {
		return Answer{Kind: KindRing, Outcome: OutcomeUnknown, Detail: "degenerate ring"}
	}
	// Boundary points get the ray cast's verdict, uniformly.
	out := OutcomeOutside
	if ring.Polygon.Contains(p) {
		out = OutcomeInside
	}
	return Answer{Kind: KindRing, Outcome: out}
}

func evalLineSide(p geo.Point, ds *dataset.Set, params Params) Answer {
	sep, ok := ds.Separator(params.Name)
	if !ok {
		return Answer{Kind: KindLineSide, Outcome: OutcomeNoData, Detail: "separator " + params.Name + " not in dataset"}
	}
	if len(sep.Line) < 2 {
		return Answer{Kind: KindLineSide, Outcome: OutcomeUnknown, Detail: "degenerate separator"}
	}

	// The side is judged against the nearest segment; on an exact
	// distance tie the first segment in iteration order wins.
	best := 0
	bestDist := geo.DistanceToSegment(p, sep.Line[0], sep.Line[1])
	for i := 1; i < len(sep.Line)-1; i++ {
		if d := geo.DistanceToSegment(p, sep.Line[i], sep.Line[i+1]); d < bestDist {
			best, bestDist = i, d
		}
	}

	out := OutcomeRight
	if geo.SideOfLine(p, sep.Line[best], sep.Line[best+1]) > 0 {
		out = OutcomeLeft
	}
	return Answer{
		Kind:      KindLineSide,
		Outcome:   out,
		Distances: map[string]float64{sep.Name: bestDist},
		Segment:   best,
	}
}

func evalNearestOfTwo(p geo.Point, ds *dataset.Set, params Params) Answer {
	a, okA := ds.POI(params.PairA)
	b, okB := ds.POI(params.PairB)
	if !okA || !okB {
		return Answer{Kind: KindNearestOfTwo, Outcome: OutcomeNoData, Detail: "pair POI not in dataset"}
	}

	dA := geo.Distance(p, a.Point)
	dB := geo.Distance(p, b.Point)

	ans := Answer{
		Kind:      KindNearestOfTwo,
		Distances: map[string]float64{params.PairA: dA, params.PairB: dB},
	}
	switch {
	case dA < dB:
		ans.Outcome = params.PairA
	case dB < dA:
		ans.Outcome = params.PairB
	default:
		// Exact tie: A wins by fixed policy, flagged for the caller.
		ans.Outcome = params.PairA
		ans.Tie = true
	}
	return ans
}

func evalExtremeOfMany(p geo.Point, ds *dataset.Set, params Params, kind Kind, furthest bool) Answer {
	pois, ok := ds.Collection(params.Collection)
	if !ok {
		return Answer{Kind: kind, Outcome: OutcomeNoData, Detail: "collection " + params.Collection + " not in dataset"}
	}

	// First occurrence wins ties, so only strict improvement replaces.
	best := 0
	bestDist := geo.Distance(p, pois[0].Point)
	for i, poi := range pois[1:] {
		d := geo.Distance(p, poi.Point)
		if (furthest && d > bestDist) || (!furthest && d < bestDist) {
			best, bestDist = i+1, d
		}
	}

	return Answer{
		Kind:      kind,
		Outcome:   pois[best].Name,
		Distances: map[string]float64{pois[best].Name: bestDist},
	}
}

func evalMeridian(p geo.Point, ds *dataset.Set, params Params) Answer {
	ref, ok := ds.POI(params.Name)
	if !ok {
		return Answer{Kind: KindMeridian, Outcome: OutcomeNoData, Detail: "POI " + params.Name + " not in dataset"}
	}

	// Equal longitude counts as west: the east side is a strict bound.
	out := OutcomeWest
	if p.Lng > ref.Point.Lng {
		out = OutcomeEast
	}
	return Answer{Kind: KindMeridian, Outcome: out}
}

func evalBuffer(p geo.Point, ds *dataset.Set, params Params) Answer {
	buf, ok := ds.Buffer(params.Name)
	if !ok {
		return Answer{Kind: KindBuffer, Outcome: OutcomeNoData, Detail: "buffer " + params.Name + " not in dataset"}
	}
	if len(buf.Polygon.Outer) < 3 {
		return Answer{Kind: KindBuffer, Outcome: OutcomeUnknown, Detail: "degenerate buffer"}
	}
	out := OutcomeOutside
	if buf.Polygon.Contains(p) {
		out = OutcomeInside
	}
	return Answer{Kind: KindBuffer, Outcome: out}
}

func evalNeighborhood(p geo.Point, ds *dataset.Set, _ Params) Answer {
	if len(ds.Neighborhoods) == 0 {
		return Answer{Kind: KindNeighborhood, Outcome: OutcomeNoData, Detail: "no neighborhoods in dataset"}
	}

	// First containing neighborhood in dataset order; a well-formed
	// dataset has no overlaps, so order only matters at shared edges.
	for _, n := range ds.Neighborhoods {
		if !n.Polygon.Contains(p) {
			continue
		}
		ans := Answer{Kind: KindNeighborhood, Outcome: n.Name}
		for _, other := range ds.Neighborhoods {
			if other.ID == n.ID {
				continue
			}
			if geo.RingsAdjacent(n.Polygon.Outer, other.Polygon.Outer, geo.AdjacencyTolerance) {
				ans.Adjacent = append(ans.Adjacent, other.Name)
			}
		}
		return ans
	}
	return Answer{Kind: KindNeighborhood, Outcome: OutcomeUnknown, Detail: "point in no neighborhood"}
}

func evalRadiusCollection(p geo.Point, ds *dataset.Set, params Params) Answer {
	pois, ok := ds.Collection(params.Collection)
	if !ok {
		return Answer{Kind: KindRadiusCollection, Outcome: OutcomeNoData, Detail: "collection " + params.Collection + " not in dataset"}
	}
	if params.RadiusM <= 0 {
		return Answer{Kind: KindRadiusCollection, Outcome: OutcomeUnknown, Detail: "non-positive radius"}
	}

	best := 0
	bestDist := geo.Distance(p, pois[0].Point)
	for i, poi := range pois[1:] {
		if d := geo.Distance(p, poi.Point); d < bestDist {
			best, bestDist = i+1, d
		}
	}

	out := OutcomeNo
	if bestDist <= params.RadiusM {
		out = OutcomeYes
	}
	return Answer{
		Kind:      KindRadiusCollection,
		Outcome:   out,
		Distances: map[string]float64{pois[best].Name: bestDist},
	}
}

func evalRadiusPoint(p geo.Point, params Params) Answer {
	target, err := ParseTarget(params.Target)
	if err != nil {
		// Callers validate the target before recording anything; an
		// unparseable target this deep still yields a total result.
		return Answer{Kind: KindRadiusPoint, Outcome: OutcomeUnknown, Detail: err.Error()}
	}
	if params.RadiusM <= 0 {
		return Answer{Kind: KindRadiusPoint, Outcome: OutcomeUnknown, Detail: "non-positive radius"}
	}

	d := geo.Distance(p, target)
	out := OutcomeNo
	if d <= params.RadiusM {
		out = OutcomeYes
	}
	return Answer{
		Kind:      KindRadiusPoint,
		Outcome:   out,
		Distances: map[string]float64{"target": d},
	}
}
