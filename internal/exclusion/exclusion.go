// Package exclusion turns accumulated question answers into the map
// regions the hider cannot be in. Regions are always rebuilt from the
// full record set into a fresh slice — never patched incrementally —
// so the rendered overlay is a pure function of the records.
package exclusion

import (
	"github.com/obvius1/Location-Search-Game/internal/dataset"
	"github.com/obvius1/Location-Search-Game/internal/geo"
	"github.com/obvius1/Location-Search-Game/internal/predicate"
)

// Record is one answered question, with everything needed to
// reconstruct its geometry. At most one record exists per open card;
// editing an answer replaces the record atomically.
type Record struct {
	CardID  string           `json:"cardId"`
	Kind    predicate.Kind   `json:"kind"`
	Outcome string           `json:"outcome"`
	Params  predicate.Params `json:"params"`
}

// Builder constructs excluded regions against one dataset. The bounds
// generously cover the play zone so no polygon ever has to extend to
// infinity; the raster fallback is capped so a full rebuild stays
// within an interactive budget.
type Builder struct {
	ds     *dataset.Set
	bounds geo.Bounds

	cellM   float64
	maxAxis int

	circlePoints int
}

// boundsMargin is the padding around the play zone in degrees, roughly
// two kilometers.
const boundsMargin = 0.02

// NewBuilder returns a builder with a 100 m raster cell target, capped
// at 160 cells per axis.
func NewBuilder(ds *dataset.Set) *Builder {
	return &Builder{
		ds:           ds,
		bounds:       ds.Bounds(boundsMargin),
		cellM:        100,
		maxAxis:      160,
		circlePoints: 64,
	}
}

// Bounds returns the clamping box regions are built against.
func (b *Builder) Bounds() geo.Bounds { return b.bounds }

// Build converts the full record set into excluded polygons. Records
// with undetermined outcomes or missing dataset geometry contribute
// zero area; the rebuild never fails.
func (b *Builder) Build(records []Record) []geo.Polygon {
	regions := make([]geo.Polygon, 0, len(records))
	for _, rec := range records {
		regions = append(regions, b.buildOne(rec)...)
	}
	return regions
}

func (b *Builder) buildOne(rec Record) []geo.Polygon {
	if rec.Outcome == predicate.OutcomeUnknown || rec.Outcome == predicate.OutcomeNoData {
		return nil
	}

	switch rec.Kind {
	case predicate.KindRing:
		shape, ok := b.ds.Ring(rec.Params.Name)
		if !ok || len(shape.Polygon.Outer) < 3 {
			return nil
		}
		return b.containment(shape.Polygon, rec.Outcome)

	case predicate.KindBuffer:
		shape, ok := b.ds.Buffer(rec.Params.Name)
		if !ok || len(shape.Polygon.Outer) < 3 {
			return nil
		}
		return b.containment(shape.Polygon, rec.Outcome)

	case predicate.KindLineSide:
		return b.lineSide(rec)

	case predicate.KindMeridian:
		return b.meridian(rec)

	case predicate.KindNearestOfTwo:
		return b.bisector(rec)

	case predicate.KindNearestOfMany, predicate.KindFurthestOfMany:
		// Voronoi-like shapes have no simple closed form; rasterize
		// against the evaluator itself.
		return b.rasterize(b.mismatches(rec))

	case predicate.KindNeighborhood:
		return b.neighborhood(rec)

	case predicate.KindRadiusCollection:
		return b.radiusCollection(rec)

	case predicate.KindRadiusPoint:
		return b.radiusPoint(rec)
	}
	return nil
}

// containment excludes the complement of a containment answer: for
// "inside X" everything outside X (the bounds with X as a hole, plus
// X's own holes), for "outside X" the shape itself.
func (b *Builder) containment(shape geo.Polygon, outcome string) []geo.Polygon {
	switch outcome {
	case predicate.OutcomeInside:
		regions := []geo.Polygon{{
			Outer: b.bounds.Ring(),
			Holes: []geo.Ring{shape.Outer},
		}}
		for _, hole := range shape.Holes {
			regions = append(regions, geo.Polygon{Outer: hole})
		}
		return regions
	case predicate.OutcomeOutside:
		return []geo.Polygon{shape}
	}
	return nil
}

func (b *Builder) lineSide(rec Record) []geo.Polygon {
	sep, ok := b.ds.Separator(rec.Params.Name)
	if !ok || len(sep.Line) < 2 {
		return nil
	}

	seg := rec.Params.Segment
	if seg < 0 || seg >= len(sep.Line)-1 {
		seg = 0
	}
	a, c := sep.Line[seg], sep.Line[seg+1]

	// The hider is on the answered side; exclude the other one.
	var f linearFunc
	switch rec.Outcome {
	case predicate.OutcomeLeft:
		f = sideFunc(a, c, false)
	case predicate.OutcomeRight:
		f = sideFunc(a, c, true)
	default:
		return nil
	}

	ring := clipHalfSpace(b.bounds, f)
	if ring == nil {
		return nil
	}
	return []geo.Polygon{{Outer: ring}}
}

func (b *Builder) meridian(rec Record) []geo.Polygon {
	ref, ok := b.ds.POI(rec.Params.Name)
	if !ok {
		return nil
	}

	// Exclude the rectangle on the far side of the meridian.
	half := b.bounds
	switch rec.Outcome {
	case predicate.OutcomeEast:
		half.MaxLng = ref.Point.Lng
	case predicate.OutcomeWest:
		half.MinLng = ref.Point.Lng
	default:
		return nil
	}
	if half.MinLng >= half.MaxLng {
		return nil
	}
	return []geo.Polygon{{Outer: half.Ring()}}
}

// bisector excludes the half of the play area across the perpendicular
// bisector from the winning POI. One construction serves both
// symmetric answers.
func (b *Builder) bisector(rec Record) []geo.Polygon {
	a, okA := b.ds.POI(rec.Params.PairA)
	c, okB := b.ds.POI(rec.Params.PairB)
	if !okA || !okB {
		return nil
	}

	var winner, loser geo.Point
	switch rec.Outcome {
	case rec.Params.PairA:
		winner, loser = a.Point, c.Point
	case rec.Params.PairB:
		winner, loser = c.Point, a.Point
	default:
		return nil
	}

	ring := clipHalfSpace(b.bounds, bisectorFunc(winner, loser))
	if ring == nil {
		return nil
	}
	return []geo.Polygon{{Outer: ring}}
}

// neighborhood excludes everything outside the named neighborhood.
// The record outcome is the neighborhood's name.
func (b *Builder) neighborhood(rec Record) []geo.Polygon {
	for _, n := range b.ds.Neighborhoods {
		if n.Name == rec.Outcome && len(n.Polygon.Outer) >= 3 {
			return b.containment(n.Polygon, predicate.OutcomeInside)
		}
	}
	return nil
}

func (b *Builder) radiusCollection(rec Record) []geo.Polygon {
	pois, ok := b.ds.Collection(rec.Params.Collection)
	if !ok || rec.Params.RadiusM <= 0 {
		return nil
	}
	centers := make([]geo.Point, 0, len(pois))
	for _, p := range pois {
		centers = append(centers, p.Point)
	}
	return b.circles(rec, centers, rec.Params.RadiusM)
}

func (b *Builder) radiusPoint(rec Record) []geo.Polygon {
	target, err := predicate.ParseTarget(rec.Params.Target)
	if err != nil || rec.Params.RadiusM <= 0 {
		return nil
	}
	return b.circles(rec, []geo.Point{target}, rec.Params.RadiusM)
}

// circles handles both proximity kinds. "no" excludes every circle;
// "yes" excludes the complement of their union. The closed-form
// polygon paths are only taken when the circles are pairwise disjoint
// and sit cleanly inside the bounds; any overlap falls back to the
// raster.
func (b *Builder) circles(rec Record, centers []geo.Point, radiusM float64) []geo.Polygon {
	switch rec.Outcome {
	case predicate.OutcomeNo:
		if b.circlesDisjoint(centers, radiusM) {
			regions := make([]geo.Polygon, 0, len(centers))
			for _, c := range centers {
				regions = append(regions, geo.Polygon{Outer: geo.CircleRing(c, radiusM, b.circlePoints)})
			}
			return regions
		}
	case predicate.OutcomeYes:
		if b.circlesDisjoint(centers, radiusM) && b.circlesWithinBounds(centers, radiusM) {
			holes := make([]geo.Ring, 0, len(centers))
			for _, c := range centers {
				holes = append(holes, geo.CircleRing(c, radiusM, b.circlePoints))
			}
			return []geo.Polygon{{Outer: b.bounds.Ring(), Holes: holes}}
		}
	default:
		return nil
	}
	return b.rasterize(b.mismatches(rec))
}

func (b *Builder) circlesDisjoint(centers []geo.Point, radiusM float64) bool {
	for i := range centers {
		for j := i + 1; j < len(centers); j++ {
			if geo.Distance(centers[i], centers[j]) <= 2*radiusM {
				return false
			}
		}
	}
	return true
}

func (b *Builder) circlesWithinBounds(centers []geo.Point, radiusM float64) bool {
	for _, c := range centers {
		for _, p := range geo.CircleRing(c, radiusM, 16) {
			if !b.bounds.Contains(p) {
				return false
			}
		}
	}
	return true
}

// mismatches is the generic raster predicate: a cell is excluded when
// evaluating the question at its center disagrees with the recorded
// answer.
func (b *Builder) mismatches(rec Record) func(geo.Point) bool {
	return func(p geo.Point) bool {
		ans := predicate.Evaluate(p, b.ds, rec.Kind, rec.Params)
		if ans.Undetermined() {
			return false
		}
		return ans.Outcome != rec.Outcome
	}
}
