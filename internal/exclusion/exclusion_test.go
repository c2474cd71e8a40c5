package exclusion

import (
	"testing"

	"github.com/obvius1/Location-Search-Game/internal/dataset"
	"github.com/obvius1/Location-Search-Game/internal/geo"
	"github.com/obvius1/Location-Search-Game/internal/predicate"
)

func planarSet() *dataset.Set {
	square := geo.Ring{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 10},
		{Lat: 10, Lng: 10},
		{Lat: 10, Lng: 0},
	}
	return &dataset.Set{
		Name:    "planar",
		Center:  geo.Point{Lat: 5, Lng: 5},
		RadiusM: 3000000,
		Rings: []dataset.NamedPolygon{
			{Name: "square", Polygon: geo.Polygon{Outer: square}},
		},
		Separators: []dataset.NamedPolyline{
			{Name: "river", Line: geo.Polyline{{Lat: 0, Lng: -20}, {Lat: 0, Lng: 20}}},
		},
		POIs: map[string]dataset.POI{
			"a":   {Name: "A", Point: geo.Point{Lat: 0, Lng: 0}},
			"b":   {Name: "B", Point: geo.Point{Lat: 10, Lng: 0}},
			"ref": {Name: "Ref", Point: geo.Point{Lat: 5, Lng: 5}},
		},
		Collections: map[string][]dataset.POI{
			"spots": {
				{Name: "South", Point: geo.Point{Lat: 2, Lng: 5}},
				{Name: "North", Point: geo.Point{Lat: 8, Lng: 5}},
			},
			"cluster": {
				{Name: "Twin1", Point: geo.Point{Lat: 5, Lng: 4.9}},
				{Name: "Twin2", Point: geo.Point{Lat: 5, Lng: 5.1}},
			},
		},
		Neighborhoods: []dataset.Neighborhood{
			{ID: 1, Name: "West", Polygon: geo.Polygon{Outer: geo.Ring{
				{Lat: 0, Lng: 0}, {Lat: 0, Lng: 5}, {Lat: 10, Lng: 5}, {Lat: 10, Lng: 0},
			}}},
			{ID: 2, Name: "East", Polygon: geo.Polygon{Outer: geo.Ring{
				{Lat: 0, Lng: 5}, {Lat: 0, Lng: 10}, {Lat: 10, Lng: 10}, {Lat: 10, Lng: 5},
			}}},
		},
	}
}

func excluded(regions []geo.Polygon, p geo.Point) bool {
	for _, poly := range regions {
		if poly.Contains(p) {
			return true
		}
	}
	return false
}

func TestRingComplement(t *testing.T) {
	b := NewBuilder(planarSet())

	inside := b.Build([]Record{{
		CardID: "c1", Kind: predicate.KindRing,
		Outcome: predicate.OutcomeInside,
		Params:  predicate.Params{Name: "square"},
	}})
	if excluded(inside, geo.Point{Lat: 5, Lng: 5}) {
		t.Error("answer inside: (5,5) must not be excluded")
	}
	if !excluded(inside, geo.Point{Lat: 15, Lng: 15}) {
		t.Error("answer inside: (15,15) must be excluded")
	}

	outside := b.Build([]Record{{
		CardID: "c1", Kind: predicate.KindRing,
		Outcome: predicate.OutcomeOutside,
		Params:  predicate.Params{Name: "square"},
	}})
	if !excluded(outside, geo.Point{Lat: 5, Lng: 5}) {
		t.Error("answer outside: (5,5) must be excluded")
	}
	if excluded(outside, geo.Point{Lat: 15, Lng: 15}) {
		t.Error("answer outside: (15,15) must not be excluded")
	}
}

// The true side and the excluded side must be exact geometric
// opposites: sample points on both sides of the separator.
func TestLineSideComplement(t *testing.T) {
	ds := planarSet()
	b := NewBuilder(ds)

	north := []geo.Point{{Lat: 2, Lng: 0}, {Lat: 8, Lng: 5}, {Lat: 1, Lng: -10}}
	south := []geo.Point{{Lat: -2, Lng: 0}, {Lat: -8, Lng: 5}, {Lat: -1, Lng: -10}}

	// Hider is left (north) of the west-east river.
	regions := b.Build([]Record{{
		CardID: "c1", Kind: predicate.KindLineSide,
		Outcome: predicate.OutcomeLeft,
		Params:  predicate.Params{Name: "river", Segment: 0},
	}})

	for _, p := range north {
		if excluded(regions, p) {
			t.Errorf("north point %+v wrongly excluded", p)
		}
	}
	for _, p := range south {
		if !excluded(regions, p) {
			t.Errorf("south point %+v should be excluded", p)
		}
	}
}

func TestBisectorSymmetry(t *testing.T) {
	ds := planarSet()
	b := NewBuilder(ds)
	params := predicate.Params{PairA: "a", PairB: "b"}

	nearA := b.Build([]Record{{CardID: "c1", Kind: predicate.KindNearestOfTwo, Outcome: "a", Params: params}})
	nearB := b.Build([]Record{{CardID: "c1", Kind: predicate.KindNearestOfTwo, Outcome: "b", Params: params}})

	aPt := ds.POIs["a"].Point
	bPt := ds.POIs["b"].Point

	// Each POI survives on its own win side and is excluded on the
	// other's.
	if excluded(nearA, aPt) {
		t.Error("near-a: POI a must not be excluded")
	}
	if !excluded(nearA, bPt) {
		t.Error("near-a: POI b must be excluded")
	}
	if excluded(nearB, bPt) {
		t.Error("near-b: POI b must not be excluded")
	}
	if !excluded(nearB, aPt) {
		t.Error("near-b: POI a must be excluded")
	}

	// Points strictly closer to one POI classify accordingly.
	if excluded(nearA, geo.Point{Lat: 1, Lng: 0}) {
		t.Error("(1,0) is closer to a; must not be excluded by near-a")
	}
	if !excluded(nearA, geo.Point{Lat: 9, Lng: 0}) {
		t.Error("(9,0) is closer to b; must be excluded by near-a")
	}
}

func TestMeridianComplement(t *testing.T) {
	b := NewBuilder(planarSet())

	east := b.Build([]Record{{
		CardID: "c1", Kind: predicate.KindMeridian,
		Outcome: predicate.OutcomeEast,
		Params:  predicate.Params{Name: "ref"},
	}})
	if !excluded(east, geo.Point{Lat: 5, Lng: 3}) {
		t.Error("answer east: west point must be excluded")
	}
	if excluded(east, geo.Point{Lat: 5, Lng: 7}) {
		t.Error("answer east: east point must not be excluded")
	}

	west := b.Build([]Record{{
		CardID: "c1", Kind: predicate.KindMeridian,
		Outcome: predicate.OutcomeWest,
		Params:  predicate.Params{Name: "ref"},
	}})
	if !excluded(west, geo.Point{Lat: 5, Lng: 7}) {
		t.Error("answer west: east point must be excluded")
	}
	if excluded(west, geo.Point{Lat: 5, Lng: 3}) {
		t.Error("answer west: west point must not be excluded")
	}
}

func TestNeighborhoodComplement(t *testing.T) {
	b := NewBuilder(planarSet())

	regions := b.Build([]Record{{
		CardID: "c1", Kind: predicate.KindNeighborhood,
		Outcome: "West",
	}})
	if excluded(regions, geo.Point{Lat: 5, Lng: 2}) {
		t.Error("point in West must not be excluded")
	}
	if !excluded(regions, geo.Point{Lat: 5, Lng: 8}) {
		t.Error("point in East must be excluded")
	}
}

func TestNearestOfManyRaster(t *testing.T) {
	ds := planarSet()
	b := NewBuilder(ds)

	// Hider is nearest the South spot: the North half is excluded.
	regions := b.Build([]Record{{
		CardID: "c1", Kind: predicate.KindNearestOfMany,
		Outcome: "South",
		Params:  predicate.Params{Collection: "spots"},
	}})
	if len(regions) == 0 {
		t.Fatal("expected raster cells")
	}
	if excluded(regions, geo.Point{Lat: 2, Lng: 5}) {
		t.Error("the South spot itself must not be excluded")
	}
	if !excluded(regions, geo.Point{Lat: 8, Lng: 5}) {
		t.Error("the North spot must be excluded")
	}
}

func TestRadiusCollectionDisjointCircles(t *testing.T) {
	ds := planarSet()
	b := NewBuilder(ds)

	// "Not within 100km of any spot": each circle excluded directly.
	regions := b.Build([]Record{{
		CardID: "c1", Kind: predicate.KindRadiusCollection,
		Outcome: predicate.OutcomeNo,
		Params:  predicate.Params{Collection: "spots", RadiusM: 100000},
	}})
	if len(regions) != 2 {
		t.Fatalf("expected 2 circle polygons, got %d", len(regions))
	}
	if !excluded(regions, geo.Point{Lat: 2, Lng: 5}) {
		t.Error("circle center must be excluded")
	}
	if excluded(regions, geo.Point{Lat: 5, Lng: 5}) {
		t.Error("midpoint between distant circles must not be excluded")
	}
}

func TestRadiusCollectionComplementOfUnion(t *testing.T) {
	ds := planarSet()
	b := NewBuilder(ds)

	// "Within 100km of some spot": everything else is excluded, via
	// polygon-with-holes since the circles are disjoint and in bounds.
	regions := b.Build([]Record{{
		CardID: "c1", Kind: predicate.KindRadiusCollection,
		Outcome: predicate.OutcomeYes,
		Params:  predicate.Params{Collection: "spots", RadiusM: 100000},
	}})
	if len(regions) != 1 {
		t.Fatalf("expected one polygon with holes, got %d", len(regions))
	}
	if len(regions[0].Holes) != 2 {
		t.Fatalf("expected 2 holes, got %d", len(regions[0].Holes))
	}
	if excluded(regions, geo.Point{Lat: 2, Lng: 5}) {
		t.Error("inside a circle must not be excluded")
	}
	if !excluded(regions, geo.Point{Lat: 5, Lng: 5}) {
		t.Error("outside all circles must be excluded")
	}
}

func TestRadiusCollectionOverlapFallsBackToRaster(t *testing.T) {
	ds := planarSet()
	b := NewBuilder(ds)

	// The cluster circles overlap at 50km radius (~22km apart), so the
	// union complement has no clean closed form.
	regions := b.Build([]Record{{
		CardID: "c1", Kind: predicate.KindRadiusCollection,
		Outcome: predicate.OutcomeYes,
		Params:  predicate.Params{Collection: "cluster", RadiusM: 50000},
	}})
	if len(regions) < 2 {
		t.Fatalf("expected raster cells, got %d regions", len(regions))
	}
	if excluded(regions, geo.Point{Lat: 5, Lng: 5}) {
		t.Error("point inside the overlap must not be excluded")
	}
	if !excluded(regions, geo.Point{Lat: 25, Lng: 25}) {
		t.Error("point far outside the union must be excluded")
	}
}

func TestRadiusPoint(t *testing.T) {
	b := NewBuilder(planarSet())

	no := b.Build([]Record{{
		CardID: "c1", Kind: predicate.KindRadiusPoint,
		Outcome: predicate.OutcomeNo,
		Params:  predicate.Params{Target: "5,5", RadiusM: 100000},
	}})
	if !excluded(no, geo.Point{Lat: 5, Lng: 5}) {
		t.Error("answer no: the target circle must be excluded")
	}
	if excluded(no, geo.Point{Lat: 9, Lng: 9}) {
		t.Error("answer no: outside the circle must not be excluded")
	}

	yes := b.Build([]Record{{
		CardID: "c1", Kind: predicate.KindRadiusPoint,
		Outcome: predicate.OutcomeYes,
		Params:  predicate.Params{Target: "5,5", RadiusM: 100000},
	}})
	if excluded(yes, geo.Point{Lat: 5, Lng: 5}) {
		t.Error("answer yes: inside the circle must not be excluded")
	}
	if !excluded(yes, geo.Point{Lat: 9, Lng: 9}) {
		t.Error("answer yes: outside the circle must be excluded")
	}
}

// The raster classifies by cell center, not cell edge: with a radius
// that covers the edge-cell centers but not the corner-cell centers of
// a 3x3 grid, exactly the four corner cells are excluded.
func TestRasterClassifiesByCellCenter(t *testing.T) {
	ds := planarSet()
	b := &Builder{
		ds:           ds,
		bounds:       geo.Bounds{MinLat: -1.5, MinLng: -1.5, MaxLat: 1.5, MaxLng: 1.5},
		cellM:        metersPerDegLat, // one-degree cells -> 3x3 grid
		maxAxis:      3,
		circlePoints: 64,
	}

	origin := geo.Point{Lat: 0, Lng: 0}
	radius := 1.2 * metersPerDegLat // covers 1 degree, not sqrt(2) degrees

	cells := b.rasterize(func(p geo.Point) bool {
		return geo.Distance(p, origin) > radius
	})

	if len(cells) != 4 {
		t.Fatalf("expected the 4 corner cells, got %d", len(cells))
	}
	for _, cell := range cells {
		center := cell.Outer.Centroid()
		if geo.Distance(center, origin) <= radius {
			t.Errorf("cell center %+v is within radius but was excluded", center)
		}
	}
}

func TestSkipsUnusableRecords(t *testing.T) {
	b := NewBuilder(planarSet())

	regions := b.Build([]Record{
		{CardID: "c1", Kind: predicate.KindRing, Outcome: predicate.OutcomeNoData, Params: predicate.Params{Name: "square"}},
		{CardID: "c2", Kind: predicate.KindRing, Outcome: predicate.OutcomeInside, Params: predicate.Params{Name: "ghost-ring"}},
		{CardID: "c3", Kind: predicate.KindRadiusCollection, Outcome: predicate.OutcomeYes, Params: predicate.Params{Collection: "ghosts", RadiusM: 1000}},
		{CardID: "c4", Kind: predicate.KindRadiusPoint, Outcome: predicate.OutcomeYes, Params: predicate.Params{Target: "garbage", RadiusM: 1000}},
	})
	if len(regions) != 0 {
		t.Fatalf("unusable records must contribute zero area, got %d regions", len(regions))
	}
}

func TestIdempotentRebuild(t *testing.T) {
	b := NewBuilder(planarSet())
	records := []Record{
		{CardID: "c1", Kind: predicate.KindRing, Outcome: predicate.OutcomeInside, Params: predicate.Params{Name: "square"}},
		{CardID: "c2", Kind: predicate.KindNearestOfTwo, Outcome: "a", Params: predicate.Params{PairA: "a", PairB: "b"}},
		{CardID: "c3", Kind: predicate.KindNearestOfMany, Outcome: "South", Params: predicate.Params{Collection: "spots"}},
	}

	first := b.Build(records)
	second := b.Build(records)
	if !Equivalent(first, second) {
		t.Error("rebuilding from unchanged records must be equivalent")
	}
}

func TestEditRoundTrip(t *testing.T) {
	b := NewBuilder(planarSet())

	edited := []Record{
		{CardID: "c1", Kind: predicate.KindRing, Outcome: predicate.OutcomeOutside, Params: predicate.Params{Name: "square"}},
	}

	// Building after replacing c1's record equals building from
	// scratch with only the final answer: no residue.
	afterEdit := b.Build(edited)
	fromScratch := b.Build([]Record{
		{CardID: "c1", Kind: predicate.KindRing, Outcome: predicate.OutcomeOutside, Params: predicate.Params{Name: "square"}},
	})
	if !Equivalent(afterEdit, fromScratch) {
		t.Error("edited rebuild must equal from-scratch rebuild")
	}
}

func TestEquivalent(t *testing.T) {
	sq := geo.Polygon{Outer: geo.Ring{
		{Lat: 0, Lng: 0}, {Lat: 0, Lng: 1}, {Lat: 1, Lng: 1}, {Lat: 1, Lng: 0},
	}}
	rotated := geo.Polygon{Outer: geo.Ring{
		{Lat: 1, Lng: 1}, {Lat: 1, Lng: 0}, {Lat: 0, Lng: 0}, {Lat: 0, Lng: 1},
	}}
	reversed := geo.Polygon{Outer: geo.Ring{
		{Lat: 1, Lng: 0}, {Lat: 1, Lng: 1}, {Lat: 0, Lng: 1}, {Lat: 0, Lng: 0},
	}}
	other := geo.Polygon{Outer: geo.Ring{
		{Lat: 0, Lng: 0}, {Lat: 0, Lng: 2}, {Lat: 2, Lng: 2}, {Lat: 2, Lng: 0},
	}}

	if !Equivalent([]geo.Polygon{sq}, []geo.Polygon{rotated}) {
		t.Error("rotation should not matter")
	}
	if !Equivalent([]geo.Polygon{sq}, []geo.Polygon{reversed}) {
		t.Error("winding direction should not matter")
	}
	if !Equivalent([]geo.Polygon{sq, other}, []geo.Polygon{other, sq}) {
		t.Error("polygon order should not matter")
	}
	if Equivalent([]geo.Polygon{sq}, []geo.Polygon{other}) {
		t.Error("different geometry must not compare equal")
	}
	if Equivalent([]geo.Polygon{sq}, []geo.Polygon{sq, sq}) {
		t.Error("different counts must not compare equal")
	}
}
