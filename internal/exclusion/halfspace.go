package exclusion

import (
	"math"

	"github.com/obvius1/Location-Search-Game/internal/geo"
)

// linearFunc is a signed linear functional over points: positive on
// the excluded side, zero on the dividing line. Linearity is what lets
// the clip interpolate crossings without branching on line slope —
// there is no division unless the endpoint signs strictly differ, so
// near-vertical and near-horizontal lines need no special casing.
type linearFunc func(geo.Point) float64

// sideFunc divides along the infinite extension of segment a-b.
// excludeLeft selects which side is positive; the sign convention
// matches geo.SideOfLine.
func sideFunc(a, b geo.Point, excludeLeft bool) linearFunc {
	return func(p geo.Point) float64 {
		cross := geo.SideOfLine(p, a, b)
		if excludeLeft {
			return cross
		}
		return -cross
	}
}

// bisectorFunc divides along the perpendicular bisector of
// winner-loser, positive on the loser's side. The longitude axis is
// compressed by cos(lat) before measuring, otherwise the bisector
// drifts off the true equidistant line away from the equator.
func bisectorFunc(winner, loser geo.Point) linearFunc {
	scale := math.Cos((winner.Lat + loser.Lat) / 2 * math.Pi / 180)

	wx, wy := winner.Lng*scale, winner.Lat
	lx, ly := loser.Lng*scale, loser.Lat

	return func(p geo.Point) float64 {
		px, py := p.Lng*scale, p.Lat
		dw := (px-wx)*(px-wx) + (py-wy)*(py-wy)
		dl := (px-lx)*(px-lx) + (py-ly)*(py-ly)
		// Positive when p is nearer the loser. The difference of two
		// squared distances is linear in p.
		return dw - dl
	}
}

// clipHalfSpace clips the bounds rectangle against {f > 0} and returns
// the resulting ring, or nil when the excluded side misses the bounds
// entirely. Walking the rectangle's edges in order keeps the output
// simple (non-self-intersecting) by construction.
func clipHalfSpace(b geo.Bounds, f linearFunc) geo.Ring {
	corners := b.Ring()

	var out geo.Ring
	for i := range corners {
		cur := corners[i]
		next := corners[(i+1)%len(corners)]
		fc, fn := f(cur), f(next)

		if fc > 0 {
			out = append(out, cur)
		}
		if (fc > 0) != (fn > 0) && fc != fn {
			t := fc / (fc - fn)
			out = append(out, geo.Point{
				Lat: cur.Lat + t*(next.Lat-cur.Lat),
				Lng: cur.Lng + t*(next.Lng-cur.Lng),
			})
		}
	}

	if len(out) < 3 {
		return nil
	}
	return out
}
