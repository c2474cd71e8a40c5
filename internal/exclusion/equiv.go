package exclusion

import (
	"sort"
	"strconv"

	"github.com/obvius1/Location-Search-Game/internal/geo"
)

// Equivalent reports whether two region sets describe the same
// geometry, ignoring polygon order, ring rotation, and winding
// direction. Rebuilding from identical records must compare equal
// under this, which is what the idempotent-rebuild and
// edit-round-trip guarantees are checked against.
func Equivalent(a, b []geo.Polygon) bool {
	if len(a) != len(b) {
		return false
	}
	ka := make([]string, len(a))
	kb := make([]string, len(b))
	for i := range a {
		ka[i] = polygonKey(a[i])
		kb[i] = polygonKey(b[i])
	}
	sort.Strings(ka)
	sort.Strings(kb)
	for i := range ka {
		if ka[i] != kb[i] {
			return false
		}
	}
	return true
}

func polygonKey(p geo.Polygon) string {
	keys := make([]string, 0, 1+len(p.Holes))
	keys = append(keys, "o"+ringKey(p.Outer))
	holeKeys := make([]string, 0, len(p.Holes))
	for _, h := range p.Holes {
		holeKeys = append(holeKeys, "h"+ringKey(h))
	}
	sort.Strings(holeKeys)
	keys = append(keys, holeKeys...)

	out := ""
	for _, k := range keys {
		out += k + ";"
	}
	return out
}

// ringKey canonicalizes a ring: rotated to start at its smallest
// vertex, in whichever winding direction compares lower.
func ringKey(r geo.Ring) string {
	if len(r) == 0 {
		return ""
	}

	forward := canonicalRotation(r)
	reversed := make(geo.Ring, len(r))
	for i, p := range r {
		reversed[len(r)-1-i] = p
	}
	backward := canonicalRotation(reversed)

	fk := encodeRing(forward)
	bk := encodeRing(backward)
	if bk < fk {
		return bk
	}
	return fk
}

func canonicalRotation(r geo.Ring) geo.Ring {
	start := 0
	for i := 1; i < len(r); i++ {
		if pointLess(r[i], r[start]) {
			start = i
		}
	}
	out := make(geo.Ring, 0, len(r))
	out = append(out, r[start:]...)
	out = append(out, r[:start]...)
	return out
}

func pointLess(a, b geo.Point) bool {
	if a.Lat != b.Lat {
		return a.Lat < b.Lat
	}
	return a.Lng < b.Lng
}

// encodeRing uses the exact textual form of each coordinate; regions
// built from the same records are bitwise identical, so no tolerance
// is needed.
func encodeRing(r geo.Ring) string {
	buf := make([]byte, 0, len(r)*24)
	for _, p := range r {
		buf = strconv.AppendFloat(buf, p.Lat, 'g', -1, 64)
		buf = append(buf, ',')
		buf = strconv.AppendFloat(buf, p.Lng, 'g', -1, 64)
		buf = append(buf, '|')
	}
	return string(buf)
}
