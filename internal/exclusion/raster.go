package exclusion

import (
	"math"

	"github.com/obvius1/Location-Search-Game/internal/geo"
)

// metersPerDegLat is the length of one degree of latitude.
const metersPerDegLat = geo.EarthRadius * math.Pi / 180

// rasterize tiles the bounds into a grid and emits one cell rectangle
// per cell whose center the exclude predicate claims. The grid aims
// for cellM-sized cells but is capped at maxAxis per dimension so a
// full-area rebuild stays interactive; resolution degrades before
// runtime does.
func (b *Builder) rasterize(exclude func(geo.Point) bool) []geo.Polygon {
	height := b.bounds.MaxLat - b.bounds.MinLat
	width := b.bounds.MaxLng - b.bounds.MinLng
	if height <= 0 || width <= 0 {
		return nil
	}

	midLat := (b.bounds.MinLat + b.bounds.MaxLat) / 2
	latStep := b.cellM / metersPerDegLat
	lngStep := b.cellM / (metersPerDegLat * math.Cos(midLat*math.Pi/180))

	rows := int(math.Ceil(height / latStep))
	cols := int(math.Ceil(width / lngStep))
	if rows > b.maxAxis {
		rows = b.maxAxis
	}
	if cols > b.maxAxis {
		cols = b.maxAxis
	}
	if rows < 1 || cols < 1 {
		return nil
	}
	latStep = height / float64(rows)
	lngStep = width / float64(cols)

	var regions []geo.Polygon
	for r := 0; r < rows; r++ {
		lat := b.bounds.MinLat + float64(r)*latStep
		for c := 0; c < cols; c++ {
			lng := b.bounds.MinLng + float64(c)*lngStep

			center := geo.Point{Lat: lat + latStep/2, Lng: lng + lngStep/2}
			if !exclude(center) {
				continue
			}
			regions = append(regions, geo.Polygon{Outer: geo.Ring{
				{Lat: lat, Lng: lng},
				{Lat: lat, Lng: lng + lngStep},
				{Lat: lat + latStep, Lng: lng + lngStep},
				{Lat: lat + latStep, Lng: lng},
			}})
		}
	}
	return regions
}
