package server

import (
	"errors"
	"net/http"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/obvius1/Location-Search-Game/internal/exclusion"
	"github.com/obvius1/Location-Search-Game/internal/game"
	"github.com/obvius1/Location-Search-Game/internal/geo"
)

// handleRegions rebuilds the excluded regions from the game's records
// and returns them as a GeoJSON FeatureCollection, (lng, lat) order as
// the format demands. The rebuild is from scratch on every call; the
// response is the single source of truth for the overlay.
func handleRegions(store Store, deck *game.Deck, builder *exclusion.Builder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, s, err := loadSession(r, store, deck)
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "game not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		regions := builder.Build(s.Records())

		fc := geojson.NewFeatureCollection()
		for _, poly := range regions {
			op := make(orb.Polygon, 0, 1+len(poly.Holes))
			op = append(op, toOrbRing(poly.Outer))
			for _, hole := range poly.Holes {
				op = append(op, toOrbRing(hole))
			}
			feature := geojson.NewFeature(op)
			feature.Properties["kind"] = "excluded"
			fc.Append(feature)
		}

		writeJSON(w, http.StatusOK, fc)
	}
}

func toOrbRing(ring geo.Ring) orb.Ring {
	out := make(orb.Ring, 0, len(ring)+1)
	for _, p := range ring {
		out = append(out, orb.Point{p.Lng, p.Lat})
	}
	if len(ring) > 0 {
		out = append(out, orb.Point{ring[0].Lng, ring[0].Lat})
	}
	return out
}
