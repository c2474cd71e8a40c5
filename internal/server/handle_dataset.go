package server

import (
	"net/http"
	"sort"

	"github.com/obvius1/Location-Search-Game/internal/dataset"
	"github.com/obvius1/Location-Search-Game/internal/geo"
)

// POIView is one named point in the dataset summary.
type POIView struct {
	Key   string    `json:"key,omitempty"`
	Name  string    `json:"name"`
	Point geo.Point `json:"point"`
}

// DatasetResponse summarizes the loaded dataset for the map layer:
// names of the available geometry and the full POI listing. Raw ring
// coordinates are not included; the client only needs them via the
// regions endpoint.
type DatasetResponse struct {
	Name          string               `json:"name"`
	Center        geo.Point            `json:"center"`
	RadiusM       float64              `json:"radiusM"`
	Rings         []string             `json:"rings"`
	Separators    []string             `json:"separators"`
	Buffers       []string             `json:"buffers"`
	POIs          []POIView            `json:"pois"`
	Collections   map[string][]POIView `json:"collections"`
	Neighborhoods []string             `json:"neighborhoods"`
}

func handleDataset(ds *dataset.Set) http.HandlerFunc {
	resp := DatasetResponse{
		Name:        ds.Name,
		Center:      ds.Center,
		RadiusM:     ds.RadiusM,
		Rings:       []string{},
		Separators:  []string{},
		Buffers:     []string{},
		POIs:        []POIView{},
		Collections: map[string][]POIView{},
	}
	for _, r := range ds.Rings {
		resp.Rings = append(resp.Rings, r.Name)
	}
	for _, s := range ds.Separators {
		resp.Separators = append(resp.Separators, s.Name)
	}
	for _, b := range ds.Buffers {
		resp.Buffers = append(resp.Buffers, b.Name)
	}
	for key, p := range ds.POIs {
		resp.POIs = append(resp.POIs, POIView{Key: key, Name: p.Name, Point: p.Point})
	}
	sort.Slice(resp.POIs, func(i, j int) bool { return resp.POIs[i].Key < resp.POIs[j].Key })
	for key, pois := range ds.Collections {
		views := make([]POIView, 0, len(pois))
		for _, p := range pois {
			views = append(views, POIView{Name: p.Name, Point: p.Point})
		}
		resp.Collections[key] = views
	}
	for _, n := range ds.Neighborhoods {
		resp.Neighborhoods = append(resp.Neighborhoods, n.Name)
	}

	// The dataset is immutable once loaded; the response is built once.
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, resp)
	}
}
