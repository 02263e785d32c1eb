package view

import (
	"iotdef.xyz/agro-dashboard-service/pkg/format"
	"iotdef.xyz/agro-dashboard-service/pkg/models"
)

// Marker is one point for the map client.
type Marker struct {
	ID     string  `json:"id"`
	Name   string  `json:"nombre"`
	Lat    float64 `json:"lat"`
	Lng    float64 `json:"lng"`
	Color  string  `json:"color"`
	Status string  `json:"estado,omitempty"`
}

// MapView is the initial camera of a map, with Center as [lng, lat].
type MapView struct {
	Center [2]float64 `json:"center"`
	Zoom   int        `json:"zoom"`
}

var (
	DashboardMap = MapView{Center: [2]float64{-86.865825, 21.069046}, Zoom: 12}
	ZonesMap     = MapView{Center: [2]float64{-86.84654829666589, 21.049696912777954}, Zoom: 16}
)

func plotMarker(p models.Plot) (Marker, bool) {
	lat, okLat := p.Latitude.Float()
	lng, okLng := p.Longitude.Float()
	if !okLat || !okLng {
		return Marker{}, false
	}
	return Marker{ID: p.ID, Name: p.Name, Lat: lat, Lng: lng, Color: format.ColorDashboardMarker}, true
}

func zoneMarker(z models.Zone) (Marker, bool) {
	lat, okLat := z.Latitude.Float()
	lng, okLng := z.Longitude.Float()
	if !okLat || !okLng {
		return Marker{}, false
	}
	return Marker{ID: z.ID, Name: z.Name, Lat: lat, Lng: lng, Color: z.Color, Status: z.Status}, true
}

func markers[T any](items []T, toMarker func(T) (Marker, bool)) []Marker {
	out := make([]Marker, 0, len(items))
	for _, it := range items {
		if m, ok := toMarker(it); ok {
			out = append(out, m)
		}
	}
	return out
}
