package dto

import "time"

// ResolveLocationRequest carries the outcome of the client's geolocation
// attempt: either coordinates (optionally with the time the fix was taken),
// or the error kind its geolocation API reported.
type ResolveLocationRequest struct {
	Lat        *float64   `json:"lat" validate:"omitempty,min=-90,max=90"`
	Lon        *float64   `json:"lon" validate:"omitempty,min=-180,max=180"`
	ReportedAt *time.Time `json:"reported_at" validate:"omitempty"`
	ErrorKind  string     `json:"error_kind" validate:"omitempty,oneof=permission_denied position_unavailable timeout unsupported"`
}

// ReverseGeocodeRequest asks for a structured address for a coordinate pair.
type ReverseGeocodeRequest struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lon float64 `json:"lon" validate:"min=-180,max=180"`
}

// NearbySearchRequest searches facilities around a point.
type NearbySearchRequest struct {
	Lat      float64 `json:"lat" validate:"min=-90,max=90"`
	Lon      float64 `json:"lon" validate:"min=-180,max=180"`
	RadiusKm float64 `json:"radius_km" validate:"required,min=0.1,max=100"`
}

// RouteRequest asks for a route between two points.
type RouteRequest struct {
	FromLat float64 `json:"from_lat" validate:"min=-90,max=90"`
	FromLon float64 `json:"from_lon" validate:"min=-180,max=180"`
	ToLat   float64 `json:"to_lat" validate:"min=-90,max=90"`
	ToLon   float64 `json:"to_lon" validate:"min=-180,max=180"`
}

// InventorySearchRequest filters the medicine inventory. Lat/Lon nil skips
// the distance pass entirely.
type InventorySearchRequest struct {
	Text          string   `json:"text" validate:"omitempty,max=200"`
	Category      string   `json:"category" validate:"omitempty,max=100"`
	Sort          string   `json:"sort" validate:"omitempty,oneof=price_asc price_desc rating delivery_time distance"`
	Lat           *float64 `json:"lat" validate:"omitempty,min=-90,max=90"`
	Lon           *float64 `json:"lon" validate:"omitempty,min=-180,max=180"`
	MaxDistanceKm float64  `json:"max_distance_km" validate:"omitempty,min=0.1,max=100"`
}
