package dto

import "github.com/asmit-inzanist/medic-all-sub000/internal/domain"

// NearbyResponse lists facilities ordered by distance.
type NearbyResponse struct {
	Facilities []domain.PointOfInterest `json:"facilities"`
	Total      int                      `json:"total"`
}

// RouteResponse wraps a computed route. Estimated is true when the route is a
// straight-line fallback; Notice then carries the advisory message.
type RouteResponse struct {
	Route     *domain.Route `json:"route"`
	Estimated bool          `json:"estimated"`
	Notice    string        `json:"notice,omitempty"`
}

// MapsLinksResponse carries external maps hand-off URLs for a platform.
type MapsLinksResponse struct {
	Platform domain.Platform  `json:"platform"`
	Links    domain.MapsLinks `json:"links"`
}

// InventorySearchResponse lists medicine offers.
type InventorySearchResponse struct {
	Listings []domain.InventoryListing `json:"listings"`
	Total    int                       `json:"total"`
}
