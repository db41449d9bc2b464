package domain

// FacilityCategory selects the kind of facility a nearby search targets.
type FacilityCategory string

const (
	CategoryPharmacy FacilityCategory = "pharmacy"
	CategoryHospital FacilityCategory = "hospital"
)

// PointOfInterest is a normalized facility record from the POI service.
// Instances are recomputed per search and never persisted.
type PointOfInterest struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Address      string   `json:"address"`
	Lat          float64  `json:"lat"`
	Lon          float64  `json:"lon"`
	DistanceKm   float64  `json:"distance_km"`
	Phone        *string  `json:"phone,omitempty"`
	Website      *string  `json:"website,omitempty"`
	OpeningHours *string  `json:"opening_hours,omitempty"`
	Emergency    *bool    `json:"emergency,omitempty"`
	Specialties  []string `json:"specialties,omitempty"`
}
