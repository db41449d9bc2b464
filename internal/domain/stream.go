package domain

import "github.com/google/uuid"

// Stream names for facility geocoding.
const (
	StreamFacilityGeocode = "stream:facility:geocode"
)

// StreamMessage is a raw message read from a Redis stream. Data holds the
// JSON payload stored under the "data" field.
type StreamMessage struct {
	ID   string
	Data string
}

// FacilityGeocodeEvent asks the worker to resolve coordinates for a pharmacy
// directory row that only has a street address.
type FacilityGeocodeEvent struct {
	PharmacyID uuid.UUID `json:"pharmacy_id"`
	Address    string    `json:"address"`
	City       string    `json:"city,omitempty"`
}
