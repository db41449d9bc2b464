package domain

import (
	"fmt"
	"strings"
	"time"
)

// PermissionState is the tri-state geolocation permission flag.
type PermissionState string

const (
	PermissionGranted PermissionState = "granted"
	PermissionDenied  PermissionState = "denied"
	PermissionUnknown PermissionState = "unknown"
)

// Address is the structured result of a reverse-geocode lookup.
type Address struct {
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Country     string `json:"country,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
}

// FormattedLabel builds a short human-readable place description:
// "City, State" when both are known, the city alone, or the first two
// comma-separated segments of the free-text display name. Returns an empty
// string when nothing usable is present; callers fall back to raw coordinates.
func (a Address) FormattedLabel() string {
	if a.City != "" && a.State != "" {
		return fmt.Sprintf("%s, %s", a.City, a.State)
	}
	if a.City != "" {
		return a.City
	}
	if a.DisplayName != "" {
		parts := strings.Split(a.DisplayName, ",")
		if len(parts) >= 2 {
			return strings.TrimSpace(parts[0]) + ", " + strings.TrimSpace(parts[1])
		}
		return strings.TrimSpace(parts[0])
	}
	return ""
}

// Position is a device position fix together with the time it was acquired.
// A zero ReportedAt means the client did not say when the fix was taken and
// it is treated as fresh.
type Position struct {
	Coords     Coordinate `json:"coords"`
	ReportedAt time.Time  `json:"reported_at,omitempty"`
}

// ResolvedLocation is a snapshot of the user's resolved position. Nil Coords
// means resolution failed or has not happened yet.
type ResolvedLocation struct {
	Coords           *Coordinate     `json:"coords,omitempty"`
	FormattedAddress string          `json:"formatted_address,omitempty"`
	City             string          `json:"city,omitempty"`
	State            string          `json:"state,omitempty"`
	Country          string          `json:"country,omitempty"`
	Permission       PermissionState `json:"permission"`
}
