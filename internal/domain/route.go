package domain

// RouteStep is a single turn-by-turn instruction.
type RouteStep struct {
	Instruction     string       `json:"instruction"`
	DistanceMeters  float64      `json:"distance_meters"`
	DurationSeconds float64      `json:"duration_seconds"`
	Geometry        []Coordinate `json:"geometry,omitempty"`
}

// Route is a computed path between two coordinates. Notice is set when the
// route is a straight-line estimate rather than a real turn-by-turn result.
type Route struct {
	DistanceMeters  float64      `json:"distance_meters"`
	DurationSeconds float64      `json:"duration_seconds"`
	Geometry        []Coordinate `json:"geometry"`
	Steps           []RouteStep  `json:"steps"`
	Notice          string       `json:"notice,omitempty"`
}

// MapsLinks carries the URLs a client should attempt, in order, to hand off
// navigation to an external maps application.
type MapsLinks struct {
	Primary       string `json:"primary"`
	Fallback      string `json:"fallback,omitempty"`
	OpenStreetMap string `json:"openstreetmap,omitempty"`
}
