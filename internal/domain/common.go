package domain

// Coordinate is an immutable lat/lon pair.
type Coordinate struct {
	Lat float64 `json:"lat" db:"lat"`
	Lon float64 `json:"lon" db:"lon"`
}

// Platform identifies the client platform for external maps hand-off.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformWeb     Platform = "web"
)

// ParsePlatform maps a client-reported platform string onto the known set,
// defaulting to web.
func ParsePlatform(s string) Platform {
	switch Platform(s) {
	case PlatformIOS:
		return PlatformIOS
	case PlatformAndroid:
		return PlatformAndroid
	default:
		return PlatformWeb
	}
}
