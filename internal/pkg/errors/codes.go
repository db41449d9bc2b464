package errors

import "net/http"

var (
	ErrUnsupportedEnvironment = New(
		"UNSUPPORTED_ENVIRONMENT",
		"Geolocation is not supported on this device",
		http.StatusUnprocessableEntity,
	)

	ErrPermissionDenied = New(
		"PERMISSION_DENIED",
		"Location access denied. Please enable location permissions",
		http.StatusForbidden,
	)

	ErrPositionUnavailable = New(
		"POSITION_UNAVAILABLE",
		"Unable to determine your location",
		http.StatusUnprocessableEntity,
	)

	ErrLocationTimeout = New(
		"LOCATION_TIMEOUT",
		"Location request timed out. Please try again",
		http.StatusRequestTimeout,
	)

	ErrNetworkFailure = New(
		"NETWORK_FAILURE",
		"Failed to fetch data from upstream service",
		http.StatusBadGateway,
	)

	ErrNoRouteFound = New(
		"NO_ROUTE_FOUND",
		"No route could be found between the given points",
		http.StatusNotFound,
	)

	ErrNoNearbyFacilities = New(
		"NO_NEARBY_FACILITIES",
		"No facilities found in the selected area",
		http.StatusNotFound,
	)

	ErrQueryFailed = New(
		"QUERY_FAILED",
		"Search failed. Please try again",
		http.StatusInternalServerError,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRadius = New(
		"INVALID_RADIUS",
		"Invalid radius value",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
