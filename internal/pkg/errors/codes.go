package errors

import "net/http"

var (
	// ErrUpstreamUnavailable marks a routing/geocoding/advisory provider
	// failure. Callers recover with a fallback, so this never reaches
	// an HTTP response on the route path.
	ErrUpstreamUnavailable = New(
		"UPSTREAM_UNAVAILABLE",
		"External provider unavailable",
		http.StatusBadGateway,
	)

	// ErrRateLimited is the only retryable provider error.
	ErrRateLimited = New(
		"RATE_LIMITED",
		"External provider rate limit exceeded",
		http.StatusTooManyRequests,
	)

	ErrEmptyRouteSet = New(
		"EMPTY_ROUTE_SET",
		"No candidate routes to select from",
		http.StatusNotFound,
	)

	ErrInvalidSimulationStart = New(
		"INVALID_SIMULATION_START",
		"Simulation requires a route with at least two points and a non-empty alert list",
		http.StatusBadRequest,
	)

	ErrSessionNotFound = New(
		"SESSION_NOT_FOUND",
		"Navigation session not found",
		http.StatusNotFound,
	)

	ErrVehicleNotFound = New(
		"VEHICLE_NOT_FOUND",
		"Vehicle profile not found",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
