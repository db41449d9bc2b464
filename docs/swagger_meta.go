// Package docs Medic Geo Service API.
//
// Geo and inventory backend for a patient-facing healthcare application.
// Resolves user locations, finds nearby pharmacies and hospitals from public
// map data, computes routes with a straight-line fallback, and searches
// medicine availability across the pharmacy network.
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
