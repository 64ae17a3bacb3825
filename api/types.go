package api

import "errors"

// errAbandoned is the outcome a deferred close reports when a handler
// unwinds by panic before closing its unit of work inline. Close is
// idempotent, so on the normal paths the deferred call is a no-op.
var errAbandoned = errors.New("request aborted before the unit of work was closed")

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	healthHandler   healthHandler
	authHandler     authHandler
	categoryHandler categoryHandler
	projectHandler  projectHandler
	donationHandler donationHandler
	rewardHandler   rewardHandler
	userHandler     userHandler
	roleHandler     roleHandler
	webHandler      webHandler
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Detail string `json:"detail"`
	Status string `json:"status"`
	Field  string `json:"field,omitempty"`
}
