package api

import (
	"time"

	"github.com/fundflow/backend/database"
	"github.com/fundflow/backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db *database.Factory, auth services.AuthService, startupTime time.Time) *routeHandlers {
	return &routeHandlers{
		healthHandler:   newHealthHandler(startupTime),
		authHandler:     newAuthHandler(db, auth),
		categoryHandler: newCategoryHandler(db),
		projectHandler:  newProjectHandler(db),
		donationHandler: newDonationHandler(db),
		rewardHandler:   newRewardHandler(db),
		userHandler:     newUserHandler(db),
		roleHandler:     newRoleHandler(db),
		webHandler:      newWebHandler(),
	}
}
