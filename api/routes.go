package api

import (
	"github.com/fundflow/backend/models"
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the API surface, the auth endpoints and the public web
// pages. User and role management requires an admin token.
func setupRoutes(r chi.Router, handlers *routeHandlers, auth authMiddleware) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.healthHandler.status())

		r.Post("/auth/register", handlers.authHandler.register())
		r.Post("/auth/login", handlers.authHandler.login())
		r.With(auth.authenticate).Get("/auth/me", handlers.authHandler.me())

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", handlers.categoryHandler.getAllCategories())
			r.Get("/{categoryID}", handlers.categoryHandler.getCategory())
			r.Post("/", handlers.categoryHandler.createCategory())
			r.Put("/{categoryID}", handlers.categoryHandler.updateCategory())
			r.Delete("/{categoryID}", handlers.categoryHandler.deleteCategory())
		})

		r.Route("/projects", func(r chi.Router) {
			r.Get("/", handlers.projectHandler.getAllProjects())
			r.Get("/{projectID}", handlers.projectHandler.getProject())
			r.Post("/", handlers.projectHandler.createProject())
			r.Put("/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/{projectID}", handlers.projectHandler.deleteProject())
		})

		r.Route("/donations", func(r chi.Router) {
			r.Get("/", handlers.donationHandler.getAllDonations())
			r.Get("/{donationID}", handlers.donationHandler.getDonation())
			r.Post("/", handlers.donationHandler.createDonation())
			r.Put("/{donationID}", handlers.donationHandler.updateDonation())
			r.Delete("/{donationID}", handlers.donationHandler.deleteDonation())
		})

		r.Route("/rewards", func(r chi.Router) {
			r.Get("/", handlers.rewardHandler.getAllRewards())
			r.Get("/{rewardID}", handlers.rewardHandler.getReward())
			r.Post("/", handlers.rewardHandler.createReward())
			r.Put("/{rewardID}", handlers.rewardHandler.updateReward())
			r.Delete("/{rewardID}", handlers.rewardHandler.deleteReward())
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(auth.authenticate)
			r.Use(auth.requirePermission(models.PermissionManageUsers))
			r.Get("/", handlers.userHandler.getAllUsers())
			r.Get("/{userID}", handlers.userHandler.getUser())
			r.Post("/", handlers.userHandler.createUser())
			r.Put("/{userID}", handlers.userHandler.updateUser())
			r.Delete("/{userID}", handlers.userHandler.deleteUser())
		})

		r.Route("/roles", func(r chi.Router) {
			r.Use(auth.authenticate)
			r.Use(auth.requirePermission(models.PermissionManageRoles))
			r.Get("/", handlers.roleHandler.getAllRoles())
			r.Get("/{roleID}", handlers.roleHandler.getRole())
			r.Post("/", handlers.roleHandler.createRole())
			r.Put("/{roleID}", handlers.roleHandler.updateRole())
			r.Delete("/{roleID}", handlers.roleHandler.deleteRole())
		})
	})

	r.Get("/", handlers.webHandler.page("index.html"))
	r.Get("/about", handlers.webHandler.page("about.html"))
	r.Get("/faq", handlers.webHandler.page("faq.html"))
	r.Get("/help", handlers.webHandler.page("help.html"))
	r.Get("/projects", handlers.webHandler.page("projects.html"))
	r.Handle("/static/*", handlers.webHandler.static())
}
