package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public site routes and the Basic-auth admin routes
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Get("/api/projects/public", handlers.projectHandler.getPublicProjects())
		r.Get("/api/projects/{projectID}/insights", handlers.projectHandler.getProjectInsights())
		r.Get("/api/projects/{projectID}/comments", handlers.commentHandler.getProjectComments())
		r.Post("/api/projects/{projectID}/comments", handlers.commentHandler.createComment())

		r.Get("/api/social-links", handlers.socialLinkHandler.getActiveLinks())

		r.Get("/api/calendar/month", handlers.calendarHandler.getMonthGrid())

		r.Get("/api/github/repos/{repo}", handlers.githubHandler.getRepo())
		r.Get("/api/github/contributions", handlers.githubHandler.getContributions())
	})

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.authenticate)

		r.Get("/api/auth/me", handlers.authHandler.me())

		// Project Handler endpoints
		r.Get("/api/projects", handlers.projectHandler.getAllProjects())
		r.Post("/api/projects", handlers.projectHandler.createProject())
		r.Put("/api/projects/{projectID}", handlers.projectHandler.updateProject())
		r.Delete("/api/projects/{projectID}", handlers.projectHandler.deleteProject())
		r.Post("/api/uploads/project-image", handlers.uploadHandler.uploadProjectImage())

		// Social Link Handler endpoints
		r.Get("/api/social-links/all", handlers.socialLinkHandler.getAllLinks())
		r.Post("/api/social-links", handlers.socialLinkHandler.createLink())
		r.Put("/api/social-links/{linkID}", handlers.socialLinkHandler.updateLink())
		r.Delete("/api/social-links/{linkID}", handlers.socialLinkHandler.deleteLink())

		// Task Handler endpoints
		r.Get("/api/tasks", handlers.taskHandler.getAllTasks())
		r.Get("/api/tasks/today", handlers.taskHandler.getTasksForToday())
		r.Get("/api/tasks/overdue", handlers.taskHandler.getOverdueTasks())
		r.Get("/api/tasks/dashboard", handlers.taskHandler.getDashboard())
		r.Post("/api/tasks", handlers.taskHandler.createTask())
		r.Put("/api/tasks/{taskID}", handlers.taskHandler.updateTask())
		r.Delete("/api/tasks/{taskID}", handlers.taskHandler.deleteTask())

		// Comment moderation endpoints
		r.Get("/api/admin/project-comments/pending", handlers.commentHandler.getPendingComments())
		r.Put("/api/admin/project-comments/{commentID}/approve", handlers.commentHandler.approveComment())
		r.Delete("/api/admin/project-comments/{commentID}", handlers.commentHandler.deleteComment())
	})
}
