package api

import (
	"github.com/awantha2003/portfolio-backend/database"
	"github.com/awantha2003/portfolio-backend/githubapi"
	"github.com/awantha2003/portfolio-backend/storage"
)

// handlerDeps carries the non-database collaborators handlers need.
type handlerDeps struct {
	imageStore    storage.ImageStore
	github        *githubapi.Client
	contributions *githubapi.ContributionsClient
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, deps handlerDeps) *routeHandlers {
	return &routeHandlers{
		projectHandler:    newProjectHandler(database.ProjectRepo()),
		taskHandler:       newTaskHandler(database.TaskRepo()),
		socialLinkHandler: newSocialLinkHandler(database.SocialLinkRepo()),
		commentHandler:    newCommentHandler(database.CommentRepo(), database.ProjectRepo()),
		uploadHandler:     newUploadHandler(deps.imageStore),
		authHandler:       newAuthHandler(),
		githubHandler:     newGithubHandler(deps.github, deps.contributions),
		calendarHandler:   newCalendarHandler(),
	}
}
