package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/awantha2003/portfolio-backend/database"
	"github.com/awantha2003/portfolio-backend/derive"
	"github.com/awantha2003/portfolio-backend/errs"
	"github.com/awantha2003/portfolio-backend/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// ProjectInsights is the derived view the project detail page renders:
// parsed stack tokens, per-layer stack summaries and the highlight bullets.
type ProjectInsights struct {
	TechStack  []string              `json:"techStack"`
	Summary    string                `json:"summary"`
	Categories derive.StackBreakdown `json:"categories"`
	Highlights []string              `json:"highlights"`
}

// getPublicProjects retrieves public projects, pinned first
// @Summary Get public projects
// @Description Retrieves all public projects ordered pinned-first, newest-first
// @Tags Projects
// @Produce json
// @Success 200 {array} models.Project "List of public projects"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching projects"
// @Router /api/projects/public [get]
func (h projectHandler) getPublicProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindPublic()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find public projects", "projects", err))
			return
		}

		h.responder.WriteJSON(w, projects)
	}
}

// getAllProjects retrieves all projects including private ones
// @Summary Get all projects
// @Description Retrieves every project regardless of visibility
// @Tags Projects
// @Produce json
// @Success 200 {array} models.Project "List of projects"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching projects"
// @Router /api/projects [get]
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find projects", "projects", err))
			return
		}

		h.responder.WriteJSON(w, projects)
	}
}

// getProjectInsights serves the derived detail view for a public project
// @Summary Get project insights
// @Description Returns parsed tech stack, categorized stack summaries and highlights
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} ProjectInsights "Derived project view"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID"
// @Failure 404 {object} ErrorResponse "Not Found - Project missing or private"
// @Router /api/projects/{projectID}/insights [get]
func (h projectHandler) getProjectInsights() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}

		// Private projects are invisible here, same as on the comments endpoint
		if project == nil || !project.IsPublic {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		techStack := derive.ParseTechStack(project.TechStack)
		response := ProjectInsights{
			TechStack:  techStack,
			Summary:    derive.SummarizeTech(techStack),
			Categories: derive.CategorizeStack(techStack),
			Highlights: derive.BuildHighlights(*project, techStack),
		}

		h.responder.WriteJSON(w, response)
	}
}

// createProject creates a new project
// @Summary Create project
// @Description Creates a new project in the database
// @Tags Projects
// @Accept json
// @Produce json
// @Param project body models.Project true "Project data"
// @Success 201 {object} models.Project "Created project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating project"
// @Router /api/projects [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var project models.Project
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&project); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if project.Title == "" {
			h.responder.WriteError(w, errs.NewValidationError("title", "title is required"))
			return
		}

		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create project", "project", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, project)
	}
}

// updateProject updates an existing project
// @Summary Update project
// @Description Updates an existing project in the database
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Param project body models.Project true "Updated project data"
// @Success 200 {object} models.Project "Updated project"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid project data"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error updating project"
// @Router /api/projects/{projectID} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		// Verify project exists
		existingProject, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if existingProject == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var project models.Project
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&project); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if project.Title == "" {
			h.responder.WriteError(w, errs.NewValidationError("title", "title is required"))
			return
		}

		// Ensure ID matches
		project.ID = projectID

		if err := h.projectRepo.Update(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update project", "project", err))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// deleteProject deletes a project by ID
// @Summary Delete project
// @Description Deletes a project from the database by ID
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error deleting project"
// @Router /api/projects/{projectID} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		existingProject, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}
		if existingProject == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete project", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}
