package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/awantha2003/portfolio-backend/database"
	"github.com/awantha2003/portfolio-backend/errs"
	"github.com/awantha2003/portfolio-backend/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type commentHandler struct {
	responder   Responder
	logger      zerolog.Logger
	commentRepo *database.ProjectCommentRepo
	projectRepo *database.ProjectRepo
}

func newCommentHandler(commentRepo *database.ProjectCommentRepo, projectRepo *database.ProjectRepo) commentHandler {
	logger := log.With().Str("handlerName", "commentHandler").Logger()

	return commentHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		commentRepo: commentRepo,
		projectRepo: projectRepo,
	}
}

// commentRequest is the public write payload for comments.
type commentRequest struct {
	Name    string  `json:"name"`
	Email   *string `json:"email"`
	Message string  `json:"message"`
}

// findVisibleProject resolves a project for the public comment endpoints.
// Missing and private projects are indistinguishable to visitors.
func (h commentHandler) findVisibleProject(projectIDStr string) (*models.Project, error) {
	projectID, err := uuid.Parse(projectIDStr)
	if err != nil {
		return nil, errs.NewBadRequestError("invalid projectID")
	}

	project, err := h.projectRepo.FindByID(projectID)
	if err != nil {
		return nil, wrapDatabaseError("find project", "project", err)
	}
	if project == nil || !project.IsPublic {
		return nil, errs.NewNotFoundError("project not found")
	}
	return project, nil
}

// getProjectComments retrieves a public project's approved comments
// @Summary Get project comments
// @Description Returns approved comments for a public project, newest first
// @Tags Comments
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {array} models.ProjectComment "Approved comments"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID"
// @Failure 404 {object} ErrorResponse "Not Found - Project missing or private"
// @Router /api/projects/{projectID}/comments [get]
func (h commentHandler) getProjectComments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, err := h.findVisibleProject(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		comments, err := h.commentRepo.FindApprovedByProject(project.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find comments", "comments", err))
			return
		}

		h.responder.WriteJSON(w, comments)
	}
}

// createComment creates an unapproved comment on a public project
// @Summary Create comment
// @Description Creates a comment that stays hidden until an admin approves it
// @Tags Comments
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Param comment body commentRequest true "Comment data"
// @Success 201 {object} models.ProjectComment "Created comment"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid comment data"
// @Failure 404 {object} ErrorResponse "Not Found - Project missing or private"
// @Router /api/projects/{projectID}/comments [post]
func (h commentHandler) createComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project, err := h.findVisibleProject(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var req commentRequest
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&req); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode comment request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Name == "" {
			h.responder.WriteError(w, errs.NewValidationError("name", "name is required"))
			return
		}
		if req.Message == "" {
			h.responder.WriteError(w, errs.NewValidationError("message", "message is required"))
			return
		}

		comment := models.ProjectComment{
			ProjectID: project.ID,
			Name:      req.Name,
			Email:     req.Email,
			Message:   req.Message,
			Approved:  false,
		}

		if err := h.commentRepo.Add(&comment); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create comment", "comment", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, comment)
	}
}

// getPendingComments retrieves all unapproved comments for moderation
// @Summary Get pending comments
// @Tags Comments
// @Produce json
// @Success 200 {array} models.ProjectComment "Unapproved comments"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching comments"
// @Router /api/admin/project-comments/pending [get]
func (h commentHandler) getPendingComments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		comments, err := h.commentRepo.FindPending()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find pending comments", "comments", err))
			return
		}

		h.responder.WriteJSON(w, comments)
	}
}

// approveComment marks a comment as approved
// @Summary Approve comment
// @Tags Comments
// @Produce json
// @Param commentID path string true "Comment ID" format(uuid)
// @Success 200 {object} models.ProjectComment "Approved comment"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid commentID"
// @Failure 404 {object} ErrorResponse "Not Found - Comment not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error approving comment"
// @Router /api/admin/project-comments/{commentID}/approve [put]
func (h commentHandler) approveComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		commentID, err := uuid.Parse(chi.URLParam(r, "commentID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid commentID"))
			return
		}

		comment, err := h.commentRepo.FindByID(commentID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find comment", "comment", err))
			return
		}
		if comment == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("comment not found"))
			return
		}

		comment.Approved = true
		if err := h.commentRepo.Update(comment); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("approve comment", "comment", err))
			return
		}

		h.responder.WriteJSON(w, comment)
	}
}

// deleteComment deletes a comment by ID
// @Summary Delete comment
// @Tags Comments
// @Produce json
// @Param commentID path string true "Comment ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid commentID"
// @Failure 404 {object} ErrorResponse "Not Found - Comment not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error deleting comment"
// @Router /api/admin/project-comments/{commentID} [delete]
func (h commentHandler) deleteComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		commentID, err := uuid.Parse(chi.URLParam(r, "commentID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid commentID"))
			return
		}

		comment, err := h.commentRepo.FindByID(commentID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find comment", "comment", err))
			return
		}
		if comment == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("comment not found"))
			return
		}

		if err := h.commentRepo.Delete(commentID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete comment", "comment", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "comment deleted successfully",
		})
	}
}
