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

type socialLinkHandler struct {
	responder      Responder
	logger         zerolog.Logger
	socialLinkRepo *database.SocialLinkRepo
}

func newSocialLinkHandler(socialLinkRepo *database.SocialLinkRepo) socialLinkHandler {
	logger := log.With().Str("handlerName", "socialLinkHandler").Logger()

	return socialLinkHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		socialLinkRepo: socialLinkRepo,
	}
}

// socialLinkRequest is the write payload for links. Active defaults to true
// when absent, so a pointer keeps "absent" and "false" apart.
type socialLinkRequest struct {
	Platform  string `json:"platform"`
	URL       string `json:"url"`
	Label     string `json:"label"`
	IconKey   string `json:"iconKey"`
	SortOrder int    `json:"sortOrder"`
	Active    *bool  `json:"active"`
}

func applySocialLinkRequest(link *models.SocialLink, req socialLinkRequest) error {
	if req.Platform == "" {
		return errs.NewValidationError("platform", "platform is required")
	}
	if req.URL == "" {
		return errs.NewValidationError("url", "url is required")
	}

	link.Platform = req.Platform
	link.URL = req.URL
	link.Label = req.Label
	link.IconKey = models.ResolveIconKey(req.IconKey)
	link.SortOrder = req.SortOrder
	link.Active = req.Active == nil || *req.Active

	return nil
}

// getActiveLinks retrieves active links in display order
// @Summary Get active social links
// @Tags SocialLinks
// @Produce json
// @Success 200 {array} models.SocialLink "Active links in display order"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching links"
// @Router /api/social-links [get]
func (h socialLinkHandler) getActiveLinks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		links, err := h.socialLinkRepo.FindActive()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find active social links", "social links", err))
			return
		}

		h.responder.WriteJSON(w, links)
	}
}

// getAllLinks retrieves every link, active or not
// @Summary Get all social links
// @Tags SocialLinks
// @Produce json
// @Success 200 {array} models.SocialLink "All links in display order"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error fetching links"
// @Router /api/social-links/all [get]
func (h socialLinkHandler) getAllLinks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		links, err := h.socialLinkRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find social links", "social links", err))
			return
		}

		h.responder.WriteJSON(w, links)
	}
}

// createLink creates a new social link
// @Summary Create social link
// @Tags SocialLinks
// @Accept json
// @Produce json
// @Param link body socialLinkRequest true "Link data"
// @Success 201 {object} models.SocialLink "Created link"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid link data"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error creating link"
// @Router /api/social-links [post]
func (h socialLinkHandler) createLink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var req socialLinkRequest
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&req); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode social link request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		var link models.SocialLink
		if err := applySocialLinkRequest(&link, req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.socialLinkRepo.Add(&link); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create social link", "social link", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, link)
	}
}

// updateLink updates an existing social link
// @Summary Update social link
// @Tags SocialLinks
// @Accept json
// @Produce json
// @Param linkID path string true "Link ID" format(uuid)
// @Param link body socialLinkRequest true "Updated link data"
// @Success 200 {object} models.SocialLink "Updated link"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid link data"
// @Failure 404 {object} ErrorResponse "Not Found - Link not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error updating link"
// @Router /api/social-links/{linkID} [put]
func (h socialLinkHandler) updateLink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		linkID, err := uuid.Parse(chi.URLParam(r, "linkID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid linkID"))
			return
		}

		link, err := h.socialLinkRepo.FindByID(linkID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find social link", "social link", err))
			return
		}
		if link == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("social link not found"))
			return
		}

		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var req socialLinkRequest
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&req); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode social link request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := applySocialLinkRequest(link, req); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.socialLinkRepo.Update(link); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update social link", "social link", err))
			return
		}

		h.responder.WriteJSON(w, link)
	}
}

// deleteLink deletes a social link by ID
// @Summary Delete social link
// @Tags SocialLinks
// @Produce json
// @Param linkID path string true "Link ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid linkID"
// @Failure 404 {object} ErrorResponse "Not Found - Link not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error deleting link"
// @Router /api/social-links/{linkID} [delete]
func (h socialLinkHandler) deleteLink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		linkID, err := uuid.Parse(chi.URLParam(r, "linkID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid linkID"))
			return
		}

		link, err := h.socialLinkRepo.FindByID(linkID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find social link", "social link", err))
			return
		}
		if link == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("social link not found"))
			return
		}

		if err := h.socialLinkRepo.Delete(linkID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete social link", "social link", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "social link deleted successfully",
		})
	}
}
