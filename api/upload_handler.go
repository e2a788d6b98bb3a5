package api

import (
	"net/http"

	"github.com/awantha2003/portfolio-backend/errs"
	"github.com/awantha2003/portfolio-backend/storage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const maxUploadBytes = 10 << 20 // 10MB

type uploadHandler struct {
	responder  Responder
	logger     zerolog.Logger
	imageStore storage.ImageStore
}

func newUploadHandler(imageStore storage.ImageStore) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		imageStore: imageStore,
	}
}

// uploadProjectImage stores a project image and returns its URL
// @Summary Upload project image
// @Description Accepts a multipart "file" field, stores it under a fresh uuid name
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 201 {object} map[string]string "URL of the stored image"
// @Failure 400 {object} ErrorResponse "Bad Request - Missing or oversized file"
// @Failure 500 {object} ErrorResponse "Internal Server Error - Error storing image"
// @Router /api/uploads/project-image [post]
func (h uploadHandler) uploadProjectImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Authentication handled by middleware

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid multipart form"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewValidationError("file", "file is required"))
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		url, err := h.imageStore.Save(r.Context(), header.Filename, contentType, file)
		if err != nil {
			h.logger.Error().Err(err).Str("filename", header.Filename).Msg("Failed to store uploaded image")
			h.responder.WriteError(w, errs.NewInternalError("failed to store image"))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]string{"url": url})
	}
}
