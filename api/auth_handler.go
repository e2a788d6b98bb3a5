package api

import (
	"net/http"

	"github.com/awantha2003/portfolio-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
}

func newAuthHandler() authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
	}
}

// me confirms the admin credentials and returns the account identity
// @Summary Get current admin
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]string "Admin identity"
// @Failure 401 {object} ErrorResponse "Unauthorized - Invalid credentials"
// @Router /api/auth/me [get]
func (h authHandler) me() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email, err := ctxGetAdminEmail(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"email": email,
			"role":  "ADMIN",
		})
	}
}
