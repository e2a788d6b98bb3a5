package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/awantha2003/portfolio-backend/derive"
	"github.com/awantha2003/portfolio-backend/errs"
	"github.com/awantha2003/portfolio-backend/githubapi"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type githubHandler struct {
	responder     Responder
	logger        zerolog.Logger
	github        *githubapi.Client
	contributions *githubapi.ContributionsClient
}

func newGithubHandler(github *githubapi.Client, contributions *githubapi.ContributionsClient) githubHandler {
	logger := log.With().Str("handlerName", "githubHandler").Logger()

	return githubHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		github:        github,
		contributions: contributions,
	}
}

// ContributionGrid is the heatmap payload: the year's padded week grid with
// nulls for the leading weekday offset and the trailing fill.
type ContributionGrid struct {
	Year    int                         `json:"year"`
	Total   int                         `json:"total"`
	Grid    []*derive.ContributionEntry `json:"grid"`
	Years   []int                       `json:"years"`
	Palette []string                    `json:"palette"`
}

// getRepo serves repository details plus languages and other recent repos
// @Summary Get repository overview
// @Tags GitHub
// @Produce json
// @Param repo path string true "Repository name"
// @Success 200 {object} githubapi.RepoOverview "Repository overview"
// @Failure 502 {object} ErrorResponse "Bad Gateway - GitHub API unavailable"
// @Router /api/github/repos/{repo} [get]
func (h githubHandler) getRepo() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		repo := chi.URLParam(r, "repo")
		if repo == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing repo"))
			return
		}

		overview, err := h.github.RepoOverview(r.Context(), repo)
		if err != nil {
			h.logger.Error().Err(err).Str("repo", repo).Msg("Failed to fetch repository overview")
			h.responder.WriteError(w, errs.NewUpstreamError("github", err))
			return
		}

		h.responder.WriteJSON(w, overview)
	}
}

// getContributions serves the contribution heatmap grid for a year
// @Summary Get contribution grid
// @Description Fetches the account's daily contributions and lays the requested year out as a null-padded week grid
// @Tags GitHub
// @Produce json
// @Param year query int false "Year (defaults to the current year)"
// @Success 200 {object} ContributionGrid "Padded year grid"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid year"
// @Failure 502 {object} ErrorResponse "Bad Gateway - Contributions feed unavailable"
// @Router /api/github/contributions [get]
func (h githubHandler) getContributions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year := time.Now().Year()
		if raw := r.URL.Query().Get("year"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				h.responder.WriteError(w, errs.NewValidationError("year", "year must be a number"))
				return
			}
			year = parsed
		}

		data, err := h.contributions.Fetch(r.Context())
		if err != nil {
			h.logger.Error().Err(err).Int("year", year).Msg("Failed to fetch contributions")
			h.responder.WriteError(w, errs.NewUpstreamError("contributions feed", err))
			return
		}

		for i := range data.Contributions {
			data.Contributions[i].Level = derive.ClampLevel(data.Contributions[i].Level)
		}

		response := ContributionGrid{
			Year:    year,
			Total:   data.Total[strconv.Itoa(year)],
			Grid:    derive.BuildYearGrid(data.Contributions, year),
			Years:   data.Years(),
			Palette: derive.LevelPalette(),
		}

		h.responder.WriteJSON(w, response)
	}
}
