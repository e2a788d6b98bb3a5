package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/awantha2003/portfolio-backend/derive"
	"github.com/awantha2003/portfolio-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type calendarHandler struct {
	responder Responder
	logger    zerolog.Logger
}

func newCalendarHandler() calendarHandler {
	logger := log.With().Str("handlerName", "calendarHandler").Logger()

	return calendarHandler{
		responder: NewResponder(logger),
		logger:    logger,
	}
}

// getMonthGrid serves the null-padded month grid for the calendar widget
// @Summary Get month grid
// @Tags Calendar
// @Produce json
// @Param year query int false "Year (defaults to current)"
// @Param month query int false "Month 1-12 (defaults to current)"
// @Success 200 {object} derive.MonthGrid "Month grid"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid year or month"
// @Router /api/calendar/month [get]
func (h calendarHandler) getMonthGrid() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()
		year := now.Year()
		month := now.Month()

		if raw := r.URL.Query().Get("year"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				h.responder.WriteError(w, errs.NewValidationError("year", "year must be a number"))
				return
			}
			year = parsed
		}
		if raw := r.URL.Query().Get("month"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 || parsed > 12 {
				h.responder.WriteError(w, errs.NewValidationError("month", "month must be 1-12"))
				return
			}
			month = time.Month(parsed)
		}

		h.responder.WriteJSON(w, derive.BuildMonthGrid(year, month, now))
	}
}
