package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/darshan/books-service/internal/models"
)

// dateQuery parses an optional YYYY-MM-DD query parameter; nil when absent.
func dateQuery(r *http.Request, key string) (*time.Time, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a YYYY-MM-DD date", models.ErrValidation, key)
	}
	return &t, nil
}

// TodayTonStats returns today's transaction tonnage totals
func (h *Handler) TodayTonStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.TodayTonStats()
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, stats)
}

// WeeklyTonStats returns the past week's transaction tonnage totals
func (h *Handler) WeeklyTonStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.WeeklyTonStats()
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, stats)
}

// TodayAmountStats returns today's transaction amount totals
func (h *Handler) TodayAmountStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.TodayAmountStats()
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, stats)
}

// WeeklyLoadCount returns the number of truck loads in the past week
func (h *Handler) WeeklyLoadCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.WeeklyLoadCount()
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]int64{"count": count})
}

// QuickTodayTotals returns today's ad-hoc transaction totals
func (h *Handler) QuickTodayTotals(w http.ResponseWriter, r *http.Request) {
	totals, err := h.svc.QuickTodayTotals()
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, totals)
}

// QuickWeeklyTotals returns the past week's ad-hoc transaction totals
func (h *Handler) QuickWeeklyTotals(w http.ResponseWriter, r *http.Request) {
	totals, err := h.svc.QuickWeeklyTotals()
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, totals)
}

// QuickPaymentSummary returns the cash/online breakdown, optionally
// bounded by ?start_date= and ?end_date=
func (h *Handler) QuickPaymentSummary(w http.ResponseWriter, r *http.Request) {
	from, err := dateQuery(r, "start_date")
	if err != nil {
		h.respondError(w, err)
		return
	}
	to, err := dateQuery(r, "end_date")
	if err != nil {
		h.respondError(w, err)
		return
	}
	summary, err := h.svc.QuickPaymentSummary(from, to)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, summary)
}

// FirmCount returns the total number of registered firms
func (h *Handler) FirmCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.FirmCount()
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]int64{"total_firms": count})
}

// FirmTodayStats returns today's transaction volume for the dashboard
func (h *Handler) FirmTodayStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.FirmTodayStats()
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, stats)
}

// VehicleCount returns the number of vehicles, optionally filtered by
// ?firm_id=
func (h *Handler) VehicleCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.svc.VehicleCount(firmIDQuery(r))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]int64{"total_vehicles": count})
}
