package handler

import (
	"net/http"

	"github.com/darshan/books-service/internal/models"
)

// CreateInterestEntry handles interest entry creation
func (h *Handler) CreateInterestEntry(w http.ResponseWriter, r *http.Request) {
	var e models.InterestEntry
	if !h.decode(w, r, &e) {
		return
	}
	if err := h.svc.CreateInterestEntry(r.Context(), &e); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, e)
}

// ListInterestEntries returns the authenticated user's interest entries
func (h *Handler) ListInterestEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.ListInterestEntries(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, entries)
}

// GetInterestEntry returns one interest entry
func (h *Handler) GetInterestEntry(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		h.respondError(w, models.ErrNotFound)
		return
	}
	e, err := h.svc.GetInterestEntry(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, e)
}

// UpdateInterestEntry updates one interest entry
func (h *Handler) UpdateInterestEntry(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		h.respondError(w, models.ErrNotFound)
		return
	}
	var e models.InterestEntry
	if !h.decode(w, r, &e) {
		return
	}
	e.ID = id
	if err := h.svc.UpdateInterestEntry(r.Context(), &e); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, e)
}

// DeleteInterestEntry removes one interest entry
func (h *Handler) DeleteInterestEntry(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		h.respondError(w, models.ErrNotFound)
		return
	}
	if err := h.svc.DeleteInterestEntry(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Interest entry deleted successfully."})
}
