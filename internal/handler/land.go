package handler

import (
	"net/http"

	"github.com/darshan/books-service/internal/models"
)

// CreateLandEntry handles land entry creation
func (h *Handler) CreateLandEntry(w http.ResponseWriter, r *http.Request) {
	var e models.LandEntry
	if !h.decode(w, r, &e) {
		return
	}
	if err := h.svc.CreateLandEntry(r.Context(), &e); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, e)
}

// ListLandEntries returns the authenticated user's land entries
func (h *Handler) ListLandEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.ListLandEntries(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, entries)
}

// GetLandEntry returns one land entry
func (h *Handler) GetLandEntry(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		h.respondError(w, models.ErrNotFound)
		return
	}
	e, err := h.svc.GetLandEntry(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, e)
}

// UpdateLandEntry updates one land entry
func (h *Handler) UpdateLandEntry(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		h.respondError(w, models.ErrNotFound)
		return
	}
	var e models.LandEntry
	if !h.decode(w, r, &e) {
		return
	}
	e.ID = id
	if err := h.svc.UpdateLandEntry(r.Context(), &e); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, e)
}

// DeleteLandEntry removes one land entry
func (h *Handler) DeleteLandEntry(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		h.respondError(w, models.ErrNotFound)
		return
	}
	if err := h.svc.DeleteLandEntry(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Land entry deleted successfully."})
}
