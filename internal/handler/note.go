package handler

import (
	"net/http"

	"github.com/darshan/books-service/internal/models"
)

// CreateNote handles note creation
func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var n models.Note
	if !h.decode(w, r, &n) {
		return
	}
	if err := h.svc.CreateNote(r.Context(), &n); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, n)
}

// ListNotes returns the authenticated user's notes
func (h *Handler) ListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.svc.ListNotes(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, notes)
}

// GetNote returns one note
func (h *Handler) GetNote(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		h.respondError(w, models.ErrNotFound)
		return
	}
	n, err := h.svc.GetNote(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, n)
}

// UpdateNote updates one note
func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		h.respondError(w, models.ErrNotFound)
		return
	}
	var n models.Note
	if !h.decode(w, r, &n) {
		return
	}
	n.ID = id
	if err := h.svc.UpdateNote(r.Context(), &n); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, n)
}

// DeleteNote removes one note
func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		h.respondError(w, models.ErrNotFound)
		return
	}
	if err := h.svc.DeleteNote(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Note deleted successfully."})
}
