package handler

import (
	"net/http"

	"github.com/darshan/books-service/internal/models"
)

// CreateFirm handles firm creation
func (h *Handler) CreateFirm(w http.ResponseWriter, r *http.Request) {
	var firm models.Firm
	if !h.decode(w, r, &firm) {
		return
	}
	if err := h.svc.CreateFirm(&firm); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, firm)
}

// ListFirms returns all firms
func (h *Handler) ListFirms(w http.ResponseWriter, r *http.Request) {
	firms, err := h.svc.ListFirms()
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, firms)
}

// GetFirm returns one firm
func (h *Handler) GetFirm(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		h.respondError(w, models.ErrNotFound)
		return
	}
	firm, err := h.svc.GetFirm(id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, firm)
}

// UpdateFirm updates one firm
func (h *Handler) UpdateFirm(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		h.respondError(w, models.ErrNotFound)
		return
	}
	var firm models.Firm
	if !h.decode(w, r, &firm) {
		return
	}
	firm.ID = id
	if err := h.svc.UpdateFirm(&firm); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, firm)
}

// DeleteFirm removes one firm
func (h *Handler) DeleteFirm(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		h.respondError(w, models.ErrNotFound)
		return
	}
	if err := h.svc.DeleteFirm(id); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Firm deleted successfully."})
}
