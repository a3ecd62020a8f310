package handler

import (
	"net/http"

	"github.com/darshan/books-service/internal/models"
)

// CreatePricing handles pricing creation
func (h *Handler) CreatePricing(w http.ResponseWriter, r *http.Request) {
	var p models.Pricing
	if !h.decode(w, r, &p) {
		return
	}
	if err := h.svc.CreatePricing(&p); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, p)
}

// ListPricing returns pricing records, optionally filtered by ?firm_id=
func (h *Handler) ListPricing(w http.ResponseWriter, r *http.Request) {
	prices, err := h.svc.ListPricing(firmIDQuery(r))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, prices)
}

// GetPricing returns one pricing record
func (h *Handler) GetPricing(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		h.respondError(w, models.ErrNotFound)
		return
	}
	p, err := h.svc.GetPricing(id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, p)
}

// UpdatePricing updates one pricing record
func (h *Handler) UpdatePricing(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		h.respondError(w, models.ErrNotFound)
		return
	}
	var p models.Pricing
	if !h.decode(w, r, &p) {
		return
	}
	p.ID = id
	if err := h.svc.UpdatePricing(&p); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, p)
}

// DeletePricing removes one pricing record
func (h *Handler) DeletePricing(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		h.respondError(w, models.ErrNotFound)
		return
	}
	if err := h.svc.DeletePricing(id); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Pricing deleted successfully."})
}
