package handler

import (
	"net/http"

	"github.com/darshan/books-service/internal/models"
)

// CreateVehicle handles vehicle creation
func (h *Handler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var v models.Vehicle
	if !h.decode(w, r, &v) {
		return
	}
	if err := h.svc.CreateVehicle(&v); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, v)
}

// ListVehicles returns vehicles, optionally filtered by ?firm_id=
func (h *Handler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.svc.ListVehicles(firmIDQuery(r))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, vehicles)
}

// GetVehicle returns one vehicle
func (h *Handler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		h.respondError(w, models.ErrNotFound)
		return
	}
	v, err := h.svc.GetVehicle(id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, v)
}

// UpdateVehicle updates one vehicle
func (h *Handler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		h.respondError(w, models.ErrNotFound)
		return
	}
	var v models.Vehicle
	if !h.decode(w, r, &v) {
		return
	}
	v.ID = id
	if err := h.svc.UpdateVehicle(&v); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, v)
}

// DeleteVehicle removes one vehicle
func (h *Handler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		h.respondError(w, models.ErrNotFound)
		return
	}
	if err := h.svc.DeleteVehicle(id); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Vehicle deleted successfully."})
}
