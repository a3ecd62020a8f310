package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/darshan/books-service/internal/jobs"
	"github.com/darshan/books-service/internal/models"
	"github.com/darshan/books-service/internal/service"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	svc  *service.Service
	auth *service.AuthService
	job  *jobs.ReminderJob
	log  *logrus.Logger
}

func NewHandler(svc *service.Service, auth *service.AuthService, job *jobs.ReminderJob, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, auth: auth, job: job, log: log}
}

type errorResponse struct {
	Message string `json:"message"`
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			h.log.Errorf("Failed to encode response: %v", err)
		}
	}
}

// respondError maps service errors onto HTTP status codes.
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrValidation):
		h.respondJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
	case errors.Is(err, models.ErrInvalidCredentials),
		errors.Is(err, models.ErrOtpExpired),
		errors.Is(err, models.ErrOtpInvalid):
		h.respondJSON(w, http.StatusUnauthorized, errorResponse{Message: err.Error()})
	case errors.Is(err, models.ErrProfileIncomplete):
		h.respondJSON(w, http.StatusBadRequest, errorResponse{Message: err.Error()})
	case errors.Is(err, models.ErrNotFound):
		h.respondJSON(w, http.StatusNotFound, errorResponse{Message: "not found"})
	case errors.Is(err, models.ErrDelivery):
		h.respondJSON(w, http.StatusBadGateway, errorResponse{Message: err.Error()})
	default:
		h.log.Errorf("Internal error: %v", err)
		h.respondJSON(w, http.StatusInternalServerError, errorResponse{Message: "internal server error"})
	}
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.respondJSON(w, http.StatusBadRequest, errorResponse{Message: "invalid request body"})
		return false
	}
	return true
}

func idFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

// firmIDQuery reads the optional ?firm_id= filter; 0 means no filter.
func firmIDQuery(r *http.Request) int64 {
	id, _ := strconv.ParseInt(r.URL.Query().Get("firm_id"), 10, 64)
	return id
}
