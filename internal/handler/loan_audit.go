package handler

import (
	"net/http"

	"github.com/darshan/books-service/internal/models"
)

// SaveLoanAudit creates or updates a loan audit profile
func (h *Handler) SaveLoanAudit(w http.ResponseWriter, r *http.Request) {
	var audit models.LoanAudit
	if !h.decode(w, r, &audit) {
		return
	}
	created, err := h.svc.SaveLoanAudit(r.Context(), &audit)
	if err != nil {
		h.respondError(w, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	h.respondJSON(w, status, audit)
}

// ListLoanAudits returns the authenticated user's loan audits
func (h *Handler) ListLoanAudits(w http.ResponseWriter, r *http.Request) {
	audits, err := h.svc.ListLoanAudits(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, audits)
}

// GetLoanAudit returns one loan audit
func (h *Handler) GetLoanAudit(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		h.respondError(w, models.ErrNotFound)
		return
	}
	audit, err := h.svc.GetLoanAudit(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, audit)
}

// DeleteLoanAudit removes one loan audit
func (h *Handler) DeleteLoanAudit(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		h.respondError(w, models.ErrNotFound)
		return
	}
	if err := h.svc.DeleteLoanAudit(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Loan Audit profile deleted successfully."})
}

// RunReminderJob triggers the loan reminder job on demand and returns its
// result
func (h *Handler) RunReminderJob(w http.ResponseWriter, r *http.Request) {
	result, err := h.job.Run()
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, result)
}
