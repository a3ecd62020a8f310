package handler

import (
	"net/http"

	"github.com/darshan/books-service/internal/export"
	"github.com/darshan/books-service/internal/models"
)

// CreateQuickTransaction handles ad-hoc transaction creation
func (h *Handler) CreateQuickTransaction(w http.ResponseWriter, r *http.Request) {
	var q models.QuickTransaction
	if !h.decode(w, r, &q) {
		return
	}
	if err := h.svc.CreateQuickTransaction(&q); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, q)
}

// ListQuickTransactions returns all ad-hoc transactions
func (h *Handler) ListQuickTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.svc.ListQuickTransactions()
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, txs)
}

// GetQuickTransaction returns one ad-hoc transaction
func (h *Handler) GetQuickTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		h.respondError(w, models.ErrNotFound)
		return
	}
	q, err := h.svc.GetQuickTransaction(id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, q)
}

// UpdateQuickTransaction updates one ad-hoc transaction
func (h *Handler) UpdateQuickTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		h.respondError(w, models.ErrNotFound)
		return
	}
	var q models.QuickTransaction
	if !h.decode(w, r, &q) {
		return
	}
	q.ID = id
	if err := h.svc.UpdateQuickTransaction(&q); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, q)
}

// DeleteQuickTransaction removes one ad-hoc transaction
func (h *Handler) DeleteQuickTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		h.respondError(w, models.ErrNotFound)
		return
	}
	if err := h.svc.DeleteQuickTransaction(id); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Quick transaction deleted successfully."})
}

// ExportQuickTransactionsExcel downloads all ad-hoc transactions as an
// Excel workbook
func (h *Handler) ExportQuickTransactionsExcel(w http.ResponseWriter, r *http.Request) {
	txs, err := h.svc.ListQuickTransactions()
	if err != nil {
		h.respondError(w, err)
		return
	}
	out, err := export.QuickTransactionsWorkbook(txs)
	if err != nil {
		h.respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.ms-excel")
	w.Header().Set("Content-Disposition", `attachment; filename="quick-transactions.xls"`)
	w.Write(out)
}
