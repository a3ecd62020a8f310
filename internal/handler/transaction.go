package handler

import (
	"net/http"

	"github.com/darshan/books-service/internal/export"
	"github.com/darshan/books-service/internal/models"
)

// CreateTransaction handles transaction creation
func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var t models.Transaction
	if !h.decode(w, r, &t) {
		return
	}
	if err := h.svc.CreateTransaction(&t); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, t)
}

// ListTransactions returns transactions, optionally filtered by ?firm_id=
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.svc.ListTransactions(firmIDQuery(r))
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, txs)
}

// GetTransaction returns one transaction
func (h *Handler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		h.respondError(w, models.ErrNotFound)
		return
	}
	t, err := h.svc.GetTransaction(id)
	if err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, t)
}

// UpdateTransaction updates one transaction
func (h *Handler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		h.respondError(w, models.ErrNotFound)
		return
	}
	var t models.Transaction
	if !h.decode(w, r, &t) {
		return
	}
	t.ID = id
	if err := h.svc.UpdateTransaction(&t); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, t)
}

// DeleteTransaction removes one transaction
func (h *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := idFromRequest(r)
	if err != nil {
		h.respondError(w, models.ErrNotFound)
		return
	}
	if err := h.svc.DeleteTransaction(id); err != nil {
		h.respondError(w, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"message": "Transaction deleted successfully."})
}

// ExportTransactionsExcel downloads all transactions as an Excel workbook,
// optionally filtered by ?firm_id=
func (h *Handler) ExportTransactionsExcel(w http.ResponseWriter, r *http.Request) {
	txs, err := h.svc.ListTransactions(firmIDQuery(r))
	if err != nil {
		h.respondError(w, err)
		return
	}
	out, err := export.TransactionsWorkbook(txs)
	if err != nil {
		h.respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.ms-excel")
	w.Header().Set("Content-Disposition", `attachment; filename="transactions.xls"`)
	w.Write(out)
}
