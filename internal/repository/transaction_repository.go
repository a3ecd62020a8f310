package repository

import (
	"database/sql"
	"fmt"

	"github.com/darshan/books-service/internal/models"
)

// CreateTransaction creates a new ton-based transaction
func (r *Repository) CreateTransaction(t *models.Transaction) error {
	query := `
		INSERT INTO books.transactions (firm_id, vehicle_id, ro_number, ro_ton,
			total_ton, open_ton, ro_price, open_price, total_price, transaction_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.db.QueryRow(query, t.FirmID, t.VehicleID, t.RoNumber, t.RoTon,
		t.TotalTon, t.OpenTon, t.RoPrice, t.OpenPrice, t.TotalPrice,
		t.TransactionDate).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// ListTransactions retrieves transactions, optionally filtered by firm,
// newest first
func (r *Repository) ListTransactions(firmID int64) ([]models.Transaction, error) {
	query := `
		SELECT id, firm_id, vehicle_id, ro_number, ro_ton, total_ton, open_ton,
		       ro_price, open_price, total_price, transaction_date
		FROM books.transactions
		WHERE ($1 = 0 OR firm_id = $1)
		ORDER BY transaction_date DESC, id DESC`
	rows, err := r.db.Query(query, firmID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	txs := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.FirmID, &t.VehicleID, &t.RoNumber, &t.RoTon,
			&t.TotalTon, &t.OpenTon, &t.RoPrice, &t.OpenPrice, &t.TotalPrice,
			&t.TransactionDate); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

// FindTransactionByID retrieves a transaction by id
func (r *Repository) FindTransactionByID(id int64) (*models.Transaction, error) {
	t := &models.Transaction{}
	query := `
		SELECT id, firm_id, vehicle_id, ro_number, ro_ton, total_ton, open_ton,
		       ro_price, open_price, total_price, transaction_date
		FROM books.transactions
		WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(&t.ID, &t.FirmID, &t.VehicleID,
		&t.RoNumber, &t.RoTon, &t.TotalTon, &t.OpenTon, &t.RoPrice,
		&t.OpenPrice, &t.TotalPrice, &t.TransactionDate)
	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	return t, nil
}

// UpdateTransaction updates an existing transaction
func (r *Repository) UpdateTransaction(t *models.Transaction) error {
	query := `
		UPDATE books.transactions
		SET firm_id = $1, vehicle_id = $2, ro_number = $3, ro_ton = $4,
		    total_ton = $5, open_ton = $6, ro_price = $7, open_price = $8,
		    total_price = $9, transaction_date = $10
		WHERE id = $11`
	res, err := r.db.Exec(query, t.FirmID, t.VehicleID, t.RoNumber, t.RoTon,
		t.TotalTon, t.OpenTon, t.RoPrice, t.OpenPrice, t.TotalPrice,
		t.TransactionDate, t.ID)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	return requireRowAffected(res)
}

// DeleteTransaction removes a transaction by id
func (r *Repository) DeleteTransaction(id int64) error {
	res, err := r.db.Exec(`DELETE FROM books.transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return requireRowAffected(res)
}
