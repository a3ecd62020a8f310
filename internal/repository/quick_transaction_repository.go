package repository

import (
	"database/sql"
	"fmt"

	"github.com/darshan/books-service/internal/models"
)

// CreateQuickTransaction creates a new ad-hoc transaction
func (r *Repository) CreateQuickTransaction(q *models.QuickTransaction) error {
	query := `
		INSERT INTO books.quick_transactions (vehicle_no, driver_name, driver_number,
			ro_ton, open_ton, total_ton, ro_ton_price, open_ton_price,
			ro_amount, open_amount, total_amount, cash_amount, online_amount,
			online_payment_details, transaction_date, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id`
	err := r.db.QueryRow(query, q.VehicleNo, q.DriverName, q.DriverNumber,
		q.RoTon, q.OpenTon, q.TotalTon, q.RoTonPrice, q.OpenTonPrice,
		q.RoAmount, q.OpenAmount, q.TotalAmount, q.CashAmount, q.OnlineAmount,
		q.OnlinePaymentDetails, q.TransactionDate, q.Remarks).Scan(&q.ID)
	if err != nil {
		return fmt.Errorf("failed to create quick transaction: %w", err)
	}
	return nil
}

// ListQuickTransactions retrieves all ad-hoc transactions, newest first
func (r *Repository) ListQuickTransactions() ([]models.QuickTransaction, error) {
	query := `
		SELECT id, vehicle_no, driver_name, driver_number, ro_ton, open_ton,
		       total_ton, ro_ton_price, open_ton_price, ro_amount, open_amount,
		       total_amount, cash_amount, online_amount, online_payment_details,
		       transaction_date, remarks
		FROM books.quick_transactions
		ORDER BY transaction_date DESC, id DESC`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list quick transactions: %w", err)
	}
	defer rows.Close()

	txs := []models.QuickTransaction{}
	for rows.Next() {
		var q models.QuickTransaction
		if err := rows.Scan(&q.ID, &q.VehicleNo, &q.DriverName, &q.DriverNumber,
			&q.RoTon, &q.OpenTon, &q.TotalTon, &q.RoTonPrice, &q.OpenTonPrice,
			&q.RoAmount, &q.OpenAmount, &q.TotalAmount, &q.CashAmount,
			&q.OnlineAmount, &q.OnlinePaymentDetails, &q.TransactionDate,
			&q.Remarks); err != nil {
			return nil, fmt.Errorf("failed to scan quick transaction: %w", err)
		}
		txs = append(txs, q)
	}
	return txs, rows.Err()
}

// FindQuickTransactionByID retrieves an ad-hoc transaction by id
func (r *Repository) FindQuickTransactionByID(id int64) (*models.QuickTransaction, error) {
	q := &models.QuickTransaction{}
	query := `
		SELECT id, vehicle_no, driver_name, driver_number, ro_ton, open_ton,
		       total_ton, ro_ton_price, open_ton_price, ro_amount, open_amount,
		       total_amount, cash_amount, online_amount, online_payment_details,
		       transaction_date, remarks
		FROM books.quick_transactions
		WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(&q.ID, &q.VehicleNo, &q.DriverName,
		&q.DriverNumber, &q.RoTon, &q.OpenTon, &q.TotalTon, &q.RoTonPrice,
		&q.OpenTonPrice, &q.RoAmount, &q.OpenAmount, &q.TotalAmount,
		&q.CashAmount, &q.OnlineAmount, &q.OnlinePaymentDetails,
		&q.TransactionDate, &q.Remarks)
	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find quick transaction: %w", err)
	}
	return q, nil
}

// UpdateQuickTransaction updates an existing ad-hoc transaction
func (r *Repository) UpdateQuickTransaction(q *models.QuickTransaction) error {
	query := `
		UPDATE books.quick_transactions
		SET vehicle_no = $1, driver_name = $2, driver_number = $3, ro_ton = $4,
		    open_ton = $5, total_ton = $6, ro_ton_price = $7, open_ton_price = $8,
		    ro_amount = $9, open_amount = $10, total_amount = $11,
		    cash_amount = $12, online_amount = $13, online_payment_details = $14,
		    transaction_date = $15, remarks = $16
		WHERE id = $17`
	res, err := r.db.Exec(query, q.VehicleNo, q.DriverName, q.DriverNumber,
		q.RoTon, q.OpenTon, q.TotalTon, q.RoTonPrice, q.OpenTonPrice,
		q.RoAmount, q.OpenAmount, q.TotalAmount, q.CashAmount, q.OnlineAmount,
		q.OnlinePaymentDetails, q.TransactionDate, q.Remarks, q.ID)
	if err != nil {
		return fmt.Errorf("failed to update quick transaction: %w", err)
	}
	return requireRowAffected(res)
}

// DeleteQuickTransaction removes an ad-hoc transaction by id
func (r *Repository) DeleteQuickTransaction(id int64) error {
	res, err := r.db.Exec(`DELETE FROM books.quick_transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete quick transaction: %w", err)
	}
	return requireRowAffected(res)
}
