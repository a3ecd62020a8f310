package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/darshan/books-service/internal/models"
)

// CreateInterestEntry creates a new interest-bearing loan entry
func (r *Repository) CreateInterestEntry(e *models.InterestEntry) error {
	repayments, paidMonths, err := marshalInterestDetails(e)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO books.interest_entries (user_id, lender_name, borrow_amount,
			monthly_rate, borrow_date, cycle_day, payment_mode, cheque_name,
			cheque_number, bank_name, transaction_id, repayments, paid_months,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err = r.db.QueryRow(query, e.UserID, e.LenderName, e.BorrowAmount,
		e.MonthlyRate, e.BorrowDate, e.CycleDay, e.PaymentMode, e.ChequeName,
		e.ChequeNumber, e.BankName, e.TransactionID, repayments, paidMonths).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create interest entry: %w", err)
	}
	return nil
}

// ListInterestEntriesByUser retrieves a user's interest entries, newest first
func (r *Repository) ListInterestEntriesByUser(userID int64) ([]models.InterestEntry, error) {
	query := `
		SELECT id, user_id, lender_name, borrow_amount, monthly_rate, borrow_date,
		       cycle_day, payment_mode, cheque_name, cheque_number, bank_name,
		       transaction_id, repayments, paid_months, created_at, updated_at
		FROM books.interest_entries
		WHERE user_id = $1
		ORDER BY created_at DESC`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list interest entries: %w", err)
	}
	defer rows.Close()

	entries := []models.InterestEntry{}
	for rows.Next() {
		e, err := scanInterestEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

// FindInterestEntryByID retrieves one of a user's interest entries by id
func (r *Repository) FindInterestEntryByID(id, userID int64) (*models.InterestEntry, error) {
	query := `
		SELECT id, user_id, lender_name, borrow_amount, monthly_rate, borrow_date,
		       cycle_day, payment_mode, cheque_name, cheque_number, bank_name,
		       transaction_id, repayments, paid_months, created_at, updated_at
		FROM books.interest_entries
		WHERE id = $1 AND user_id = $2`
	row := r.db.QueryRow(query, id, userID)
	e, err := scanInterestEntry(row.Scan)
	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound
	}
	return e, err
}

// UpdateInterestEntry updates one of a user's interest entries
func (r *Repository) UpdateInterestEntry(e *models.InterestEntry) error {
	repayments, paidMonths, err := marshalInterestDetails(e)
	if err != nil {
		return err
	}
	query := `
		UPDATE books.interest_entries
		SET lender_name = $1, borrow_amount = $2, monthly_rate = $3,
		    borrow_date = $4, cycle_day = $5, payment_mode = $6, cheque_name = $7,
		    cheque_number = $8, bank_name = $9, transaction_id = $10,
		    repayments = $11, paid_months = $12, updated_at = CURRENT_TIMESTAMP
		WHERE id = $13 AND user_id = $14`
	res, err := r.db.Exec(query, e.LenderName, e.BorrowAmount, e.MonthlyRate,
		e.BorrowDate, e.CycleDay, e.PaymentMode, e.ChequeName, e.ChequeNumber,
		e.BankName, e.TransactionID, repayments, paidMonths, e.ID, e.UserID)
	if err != nil {
		return fmt.Errorf("failed to update interest entry: %w", err)
	}
	return requireRowAffected(res)
}

// DeleteInterestEntry removes one of a user's interest entries
func (r *Repository) DeleteInterestEntry(id, userID int64) error {
	res, err := r.db.Exec(`DELETE FROM books.interest_entries WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete interest entry: %w", err)
	}
	return requireRowAffected(res)
}

func marshalInterestDetails(e *models.InterestEntry) ([]byte, []byte, error) {
	if e.Repayments == nil {
		e.Repayments = []models.Repayment{}
	}
	if e.PaidMonths == nil {
		e.PaidMonths = []int{}
	}
	repayments, err := json.Marshal(e.Repayments)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal repayments: %w", err)
	}
	paidMonths, err := json.Marshal(e.PaidMonths)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal paid months: %w", err)
	}
	return repayments, paidMonths, nil
}

func scanInterestEntry(scan func(...interface{}) error) (*models.InterestEntry, error) {
	e := &models.InterestEntry{}
	var repayments, paidMonths []byte
	err := scan(&e.ID, &e.UserID, &e.LenderName, &e.BorrowAmount, &e.MonthlyRate,
		&e.BorrowDate, &e.CycleDay, &e.PaymentMode, &e.ChequeName,
		&e.ChequeNumber, &e.BankName, &e.TransactionID, &repayments,
		&paidMonths, &e.CreatedAt, &e.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan interest entry: %w", err)
	}
	if err := json.Unmarshal(repayments, &e.Repayments); err != nil {
		return nil, fmt.Errorf("failed to unmarshal repayments: %w", err)
	}
	if err := json.Unmarshal(paidMonths, &e.PaidMonths); err != nil {
		return nil, fmt.Errorf("failed to unmarshal paid months: %w", err)
	}
	return e, nil
}
