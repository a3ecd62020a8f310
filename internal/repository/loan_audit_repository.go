package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/darshan/books-service/internal/models"
)

// CreateLoanAudit creates a new loan audit profile
func (r *Repository) CreateLoanAudit(a *models.LoanAudit) error {
	params, err := json.Marshal(a.Parameters)
	if err != nil {
		return fmt.Errorf("failed to marshal loan parameters: %w", err)
	}
	query := `
		INSERT INTO books.loan_audits (user_id, client_name, loan_type, loan_name,
			deduction_bank, parameters, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err = r.db.QueryRow(query, a.UserID, a.ClientName, a.LoanType, a.LoanName,
		a.DeductionBank, params).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create loan audit: %w", err)
	}
	return nil
}

// UpdateLoanAudit updates an existing loan audit profile
func (r *Repository) UpdateLoanAudit(a *models.LoanAudit) error {
	params, err := json.Marshal(a.Parameters)
	if err != nil {
		return fmt.Errorf("failed to marshal loan parameters: %w", err)
	}
	query := `
		UPDATE books.loan_audits
		SET loan_type = $1, deduction_bank = $2, parameters = $3,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $4 AND user_id = $5
		RETURNING updated_at`
	err = r.db.QueryRow(query, a.LoanType, a.DeductionBank, params, a.ID, a.UserID).
		Scan(&a.UpdatedAt)
	if err == sql.ErrNoRows {
		return models.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to update loan audit: %w", err)
	}
	return nil
}

// FindLoanAuditByName retrieves a user's loan audit by client and loan name
func (r *Repository) FindLoanAuditByName(userID int64, clientName, loanName string) (*models.LoanAudit, error) {
	query := `
		SELECT id, user_id, client_name, loan_type, loan_name, deduction_bank,
		       parameters, created_at, updated_at
		FROM books.loan_audits
		WHERE user_id = $1 AND client_name = $2 AND loan_name = $3`
	return r.scanLoanAudit(r.db.QueryRow(query, userID, clientName, loanName))
}

// FindLoanAuditByID retrieves one of a user's loan audits by id
func (r *Repository) FindLoanAuditByID(id, userID int64) (*models.LoanAudit, error) {
	query := `
		SELECT id, user_id, client_name, loan_type, loan_name, deduction_bank,
		       parameters, created_at, updated_at
		FROM books.loan_audits
		WHERE id = $1 AND user_id = $2`
	return r.scanLoanAudit(r.db.QueryRow(query, id, userID))
}

// ListLoanAuditsByUser retrieves a user's loan audits, most recently
// updated first
func (r *Repository) ListLoanAuditsByUser(userID int64) ([]models.LoanAudit, error) {
	query := `
		SELECT id, user_id, client_name, loan_type, loan_name, deduction_bank,
		       parameters, created_at, updated_at
		FROM books.loan_audits
		WHERE user_id = $1
		ORDER BY updated_at DESC`
	return r.listLoanAudits(query, userID)
}

// ListAllLoanAudits retrieves every loan audit across all users. Used by
// the reminder job, which scans the full table.
func (r *Repository) ListAllLoanAudits() ([]models.LoanAudit, error) {
	query := `
		SELECT id, user_id, client_name, loan_type, loan_name, deduction_bank,
		       parameters, created_at, updated_at
		FROM books.loan_audits
		ORDER BY id`
	return r.listLoanAudits(query)
}

// DeleteLoanAudit removes one of a user's loan audits
func (r *Repository) DeleteLoanAudit(id, userID int64) error {
	res, err := r.db.Exec(`DELETE FROM books.loan_audits WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete loan audit: %w", err)
	}
	return requireRowAffected(res)
}

func (r *Repository) listLoanAudits(query string, args ...interface{}) ([]models.LoanAudit, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list loan audits: %w", err)
	}
	defer rows.Close()

	audits := []models.LoanAudit{}
	for rows.Next() {
		var a models.LoanAudit
		var params []byte
		if err := rows.Scan(&a.ID, &a.UserID, &a.ClientName, &a.LoanType,
			&a.LoanName, &a.DeductionBank, &params, &a.CreatedAt,
			&a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan loan audit: %w", err)
		}
		if err := json.Unmarshal(params, &a.Parameters); err != nil {
			return nil, fmt.Errorf("failed to unmarshal loan parameters: %w", err)
		}
		audits = append(audits, a)
	}
	return audits, rows.Err()
}

func (r *Repository) scanLoanAudit(row *sql.Row) (*models.LoanAudit, error) {
	a := &models.LoanAudit{}
	var params []byte
	err := row.Scan(&a.ID, &a.UserID, &a.ClientName, &a.LoanType, &a.LoanName,
		&a.DeductionBank, &params, &a.CreatedAt, &a.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find loan audit: %w", err)
	}
	if err := json.Unmarshal(params, &a.Parameters); err != nil {
		return nil, fmt.Errorf("failed to unmarshal loan parameters: %w", err)
	}
	return a, nil
}
