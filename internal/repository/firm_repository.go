package repository

import (
	"database/sql"
	"fmt"

	"github.com/darshan/books-service/internal/models"
)

// CreateFirm creates a new firm in the database
func (r *Repository) CreateFirm(firm *models.Firm) error {
	query := `
		INSERT INTO books.firms (firm_name, contact_person, address, city, phone_number, email)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.db.QueryRow(query, firm.FirmName, firm.ContactPerson, firm.Address,
		firm.City, firm.PhoneNumber, firm.Email).Scan(&firm.ID)
	if err != nil {
		return fmt.Errorf("failed to create firm: %w", err)
	}
	return nil
}

// ListFirms retrieves all firms ordered by name
func (r *Repository) ListFirms() ([]models.Firm, error) {
	query := `
		SELECT id, firm_name, contact_person, address, city, phone_number, email
		FROM books.firms
		ORDER BY firm_name`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list firms: %w", err)
	}
	defer rows.Close()

	firms := []models.Firm{}
	for rows.Next() {
		var f models.Firm
		if err := rows.Scan(&f.ID, &f.FirmName, &f.ContactPerson, &f.Address,
			&f.City, &f.PhoneNumber, &f.Email); err != nil {
			return nil, fmt.Errorf("failed to scan firm: %w", err)
		}
		firms = append(firms, f)
	}
	return firms, rows.Err()
}

// FindFirmByID retrieves a firm by id
func (r *Repository) FindFirmByID(id int64) (*models.Firm, error) {
	f := &models.Firm{}
	query := `
		SELECT id, firm_name, contact_person, address, city, phone_number, email
		FROM books.firms
		WHERE id = $1`
	err := r.db.QueryRow(query, id).Scan(&f.ID, &f.FirmName, &f.ContactPerson,
		&f.Address, &f.City, &f.PhoneNumber, &f.Email)
	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find firm: %w", err)
	}
	return f, nil
}

// UpdateFirm updates an existing firm
func (r *Repository) UpdateFirm(firm *models.Firm) error {
	query := `
		UPDATE books.firms
		SET firm_name = $1, contact_person = $2, address = $3, city = $4,
		    phone_number = $5, email = $6
		WHERE id = $7`
	res, err := r.db.Exec(query, firm.FirmName, firm.ContactPerson, firm.Address,
		firm.City, firm.PhoneNumber, firm.Email, firm.ID)
	if err != nil {
		return fmt.Errorf("failed to update firm: %w", err)
	}
	return requireRowAffected(res)
}

// DeleteFirm removes a firm by id
func (r *Repository) DeleteFirm(id int64) error {
	res, err := r.db.Exec(`DELETE FROM books.firms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete firm: %w", err)
	}
	return requireRowAffected(res)
}

// requireRowAffected converts a zero-row update or delete into ErrNotFound.
func requireRowAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return models.ErrNotFound
	}
	return nil
}
