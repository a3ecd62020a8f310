package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/darshan/books-service/internal/models"
)

// CreateLandEntry creates a new land deal entry
func (r *Repository) CreateLandEntry(e *models.LandEntry) error {
	txs, credits, expenses, err := marshalLandDetails(e)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO books.land_entries (user_id, name, survey_number, location,
			rate_of_land, total_land_area, fp, tp, my_participation, firm_name,
			land_type, scheme_name, transactions, credits, construction_expenses,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err = r.db.QueryRow(query, e.UserID, e.Name, e.SurveyNumber, e.Location,
		e.RateOfLand, e.TotalLandArea, e.FP, e.TP, e.MyParticipation,
		e.FirmName, e.LandType, e.SchemeName, txs, credits, expenses).
		Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create land entry: %w", err)
	}
	return nil
}

// ListLandEntriesByUser retrieves a user's land entries, newest first
func (r *Repository) ListLandEntriesByUser(userID int64) ([]models.LandEntry, error) {
	query := landEntryColumns + `
		WHERE user_id = $1
		ORDER BY created_at DESC`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list land entries: %w", err)
	}
	defer rows.Close()

	entries := []models.LandEntry{}
	for rows.Next() {
		e, err := scanLandEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, rows.Err()
}

// FindLandEntryByID retrieves one of a user's land entries by id
func (r *Repository) FindLandEntryByID(id, userID int64) (*models.LandEntry, error) {
	query := landEntryColumns + `
		WHERE id = $1 AND user_id = $2`
	row := r.db.QueryRow(query, id, userID)
	e, err := scanLandEntry(row.Scan)
	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound
	}
	return e, err
}

// UpdateLandEntry updates one of a user's land entries
func (r *Repository) UpdateLandEntry(e *models.LandEntry) error {
	txs, credits, expenses, err := marshalLandDetails(e)
	if err != nil {
		return err
	}
	query := `
		UPDATE books.land_entries
		SET name = $1, survey_number = $2, location = $3, rate_of_land = $4,
		    total_land_area = $5, fp = $6, tp = $7, my_participation = $8,
		    firm_name = $9, land_type = $10, scheme_name = $11,
		    transactions = $12, credits = $13, construction_expenses = $14,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $15 AND user_id = $16`
	res, err := r.db.Exec(query, e.Name, e.SurveyNumber, e.Location, e.RateOfLand,
		e.TotalLandArea, e.FP, e.TP, e.MyParticipation, e.FirmName, e.LandType,
		e.SchemeName, txs, credits, expenses, e.ID, e.UserID)
	if err != nil {
		return fmt.Errorf("failed to update land entry: %w", err)
	}
	return requireRowAffected(res)
}

// DeleteLandEntry removes one of a user's land entries
func (r *Repository) DeleteLandEntry(id, userID int64) error {
	res, err := r.db.Exec(`DELETE FROM books.land_entries WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete land entry: %w", err)
	}
	return requireRowAffected(res)
}

const landEntryColumns = `
		SELECT id, user_id, name, survey_number, location, rate_of_land,
		       total_land_area, fp, tp, my_participation, firm_name, land_type,
		       scheme_name, transactions, credits, construction_expenses,
		       created_at, updated_at
		FROM books.land_entries`

func marshalLandDetails(e *models.LandEntry) ([]byte, []byte, []byte, error) {
	if e.Transactions == nil {
		e.Transactions = []models.LandTransaction{}
	}
	if e.Credits == nil {
		e.Credits = []models.LandCredit{}
	}
	if e.ConstructionExpenses == nil {
		e.ConstructionExpenses = []models.ConstructionExpense{}
	}
	txs, err := json.Marshal(e.Transactions)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal land transactions: %w", err)
	}
	credits, err := json.Marshal(e.Credits)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal land credits: %w", err)
	}
	expenses, err := json.Marshal(e.ConstructionExpenses)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to marshal construction expenses: %w", err)
	}
	return txs, credits, expenses, nil
}

func scanLandEntry(scan func(...interface{}) error) (*models.LandEntry, error) {
	e := &models.LandEntry{}
	var txs, credits, expenses []byte
	err := scan(&e.ID, &e.UserID, &e.Name, &e.SurveyNumber, &e.Location,
		&e.RateOfLand, &e.TotalLandArea, &e.FP, &e.TP, &e.MyParticipation,
		&e.FirmName, &e.LandType, &e.SchemeName, &txs, &credits, &expenses,
		&e.CreatedAt, &e.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan land entry: %w", err)
	}
	if err := json.Unmarshal(txs, &e.Transactions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal land transactions: %w", err)
	}
	if err := json.Unmarshal(credits, &e.Credits); err != nil {
		return nil, fmt.Errorf("failed to unmarshal land credits: %w", err)
	}
	if err := json.Unmarshal(expenses, &e.ConstructionExpenses); err != nil {
		return nil, fmt.Errorf("failed to unmarshal construction expenses: %w", err)
	}
	return e, nil
}
