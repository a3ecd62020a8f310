package repository

import (
	"database/sql"
	"fmt"

	"github.com/darshan/books-service/internal/models"
)

// CreatePricing creates a new pricing record
func (r *Repository) CreatePricing(p *models.Pricing) error {
	query := `
		INSERT INTO books.pricing (firm_id, ro_ton_price, open_ton_price, effective_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.db.QueryRow(query, p.FirmID, p.RoTonPrice, p.OpenTonPrice, p.EffectiveDate).
		Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("failed to create pricing: %w", err)
	}
	return nil
}

// ListPricing retrieves pricing records, optionally filtered by firm,
// newest effective date first
func (r *Repository) ListPricing(firmID int64) ([]models.Pricing, error) {
	query := `
		SELECT id, firm_id, ro_ton_price, open_ton_price, effective_date
		FROM books.pricing
		WHERE ($1 = 0 OR firm_id = $1)
		ORDER BY effective_date DESC`
	rows, err := r.db.Query(query, firmID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pricing: %w", err)
	}
	defer rows.Close()

	prices := []models.Pricing{}
	for rows.Next() {
		var p models.Pricing
		if err := rows.Scan(&p.ID, &p.FirmID, &p.RoTonPrice, &p.OpenTonPrice,
			&p.EffectiveDate); err != nil {
			return nil, fmt.Errorf("failed to scan pricing: %w", err)
		}
		prices = append(prices, p)
	}
	return prices, rows.Err()
}

// FindPricingByID retrieves a pricing record by id
func (r *Repository) FindPricingByID(id int64) (*models.Pricing, error) {
	p := &models.Pricing{}
	query := `
		SELECT id, firm_id, ro_ton_price, open_ton_price, effective_date
		FROM books.pricing
		WHERE id = $1`
	err := r.db.QueryRow(query, id).
		Scan(&p.ID, &p.FirmID, &p.RoTonPrice, &p.OpenTonPrice, &p.EffectiveDate)
	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find pricing: %w", err)
	}
	return p, nil
}

// UpdatePricing updates an existing pricing record
func (r *Repository) UpdatePricing(p *models.Pricing) error {
	query := `
		UPDATE books.pricing
		SET firm_id = $1, ro_ton_price = $2, open_ton_price = $3, effective_date = $4
		WHERE id = $5`
	res, err := r.db.Exec(query, p.FirmID, p.RoTonPrice, p.OpenTonPrice,
		p.EffectiveDate, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update pricing: %w", err)
	}
	return requireRowAffected(res)
}

// DeletePricing removes a pricing record by id
func (r *Repository) DeletePricing(id int64) error {
	res, err := r.db.Exec(`DELETE FROM books.pricing WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete pricing: %w", err)
	}
	return requireRowAffected(res)
}
