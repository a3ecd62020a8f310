package repository

import (
	"fmt"
	"time"

	"github.com/darshan/books-service/internal/models"
)

// TransactionTonStats sums tonnage over transactions dated on or after since
func (r *Repository) TransactionTonStats(since time.Time) (*models.TonStats, error) {
	s := &models.TonStats{}
	query := `
		SELECT COALESCE(SUM(total_ton), 0), COALESCE(SUM(ro_ton), 0),
		       COALESCE(SUM(open_ton), 0), COUNT(*)
		FROM books.transactions
		WHERE transaction_date >= $1`
	err := r.db.QueryRow(query, since).Scan(&s.TotalTon, &s.RoTon, &s.OpenTon, &s.Count)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate ton stats: %w", err)
	}
	return s, nil
}

// TransactionAmountStats sums prices over transactions dated on or after since
func (r *Repository) TransactionAmountStats(since time.Time) (*models.AmountStats, error) {
	s := &models.AmountStats{}
	query := `
		SELECT COALESCE(SUM(total_price), 0), COALESCE(SUM(ro_price), 0),
		       COALESCE(SUM(open_price), 0), COUNT(*)
		FROM books.transactions
		WHERE transaction_date >= $1`
	err := r.db.QueryRow(query, since).Scan(&s.TotalAmount, &s.RoAmount, &s.OpenAmount, &s.Count)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate amount stats: %w", err)
	}
	return s, nil
}

// CountTransactionsSince counts transactions dated on or after since
func (r *Repository) CountTransactionsSince(since time.Time) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM books.transactions WHERE transaction_date >= $1`
	if err := r.db.QueryRow(query, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

// QuickTransactionTotals sums ad-hoc transactions dated on or after since
func (r *Repository) QuickTransactionTotals(since time.Time) (*models.QuickTotals, error) {
	s := &models.QuickTotals{}
	query := `
		SELECT COALESCE(SUM(total_ton), 0), COALESCE(SUM(ro_ton), 0),
		       COALESCE(SUM(open_ton), 0), COALESCE(SUM(total_amount), 0),
		       COALESCE(SUM(ro_amount), 0), COALESCE(SUM(open_amount), 0),
		       COALESCE(SUM(cash_amount), 0), COALESCE(SUM(online_amount), 0),
		       COUNT(*)
		FROM books.quick_transactions
		WHERE transaction_date >= $1`
	err := r.db.QueryRow(query, since).Scan(&s.TotalTon, &s.RoTon, &s.OpenTon,
		&s.TotalAmount, &s.RoAmount, &s.OpenAmount, &s.CashAmount,
		&s.OnlineAmount, &s.Count)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate quick transaction totals: %w", err)
	}
	return s, nil
}

// QuickPaymentSummary aggregates the cash/online amounts of ad-hoc
// transactions, optionally bounded by a date range (nil = unbounded), and
// breaks the online share down by payment details.
func (r *Repository) QuickPaymentSummary(from, to *time.Time) (*models.PaymentSummary, error) {
	s := &models.PaymentSummary{OnlineBreakdown: []models.PaymentMethodTotal{}}
	query := `
		SELECT COALESCE(SUM(total_amount), 0), COALESCE(SUM(cash_amount), 0),
		       COALESCE(SUM(online_amount), 0), COUNT(*)
		FROM books.quick_transactions
		WHERE ($1::date IS NULL OR transaction_date >= $1)
		  AND ($2::date IS NULL OR transaction_date <= $2)`
	err := r.db.QueryRow(query, from, to).Scan(&s.TotalAmount, &s.CashAmount, &s.OnlineAmount, &s.Count)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate payment summary: %w", err)
	}

	breakdown := `
		SELECT online_payment_details, SUM(online_amount), COUNT(*)
		FROM books.quick_transactions
		WHERE online_amount > 0
		  AND ($1::date IS NULL OR transaction_date >= $1)
		  AND ($2::date IS NULL OR transaction_date <= $2)
		GROUP BY online_payment_details
		ORDER BY SUM(online_amount) DESC`
	rows, err := r.db.Query(breakdown, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate online breakdown: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var b models.PaymentMethodTotal
		if err := rows.Scan(&b.PaymentMethod, &b.Amount, &b.Count); err != nil {
			return nil, fmt.Errorf("failed to scan online breakdown: %w", err)
		}
		if b.PaymentMethod == "" {
			b.PaymentMethod = "Unknown"
		}
		s.OnlineBreakdown = append(s.OnlineBreakdown, b)
	}
	return s, rows.Err()
}

// CountFirms counts all registered firms
func (r *Repository) CountFirms() (int64, error) {
	var count int64
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM books.firms`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count firms: %w", err)
	}
	return count, nil
}

// CountVehicles counts vehicles, optionally for one firm (0 = all)
func (r *Repository) CountVehicles(firmID int64) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM books.vehicles WHERE ($1 = 0 OR firm_id = $1)`
	if err := r.db.QueryRow(query, firmID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count vehicles: %w", err)
	}
	return count, nil
}
