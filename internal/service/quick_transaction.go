package service

import (
	"fmt"

	"github.com/darshan/books-service/internal/models"
)

// CreateQuickTransaction validates and creates an ad-hoc transaction
func (s *Service) CreateQuickTransaction(q *models.QuickTransaction) error {
	if q.TotalTon <= 0 {
		return fmt.Errorf("%w: total ton must be positive", models.ErrValidation)
	}
	if q.TransactionDate.IsZero() {
		return fmt.Errorf("%w: transaction date is required", models.ErrValidation)
	}
	return s.repo.CreateQuickTransaction(q)
}

// ListQuickTransactions returns all ad-hoc transactions
func (s *Service) ListQuickTransactions() ([]models.QuickTransaction, error) {
	return s.repo.ListQuickTransactions()
}

// GetQuickTransaction returns an ad-hoc transaction by id
func (s *Service) GetQuickTransaction(id int64) (*models.QuickTransaction, error) {
	return s.repo.FindQuickTransactionByID(id)
}

// UpdateQuickTransaction validates and updates an ad-hoc transaction
func (s *Service) UpdateQuickTransaction(q *models.QuickTransaction) error {
	if q.TotalTon <= 0 {
		return fmt.Errorf("%w: total ton must be positive", models.ErrValidation)
	}
	return s.repo.UpdateQuickTransaction(q)
}

// DeleteQuickTransaction removes an ad-hoc transaction by id
func (s *Service) DeleteQuickTransaction(id int64) error {
	return s.repo.DeleteQuickTransaction(id)
}
