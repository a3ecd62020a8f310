package service

import (
	"fmt"

	"github.com/darshan/books-service/internal/models"
)

// CreateTransaction validates and creates a ton-based transaction
func (s *Service) CreateTransaction(t *models.Transaction) error {
	if t.RoNumber == "" {
		return fmt.Errorf("%w: RO number is required", models.ErrValidation)
	}
	if t.TotalTon <= 0 {
		return fmt.Errorf("%w: total ton must be positive", models.ErrValidation)
	}
	if t.TransactionDate.IsZero() {
		return fmt.Errorf("%w: transaction date is required", models.ErrValidation)
	}
	if _, err := s.repo.FindFirmByID(t.FirmID); err != nil {
		return err
	}
	if _, err := s.repo.FindVehicleByID(t.VehicleID); err != nil {
		return err
	}
	if err := s.repo.CreateTransaction(t); err != nil {
		return err
	}
	s.log.Infof("Transaction created: RO %s (firm %d, vehicle %d)", t.RoNumber, t.FirmID, t.VehicleID)
	return nil
}

// ListTransactions returns transactions, optionally filtered by firm (0 = all)
func (s *Service) ListTransactions(firmID int64) ([]models.Transaction, error) {
	return s.repo.ListTransactions(firmID)
}

// GetTransaction returns a transaction by id
func (s *Service) GetTransaction(id int64) (*models.Transaction, error) {
	return s.repo.FindTransactionByID(id)
}

// UpdateTransaction validates and updates a transaction
func (s *Service) UpdateTransaction(t *models.Transaction) error {
	if t.RoNumber == "" {
		return fmt.Errorf("%w: RO number is required", models.ErrValidation)
	}
	return s.repo.UpdateTransaction(t)
}

// DeleteTransaction removes a transaction by id
func (s *Service) DeleteTransaction(id int64) error {
	return s.repo.DeleteTransaction(id)
}
