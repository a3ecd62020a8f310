package service

import (
	"fmt"

	"github.com/darshan/books-service/internal/models"
)

// CreateFirm validates and creates a new firm
func (s *Service) CreateFirm(firm *models.Firm) error {
	if firm.FirmName == "" || firm.PhoneNumber == "" {
		return fmt.Errorf("%w: firm name and phone number are required", models.ErrValidation)
	}
	if len(firm.PhoneNumber) > 10 {
		return fmt.Errorf("%w: phone number must be at most 10 digits", models.ErrValidation)
	}
	if err := s.repo.CreateFirm(firm); err != nil {
		return err
	}
	s.log.Infof("Firm created: %s", firm.FirmName)
	return nil
}

// ListFirms returns all firms
func (s *Service) ListFirms() ([]models.Firm, error) {
	return s.repo.ListFirms()
}

// GetFirm returns a firm by id
func (s *Service) GetFirm(id int64) (*models.Firm, error) {
	return s.repo.FindFirmByID(id)
}

// UpdateFirm validates and updates a firm
func (s *Service) UpdateFirm(firm *models.Firm) error {
	if firm.FirmName == "" || firm.PhoneNumber == "" {
		return fmt.Errorf("%w: firm name and phone number are required", models.ErrValidation)
	}
	return s.repo.UpdateFirm(firm)
}

// DeleteFirm removes a firm by id
func (s *Service) DeleteFirm(id int64) error {
	return s.repo.DeleteFirm(id)
}
