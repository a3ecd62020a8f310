package service

import (
	"fmt"

	"github.com/darshan/books-service/internal/models"
)

// CreatePricing validates and creates a new pricing record
func (s *Service) CreatePricing(p *models.Pricing) error {
	if p.RoTonPrice <= 0 || p.OpenTonPrice <= 0 {
		return fmt.Errorf("%w: ton prices must be positive", models.ErrValidation)
	}
	if p.EffectiveDate.IsZero() {
		return fmt.Errorf("%w: effective date is required", models.ErrValidation)
	}
	if _, err := s.repo.FindFirmByID(p.FirmID); err != nil {
		return err
	}
	return s.repo.CreatePricing(p)
}

// ListPricing returns pricing records, optionally filtered by firm (0 = all)
func (s *Service) ListPricing(firmID int64) ([]models.Pricing, error) {
	return s.repo.ListPricing(firmID)
}

// GetPricing returns a pricing record by id
func (s *Service) GetPricing(id int64) (*models.Pricing, error) {
	return s.repo.FindPricingByID(id)
}

// UpdatePricing validates and updates a pricing record
func (s *Service) UpdatePricing(p *models.Pricing) error {
	if p.RoTonPrice <= 0 || p.OpenTonPrice <= 0 {
		return fmt.Errorf("%w: ton prices must be positive", models.ErrValidation)
	}
	return s.repo.UpdatePricing(p)
}

// DeletePricing removes a pricing record by id
func (s *Service) DeletePricing(id int64) error {
	return s.repo.DeletePricing(id)
}
