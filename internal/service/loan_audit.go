package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/darshan/books-service/internal/models"
)

// SaveLoanAudit creates or updates a loan audit profile. The profile is
// keyed by (client name, loan name) within the owning user; saving an
// existing key updates the stored type, bank and parameters in place.
func (s *Service) SaveLoanAudit(ctx context.Context, audit *models.LoanAudit) (created bool, err error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return false, err
	}
	if audit.ClientName == "" || audit.LoanName == "" || audit.LoanType == "" {
		return false, fmt.Errorf("%w: client name, loan name and loan type are required", models.ErrValidation)
	}
	if audit.Parameters.EmiDate.IsZero() {
		return false, fmt.Errorf("%w: EMI date is required", models.ErrValidation)
	}
	audit.UserID = userID

	existing, err := s.repo.FindLoanAuditByName(userID, audit.ClientName, audit.LoanName)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return false, err
	}
	if existing != nil {
		audit.ID = existing.ID
		audit.CreatedAt = existing.CreatedAt
		if err := s.repo.UpdateLoanAudit(audit); err != nil {
			return false, err
		}
		s.log.Infof("Loan audit updated: %s / %s (user %d)", audit.ClientName, audit.LoanName, userID)
		return false, nil
	}

	if err := s.repo.CreateLoanAudit(audit); err != nil {
		return false, err
	}
	s.log.Infof("Loan audit created: %s / %s (user %d)", audit.ClientName, audit.LoanName, userID)
	return true, nil
}

// ListLoanAudits returns the authenticated user's loan audits, most
// recently updated first
func (s *Service) ListLoanAudits(ctx context.Context) ([]models.LoanAudit, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.ListLoanAuditsByUser(userID)
}

// GetLoanAudit returns one of the authenticated user's loan audits
func (s *Service) GetLoanAudit(ctx context.Context, id int64) (*models.LoanAudit, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.FindLoanAuditByID(id, userID)
}

// DeleteLoanAudit removes one of the authenticated user's loan audits
func (s *Service) DeleteLoanAudit(ctx context.Context, id int64) error {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.repo.DeleteLoanAudit(id, userID)
}
