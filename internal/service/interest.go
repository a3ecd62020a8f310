package service

import (
	"context"
	"fmt"

	"github.com/darshan/books-service/internal/models"
)

// CreateInterestEntry validates and creates an interest entry for the
// authenticated user
func (s *Service) CreateInterestEntry(ctx context.Context, e *models.InterestEntry) error {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}
	if err := validateInterestEntry(e); err != nil {
		return err
	}
	e.UserID = userID
	return s.repo.CreateInterestEntry(e)
}

// ListInterestEntries returns the authenticated user's interest entries
func (s *Service) ListInterestEntries(ctx context.Context) ([]models.InterestEntry, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.ListInterestEntriesByUser(userID)
}

// GetInterestEntry returns one of the authenticated user's interest entries
func (s *Service) GetInterestEntry(ctx context.Context, id int64) (*models.InterestEntry, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.FindInterestEntryByID(id, userID)
}

// UpdateInterestEntry updates one of the authenticated user's interest entries
func (s *Service) UpdateInterestEntry(ctx context.Context, e *models.InterestEntry) error {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}
	if err := validateInterestEntry(e); err != nil {
		return err
	}
	e.UserID = userID
	return s.repo.UpdateInterestEntry(e)
}

// DeleteInterestEntry removes one of the authenticated user's interest entries
func (s *Service) DeleteInterestEntry(ctx context.Context, id int64) error {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.repo.DeleteInterestEntry(id, userID)
}

func validateInterestEntry(e *models.InterestEntry) error {
	if e.LenderName == "" {
		return fmt.Errorf("%w: lender name is required", models.ErrValidation)
	}
	if e.BorrowAmount <= 0 {
		return fmt.Errorf("%w: borrow amount must be positive", models.ErrValidation)
	}
	if e.CycleDay < 1 || e.CycleDay > 31 {
		return fmt.Errorf("%w: cycle day must be between 1 and 31", models.ErrValidation)
	}
	if e.BorrowDate.IsZero() {
		return fmt.Errorf("%w: borrow date is required", models.ErrValidation)
	}
	return nil
}
