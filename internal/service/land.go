package service

import (
	"context"
	"fmt"

	"github.com/darshan/books-service/internal/models"
)

// CreateLandEntry validates and creates a land entry for the
// authenticated user
func (s *Service) CreateLandEntry(ctx context.Context, e *models.LandEntry) error {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}
	if err := validateLandEntry(e); err != nil {
		return err
	}
	e.UserID = userID
	return s.repo.CreateLandEntry(e)
}

// ListLandEntries returns the authenticated user's land entries
func (s *Service) ListLandEntries(ctx context.Context) ([]models.LandEntry, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.ListLandEntriesByUser(userID)
}

// GetLandEntry returns one of the authenticated user's land entries
func (s *Service) GetLandEntry(ctx context.Context, id int64) (*models.LandEntry, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.FindLandEntryByID(id, userID)
}

// UpdateLandEntry updates one of the authenticated user's land entries
func (s *Service) UpdateLandEntry(ctx context.Context, e *models.LandEntry) error {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}
	if err := validateLandEntry(e); err != nil {
		return err
	}
	e.UserID = userID
	return s.repo.UpdateLandEntry(e)
}

// DeleteLandEntry removes one of the authenticated user's land entries
func (s *Service) DeleteLandEntry(ctx context.Context, id int64) error {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.repo.DeleteLandEntry(id, userID)
}

func validateLandEntry(e *models.LandEntry) error {
	if e.Name == "" {
		return fmt.Errorf("%w: name is required", models.ErrValidation)
	}
	if e.LandType != "construction" && e.LandType != "direct_sell" {
		return fmt.Errorf("%w: land type must be construction or direct_sell", models.ErrValidation)
	}
	if e.MyParticipation < 0 || e.MyParticipation > 100 {
		return fmt.Errorf("%w: participation must be between 0 and 100", models.ErrValidation)
	}
	return nil
}
