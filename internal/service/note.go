package service

import (
	"context"
	"fmt"

	"github.com/darshan/books-service/internal/models"
)

// CreateNote validates and creates a note for the authenticated user
func (s *Service) CreateNote(ctx context.Context, note *models.Note) error {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}
	if note.Title == "" || note.Content == "" {
		return fmt.Errorf("%w: title and content are required", models.ErrValidation)
	}
	note.UserID = userID
	return s.repo.CreateNote(note)
}

// ListNotes returns the authenticated user's notes
func (s *Service) ListNotes(ctx context.Context) ([]models.Note, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.ListNotesByUser(userID)
}

// GetNote returns one of the authenticated user's notes
func (s *Service) GetNote(ctx context.Context, id int64) (*models.Note, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.FindNoteByID(id, userID)
}

// UpdateNote updates one of the authenticated user's notes
func (s *Service) UpdateNote(ctx context.Context, note *models.Note) error {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}
	if note.Title == "" || note.Content == "" {
		return fmt.Errorf("%w: title and content are required", models.ErrValidation)
	}
	note.UserID = userID
	return s.repo.UpdateNote(note)
}

// DeleteNote removes one of the authenticated user's notes
func (s *Service) DeleteNote(ctx context.Context, id int64) error {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return err
	}
	return s.repo.DeleteNote(id, userID)
}
