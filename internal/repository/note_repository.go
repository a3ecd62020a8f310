package repository

import (
	"database/sql"
	"fmt"

	"github.com/darshan/books-service/internal/models"
)

// CreateNote creates a new note for a user
func (r *Repository) CreateNote(n *models.Note) error {
	query := `
		INSERT INTO books.notes (user_id, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query, n.UserID, n.Title, n.Content).
		Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}
	return nil
}

// ListNotesByUser retrieves a user's notes, most recently updated first
func (r *Repository) ListNotesByUser(userID int64) ([]models.Note, error) {
	query := `
		SELECT id, user_id, title, content, created_at, updated_at
		FROM books.notes
		WHERE user_id = $1
		ORDER BY updated_at DESC`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := []models.Note{}
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Content,
			&n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

// FindNoteByID retrieves one of a user's notes by id
func (r *Repository) FindNoteByID(id, userID int64) (*models.Note, error) {
	n := &models.Note{}
	query := `
		SELECT id, user_id, title, content, created_at, updated_at
		FROM books.notes
		WHERE id = $1 AND user_id = $2`
	err := r.db.QueryRow(query, id, userID).Scan(&n.ID, &n.UserID, &n.Title,
		&n.Content, &n.CreatedAt, &n.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find note: %w", err)
	}
	return n, nil
}

// UpdateNote updates one of a user's notes
func (r *Repository) UpdateNote(n *models.Note) error {
	query := `
		UPDATE books.notes
		SET title = $1, content = $2, updated_at = CURRENT_TIMESTAMP
		WHERE id = $3 AND user_id = $4`
	res, err := r.db.Exec(query, n.Title, n.Content, n.ID, n.UserID)
	if err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}
	return requireRowAffected(res)
}

// DeleteNote removes one of a user's notes
func (r *Repository) DeleteNote(id, userID int64) error {
	res, err := r.db.Exec(`DELETE FROM books.notes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return requireRowAffected(res)
}
