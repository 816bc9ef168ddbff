package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/irfantayyib07/Henry-S-Repairs-BACKEND/internal/common"
	"github.com/irfantayyib07/Henry-S-Repairs-BACKEND/internal/domain/model"
)

type NoteRepository interface {
	List(ctx context.Context) ([]model.Note, error)
	FindByID(ctx context.Context, id string) (*model.Note, error)
	FindBySlug(ctx context.Context, slug string) (*model.Note, error)
	Create(ctx context.Context, note *model.Note) error
	Update(ctx context.Context, note *model.Note) error
	Delete(ctx context.Context, id string) error
	CountByUserID(ctx context.Context, tx *sql.Tx, userID string) (int, error)
}

type pgNoteRepository struct {
	db *sql.DB
}

func NewPgNoteRepository(db *sql.DB) NoteRepository {
	return &pgNoteRepository{db: db}
}

const noteColumns = `n.id, n.user_id, u.username, n.title, n.slug, n.body, n.ticket, n.completed, n.created_at, n.updated_at`

func scanNote(row interface{ Scan(...interface{}) error }) (*model.Note, error) {
	note := &model.Note{}
	err := row.Scan(
		&note.ID, &note.UserID, &note.Username, &note.Title, &note.Slug, &note.Text,
		&note.Ticket, &note.Completed, &note.CreatedAt, &note.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return note, nil
}

func (r *pgNoteRepository) List(ctx context.Context) ([]model.Note, error) {
	query := `SELECT ` + noteColumns + `
	          FROM notes n JOIN users u ON u.id = n.user_id
	          ORDER BY n.ticket`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgNoteRepository.List: %w", err)
	}
	defer rows.Close()

	notes := []model.Note{}
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, fmt.Errorf("pgNoteRepository.List: %w", err)
		}
		notes = append(notes, *note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgNoteRepository.List: %w", err)
	}
	return notes, nil
}

func (r *pgNoteRepository) FindByID(ctx context.Context, id string) (*model.Note, error) {
	query := `SELECT ` + noteColumns + `
	          FROM notes n JOIN users u ON u.id = n.user_id
	          WHERE n.id = $1`
	note, err := scanNote(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgNoteRepository.FindByID: %w", err)
	}
	return note, nil
}

func (r *pgNoteRepository) FindBySlug(ctx context.Context, slug string) (*model.Note, error) {
	query := `SELECT ` + noteColumns + `
	          FROM notes n JOIN users u ON u.id = n.user_id
	          WHERE n.slug = $1`
	note, err := scanNote(r.db.QueryRowContext(ctx, query, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("pgNoteRepository.FindBySlug: %w", err)
	}
	return note, nil
}

func (r *pgNoteRepository) Create(ctx context.Context, note *model.Note) error {
	query := `INSERT INTO notes (id, user_id, title, slug, body)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING ticket`
	err := r.db.QueryRowContext(ctx, query, note.ID, note.UserID, note.Title, note.Slug, note.Text).Scan(&note.Ticket)
	if err != nil {
		if common.IsUniqueViolation(err) {
			return fmt.Errorf("note with given title already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgNoteRepository.Create: %w", err)
	}
	return nil
}

func (r *pgNoteRepository) Update(ctx context.Context, note *model.Note) error {
	query := `UPDATE notes
	          SET user_id = $2, title = $3, slug = $4, body = $5, completed = $6, updated_at = now()
	          WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, note.ID, note.UserID, note.Title, note.Slug, note.Text, note.Completed)
	if err != nil {
		if common.IsUniqueViolation(err) {
			return fmt.Errorf("note with given title already exists: %w", common.ErrConflict)
		}
		return fmt.Errorf("pgNoteRepository.Update: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgNoteRepository.Update: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *pgNoteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("pgNoteRepository.Delete: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgNoteRepository.Delete: %w", err)
	}
	if affected == 0 {
		return common.ErrNotFound
	}
	return nil
}

// CountByUserID runs inside the caller's transaction so the delete
// precondition and the delete itself see the same snapshot.
func (r *pgNoteRepository) CountByUserID(ctx context.Context, tx *sql.Tx, userID string) (int, error) {
	var count int
	err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM notes WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("pgNoteRepository.CountByUserID: %w", err)
	}
	return count, nil
}
