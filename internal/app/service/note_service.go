package service

import (
	"context"
	"errors"
	"log"

	"github.com/irfantayyib07/Henry-S-Repairs-BACKEND/internal/common"
	"github.com/irfantayyib07/Henry-S-Repairs-BACKEND/internal/domain/model"
	"github.com/irfantayyib07/Henry-S-Repairs-BACKEND/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// NoteCache caches the note list between writes. A nil-safe implementation
// is injected from the platform layer.
type NoteCache interface {
	GetList(ctx context.Context) ([]model.Note, error)
	SetList(ctx context.Context, notes []model.Note) error
	InvalidateAll(ctx context.Context) error
}

type NoteService struct {
	noteRepo repository.NoteRepository
	userRepo repository.UserRepository
	cache    NoteCache
}

func NewNoteService(noteRepo repository.NoteRepository, userRepo repository.UserRepository, cache NoteCache) *NoteService {
	return &NoteService{noteRepo: noteRepo, userRepo: userRepo, cache: cache}
}

type CreateNoteRequest struct {
	UserID string `json:"user"`
	Title  string `json:"title"`
	Text   string `json:"text"`
}

type UpdateNoteRequest struct {
	ID        string `json:"id"`
	UserID    string `json:"user"`
	Title     string `json:"title"`
	Text      string `json:"text"`
	Completed *bool  `json:"completed"`
}

type DeleteNoteRequest struct {
	ID string `json:"id"`
}

// List returns all notes with their assignee's username, cache-aside with
// invalidation on every write.
func (s *NoteService) List(ctx context.Context) ([]model.Note, error) {
	if s.cache != nil {
		cached, err := s.cache.GetList(ctx)
		if err != nil {
			log.Printf("WARN: note cache read failed: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	notes, err := s.noteRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetList(ctx, notes); err != nil {
			log.Printf("WARN: note cache write failed: %v", err)
		}
	}
	return notes, nil
}

func (s *NoteService) GetBySlug(ctx context.Context, noteSlug string) (*model.Note, error) {
	return s.noteRepo.FindBySlug(ctx, noteSlug)
}

func (s *NoteService) Create(ctx context.Context, req CreateNoteRequest) (*model.Note, error) {
	if req.UserID == "" || req.Title == "" || req.Text == "" {
		return nil, common.Errorf("all fields are required: %w", common.ErrValidation)
	}

	// The assignee must exist before a ticket can point at them.
	if _, err := s.userRepo.FindByID(ctx, req.UserID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.Errorf("assigned user not found: %w", common.ErrNotFound)
		}
		return nil, err
	}

	note := &model.Note{
		ID:     uuid.NewString(),
		UserID: req.UserID,
		Title:  req.Title,
		Slug:   slug.Make(req.Title),
		Text:   req.Text,
	}

	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return note, nil
}

func (s *NoteService) Update(ctx context.Context, req UpdateNoteRequest) (*model.Note, error) {
	if req.ID == "" || req.UserID == "" || req.Title == "" || req.Text == "" || req.Completed == nil {
		return nil, common.Errorf("all fields are required: %w", common.ErrValidation)
	}

	note, err := s.noteRepo.FindByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if _, err := s.userRepo.FindByID(ctx, req.UserID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.Errorf("assigned user not found: %w", common.ErrNotFound)
		}
		return nil, err
	}

	note.UserID = req.UserID
	note.Title = req.Title
	note.Slug = slug.Make(req.Title)
	note.Text = req.Text
	note.Completed = *req.Completed

	if err := s.noteRepo.Update(ctx, note); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return note, nil
}

func (s *NoteService) Delete(ctx context.Context, req DeleteNoteRequest) (*model.Note, error) {
	if req.ID == "" {
		return nil, common.Errorf("note ID is required: %w", common.ErrValidation)
	}

	note, err := s.noteRepo.FindByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := s.noteRepo.Delete(ctx, req.ID); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return note, nil
}

func (s *NoteService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateAll(ctx); err != nil {
		log.Printf("WARN: note cache invalidation failed: %v", err)
	}
}
