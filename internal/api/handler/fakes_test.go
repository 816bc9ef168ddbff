package handler

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/irfantayyib07/Henry-S-Repairs-BACKEND/internal/common"
	"github.com/irfantayyib07/Henry-S-Repairs-BACKEND/internal/domain/model"

	"github.com/DATA-DOG/go-sqlmock"
)

type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*model.User{}}
}

func (f *fakeUserRepo) List(ctx context.Context) ([]model.User, error) {
	out := []model.User{}
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	for _, u := range f.users {
		if u.Username == user.Username {
			return fmt.Errorf("user with given username already exists: %w", common.ErrConflict)
		}
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *model.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return common.ErrNotFound
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) FindByIDTx(ctx context.Context, tx *sql.Tx, id string) (*model.User, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeUserRepo) Delete(ctx context.Context, tx *sql.Tx, id string) error {
	if _, ok := f.users[id]; !ok {
		return common.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

type fakeNoteRepo struct {
	notes map[string]*model.Note
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: map[string]*model.Note{}}
}

func (f *fakeNoteRepo) List(ctx context.Context) ([]model.Note, error) {
	out := []model.Note{}
	for _, n := range f.notes {
		out = append(out, *n)
	}
	return out, nil
}

func (f *fakeNoteRepo) FindByID(ctx context.Context, id string) (*model.Note, error) {
	n, ok := f.notes[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	copied := *n
	return &copied, nil
}

func (f *fakeNoteRepo) FindBySlug(ctx context.Context, slug string) (*model.Note, error) {
	for _, n := range f.notes {
		if n.Slug == slug {
			copied := *n
			return &copied, nil
		}
	}
	return nil, common.ErrNotFound
}

func (f *fakeNoteRepo) Create(ctx context.Context, note *model.Note) error {
	for _, n := range f.notes {
		if n.Title == note.Title {
			return fmt.Errorf("note with given title already exists: %w", common.ErrConflict)
		}
	}
	note.Ticket = int64(500 + len(f.notes))
	copied := *note
	f.notes[note.ID] = &copied
	return nil
}

func (f *fakeNoteRepo) Update(ctx context.Context, note *model.Note) error {
	if _, ok := f.notes[note.ID]; !ok {
		return common.ErrNotFound
	}
	copied := *note
	f.notes[note.ID] = &copied
	return nil
}

func (f *fakeNoteRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.notes[id]; !ok {
		return common.ErrNotFound
	}
	delete(f.notes, id)
	return nil
}

func (f *fakeNoteRepo) CountByUserID(ctx context.Context, tx *sql.Tx, userID string) (int, error) {
	count := 0
	for _, n := range f.notes {
		if n.UserID == userID {
			count++
		}
	}
	return count, nil
}

func newMockDB(t *testing.T) *sql.DB {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	mock.MatchExpectationsInOrder(false)
	// Delete flows open one transaction each; allow any number.
	for i := 0; i < 8; i++ {
		mock.ExpectBegin()
		mock.ExpectCommit()
		mock.ExpectRollback()
	}
	t.Cleanup(func() { db.Close() })
	return db
}
