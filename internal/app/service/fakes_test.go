package service

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/irfantayyib07/Henry-S-Repairs-BACKEND/internal/common"
	"github.com/irfantayyib07/Henry-S-Repairs-BACKEND/internal/domain/model"

	"github.com/DATA-DOG/go-sqlmock"
)

// In-memory repositories mirroring the Postgres implementations, unique
// indexes included.

type fakeUserRepo struct {
	users map[string]*model.User // by id
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
			// What the unique index reports.
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
	for _, u := range f.users {
		if u.Username == user.Username && u.ID != user.ID {
			return fmt.Errorf("user with given username already exists: %w", common.ErrConflict)
		}
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
	notes      map[string]*model.Note // by id
	nextTicket int64
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: map[string]*model.Note{}, nextTicket: 500}
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
	note.Ticket = f.nextTicket
	f.nextTicket++
	copied := *note
	f.notes[note.ID] = &copied
	return nil
}

func (f *fakeNoteRepo) Update(ctx context.Context, note *model.Note) error {
	if _, ok := f.notes[note.ID]; !ok {
		return common.ErrNotFound
	}
	for _, n := range f.notes {
		if n.Title == note.Title && n.ID != note.ID {
			return fmt.Errorf("note with given title already exists: %w", common.ErrConflict)
		}
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

// fakeNoteCache records cache traffic for assertions.
type fakeNoteCache struct {
	list        []model.Note
	sets        int
	invalidates int
}

func (c *fakeNoteCache) GetList(ctx context.Context) ([]model.Note, error) { return c.list, nil }

func (c *fakeNoteCache) SetList(ctx context.Context, notes []model.Note) error {
	c.list = notes
	c.sets++
	return nil
}

func (c *fakeNoteCache) InvalidateAll(ctx context.Context) error {
	c.list = nil
	c.invalidates++
	return nil
}

func newUserService(t *testing.T, userRepo *fakeUserRepo, noteRepo *fakeNoteRepo) (*UserService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewUserService(userRepo, noteRepo, db), mock
}

func boolPtr(b bool) *bool { return &b }
