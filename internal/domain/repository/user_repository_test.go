package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/irfantayyib07/Henry-S-Repairs-BACKEND/internal/common"
	"github.com/irfantayyib07/Henry-S-Repairs-BACKEND/internal/domain/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func userRows(users ...model.User) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "username", "hashed_password", "roles", "active", "created_at", "updated_at"})
	for _, u := range users {
		rows.AddRow(u.ID, u.Username, u.HashedPassword, []byte(`["Employee"]`), u.Active, time.Now(), time.Now())
	}
	return rows
}

func TestPgUserRepositoryList(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, hashed_password, roles, active, created_at, updated_at FROM users ORDER BY username`)).
		WillReturnRows(userRows(
			model.User{ID: "u1", Username: "alice", HashedPassword: "h1", Active: true},
			model.User{ID: "u2", Username: "bob", HashedPassword: "h2", Active: false},
		))

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, "alice", users[0].Username)
	require.Equal(t, []string{"Employee"}, users[0].Roles)
	require.False(t, users[1].Active)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgUserRepositoryFindByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgUserRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), "missing")
	require.ErrorIs(t, err, common.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgUserRepositoryFindByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgUserRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE username").
		WithArgs("alice").
		WillReturnRows(userRows(model.User{ID: "u1", Username: "alice", HashedPassword: "h1", Active: true}))

	user, err := repo.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	require.Equal(t, "u1", user.ID)
	require.Equal(t, []string{"Employee"}, user.Roles)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgUserRepositoryCreate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgUserRepository(db)

	mock.ExpectExec("INSERT INTO users").
		WithArgs("u1", "alice", "hash", []byte(`["Employee"]`), true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &model.User{
		ID: "u1", Username: "alice", HashedPassword: "hash", Roles: []string{"Employee"}, Active: true,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgUserRepositoryCreateUniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgUserRepository(db)

	mock.ExpectExec("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), &model.User{
		ID: "u1", Username: "alice", HashedPassword: "hash", Roles: []string{"Employee"}, Active: true,
	})
	require.ErrorIs(t, err, common.ErrConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgUserRepositoryUpdateNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgUserRepository(db)

	mock.ExpectExec("UPDATE users").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &model.User{
		ID: "missing", Username: "alice", HashedPassword: "hash", Roles: []string{"Employee"}, Active: true,
	})
	require.ErrorIs(t, err, common.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgUserRepositoryUpdateUniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgUserRepository(db)

	mock.ExpectExec("UPDATE users").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Update(context.Background(), &model.User{
		ID: "u1", Username: "alice", HashedPassword: "hash", Roles: []string{"Employee"}, Active: true,
	})
	require.ErrorIs(t, err, common.ErrConflict)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgUserRepositoryDeleteTx(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM users").
		WithArgs("u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	require.NoError(t, repo.Delete(context.Background(), tx, "u1"))
	require.NoError(t, tx.Commit())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgUserRepositoryDeleteTxNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPgUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM users").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	require.ErrorIs(t, repo.Delete(context.Background(), tx, "missing"), common.ErrNotFound)
	require.NoError(t, tx.Rollback())
	require.NoError(t, mock.ExpectationsWereMet())
}
