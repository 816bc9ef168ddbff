package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/irfantayyib07/Henry-S-Repairs-BACKEND/internal/common"
	"github.com/irfantayyib07/Henry-S-Repairs-BACKEND/internal/common/security"
	"github.com/irfantayyib07/Henry-S-Repairs-BACKEND/internal/domain/model"
	"github.com/irfantayyib07/Henry-S-Repairs-BACKEND/internal/domain/repository"

	"github.com/google/uuid"
)

// UserService implements the user lifecycle: list, create, update, delete.
// Username uniqueness is enforced by the database's unique index; the insert
// error is the authoritative conflict signal. A user with assigned notes
// cannot be deleted.
type UserService struct {
	userRepo repository.UserRepository
	noteRepo repository.NoteRepository
	db       *sql.DB // For the delete transaction
}

func NewUserService(userRepo repository.UserRepository, noteRepo repository.NoteRepository, db *sql.DB) *UserService {
	return &UserService{userRepo: userRepo, noteRepo: noteRepo, db: db}
}

type CreateUserRequest struct {
	Username string   `json:"username"`
	Password string   `json:"password"`
	Roles    []string `json:"roles"`
}

type UpdateUserRequest struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	Active   *bool    `json:"active"`
	Password string   `json:"password,omitempty"`
}

type DeleteUserRequest struct {
	ID string `json:"id"`
}

// List returns all users. The password hash never leaves the model's
// json:"-" field. An empty collection is a normal empty-list result.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	return s.userRepo.List(ctx)
}

func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*model.User, error) {
	if req.Username == "" || req.Password == "" || len(req.Roles) == 0 {
		return nil, common.Errorf("all fields are required: %w", common.ErrValidation)
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:             uuid.NewString(),
		Username:       req.Username,
		HashedPassword: hashedPassword,
		Roles:          req.Roles,
		Active:         true,
	}

	// No pre-check: the unique index on username decides, which closes the
	// check-then-insert race window.
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, req UpdateUserRequest) (*model.User, error) {
	if req.ID == "" || req.Username == "" || len(req.Roles) == 0 || req.Active == nil {
		return nil, common.Errorf("all fields except password are required: %w", common.ErrValidation)
	}

	user, err := s.userRepo.FindByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	// Friendly conflict message when the username is held by someone else;
	// the unique index remains the backstop for the race window.
	duplicate, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}
	if duplicate != nil && duplicate.ID != req.ID {
		return nil, common.Errorf("username already taken: %w", common.ErrConflict)
	}

	user.Username = req.Username
	user.Roles = req.Roles
	user.Active = *req.Active
	if req.Password != "" {
		hashedPassword, err := security.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.HashedPassword = hashedPassword
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user. The notes precondition, the existence read, and the
// delete share one transaction so the check and the act see the same state.
func (s *UserService) Delete(ctx context.Context, req DeleteUserRequest) (*model.User, error) {
	if req.ID == "" {
		return nil, common.Errorf("user ID is required: %w", common.ErrValidation)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // Rollback if not committed

	count, err := s.noteRepo.CountByUserID(ctx, tx, req.ID)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, common.Errorf("user has assigned notes: %w", common.ErrPreconditionFailed)
	}

	user, err := s.userRepo.FindByIDTx(ctx, tx, req.ID)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.Delete(ctx, tx, req.ID); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return user, nil
}
