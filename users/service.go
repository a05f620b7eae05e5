package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/schoolfinder-go/apperror"
	"github.com/user/schoolfinder-go/auth"
)

const pgUniqueViolation = "23505"

// UserService provides profile management backed by the users table.
type UserService struct {
	db *pgxpool.Pool
}

// NewUserService creates a new UserService.
func NewUserService(db *pgxpool.Pool) *UserService {
	return &UserService{db: db}
}

// UpdateProfile applies the provided name/email changes and returns the
// updated user. A duplicate email surfaces as a conflict via the store's
// unique constraint.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req *UpdateProfileRequest) (*auth.User, error) {
	var setClauses []string
	var args []interface{}
	argID := 1

	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argID))
		args = append(args, strings.TrimSpace(*req.Name))
		argID++
	}
	if req.Email != nil && *req.Email != "" {
		setClauses = append(setClauses, fmt.Sprintf("email = $%d", argID))
		args = append(args, strings.ToLower(strings.TrimSpace(*req.Email)))
		argID++
	}

	if len(setClauses) == 0 {
		return s.getUserByID(ctx, userID)
	}

	args = append(args, userID)
	query := fmt.Sprintf(`
		UPDATE users
		SET %s
		WHERE id = $%d
		RETURNING id, name, email, created_at
	`, strings.Join(setClauses, ", "), argID)

	var updated auth.User
	err := s.db.QueryRow(ctx, query, args...).
		Scan(&updated.ID, &updated.Name, &updated.Email, &updated.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("user with ID %d not found", userID), nil)
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, apperror.NewConflictError("Email already exists", nil)
		}
		return nil, apperror.NewInternalError("Failed to update user profile", err)
	}
	return &updated, nil
}

// DeleteProfile removes the account.
func (s *UserService) DeleteProfile(ctx context.Context, userID int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return apperror.NewInternalError("Failed to delete user profile", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFoundError(fmt.Sprintf("user with ID %d not found", userID), nil)
	}
	return nil
}

func (s *UserService) getUserByID(ctx context.Context, userID int64) (*auth.User, error) {
	var user auth.User
	query := `SELECT id, name, email, created_at FROM users WHERE id = $1`
	err := s.db.QueryRow(ctx, query, userID).
		Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("user with ID %d not found", userID), nil)
		}
		return nil, apperror.NewInternalError("Failed to get user profile", err)
	}
	return &user, nil
}
