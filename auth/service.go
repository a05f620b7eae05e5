package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/schoolfinder-go/apperror"
	"github.com/user/schoolfinder-go/config"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// AuthService implements signup, login and principal resolution against the
// users table.
type AuthService struct {
	db         *pgxpool.Pool
	authConfig config.AuthConfig
}

// NewAuthService creates a new AuthService.
func NewAuthService(db *pgxpool.Pool, authConfig config.AuthConfig) *AuthService {
	return &AuthService{db: db, authConfig: authConfig}
}

// Signup creates a new user with a bcrypt-hashed credential. A duplicate
// email is reported as a conflict; uniqueness is enforced by the store's own
// constraint rather than a check-then-insert, so concurrent signups with the
// same email cannot race past each other.
func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (*User, error) {
	hashedPassword, err := HashPassword(req.Password)
	if err != nil {
		return nil, apperror.NewInternalError("failed to process credentials", err)
	}

	user := &User{
		Name:           strings.TrimSpace(req.Name),
		Email:          strings.ToLower(strings.TrimSpace(req.Email)),
		HashedPassword: hashedPassword,
	}

	query := `INSERT INTO users (name, email, password)
	          VALUES ($1, $2, $3)
	          RETURNING id, created_at`
	err = s.db.QueryRow(ctx, query, user.Name, user.Email, user.HashedPassword).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, apperror.NewConflictError("Email already exists", nil)
		}
		return nil, apperror.NewDatabaseError("failed to create user", err)
	}
	return user, nil
}

// Login verifies the credentials and issues a session token. Unknown email
// and wrong password produce the same generic error so the endpoint cannot
// be used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*User, *IssuedToken, error) {
	user, err := s.getUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperror.NewAuthError("Invalid credentials", nil)
		}
		log.Printf("database error during login: %v", err)
		return nil, nil, apperror.NewDatabaseError("failed to get user", err)
	}

	if !CheckPassword(req.Password, user.HashedPassword) {
		return nil, nil, apperror.NewAuthError("Invalid credentials", nil)
	}

	issued, err := GenerateToken(user.ID, []byte(s.authConfig.JWTSecret), s.authConfig.TokenDuration)
	if err != nil {
		return nil, nil, apperror.NewInternalError("failed to issue session token", err)
	}
	return user, issued, nil
}

// GetUserByID resolves a principal by identifier. It is used by the auth
// middleware to turn verified token claims into a live user.
func (s *AuthService) GetUserByID(ctx context.Context, id int64) (*User, error) {
	var user User
	query := `SELECT id, name, email, password, created_at FROM users WHERE id = $1`
	err := s.db.QueryRow(ctx, query, id).
		Scan(&user.ID, &user.Name, &user.Email, &user.HashedPassword, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("user with ID %d not found", id), nil)
		}
		return nil, apperror.NewDatabaseError("failed to get user by id", err)
	}
	return &user, nil
}

func (s *AuthService) getUserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	query := `SELECT id, name, email, password, created_at FROM users WHERE email = $1`
	err := s.db.QueryRow(ctx, query, strings.ToLower(strings.TrimSpace(email))).
		Scan(&user.ID, &user.Name, &user.Email, &user.HashedPassword, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
