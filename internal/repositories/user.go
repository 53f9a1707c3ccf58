package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/Atulkumarjha/JusPay-sub000/internal/logger"
	"github.com/Atulkumarjha/JusPay-sub000/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsernameOrEmail looks up a user by username and/or email.
// Returns (nil, nil) when no user matches.
func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.UserDB, error) {
	const query = `
		SELECT user_id, username, email, password_hash, created_at, updated_at
		FROM users
		WHERE ($1::VARCHAR IS NULL OR username = $1)
		  AND ($2::VARCHAR IS NULL OR email = $2)
		LIMIT 1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &user, query, username, email)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, email},
		"result", user.Username,
		"error", err,
	)

	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user and returns the generated user id.
func (r *UserWriteRepository) Save(ctx context.Context, username, passwordHash, email string) (uuid.UUID, error) {
	query := `
		INSERT INTO users (user_id, username, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING user_id
	`
	userID := uuid.New()
	args := []any{userID, username, email, passwordHash}

	var saved uuid.UUID
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &saved, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", saved,
		"error", err,
	)

	if err != nil {
		return uuid.Nil, err
	}
	return saved, nil
}
