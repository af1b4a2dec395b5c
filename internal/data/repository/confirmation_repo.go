package repository

import (
	"context"
	"fmt"

	"review-platform/internal/data/entity"
	"review-platform/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ConfirmationCodeRepository interface {
	Create(ctx context.Context, code *entity.ConfirmationCode) error
	FindLatestValid(ctx context.Context, userID int64) (*entity.ConfirmationCode, error)
	DeleteForUser(ctx context.Context, userID int64) error
}

type confirmationCodeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewConfirmationCodeRepository(db database.PgxIface, log *zap.Logger) ConfirmationCodeRepository {
	return &confirmationCodeRepository{
		db:  db,
		log: log.With(zap.String("repository", "confirmation_code")),
	}
}

func (r *confirmationCodeRepository) Create(ctx context.Context, code *entity.ConfirmationCode) error {
	query := `
		INSERT INTO confirmation_codes (user_id, code_hash, expires_at, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		code.UserID,
		code.CodeHash,
		code.ExpiresAt,
		code.CreatedAt,
	).Scan(&code.ID)

	if err != nil {
		r.log.Error("Failed to create confirmation code",
			zap.Error(err),
			zap.Int64("user_id", code.UserID),
		)
		return fmt.Errorf("create confirmation code for user %d: %w", code.UserID, err)
	}

	return nil
}

func (r *confirmationCodeRepository) FindLatestValid(ctx context.Context, userID int64) (*entity.ConfirmationCode, error) {
	query := `
		SELECT id, user_id, code_hash, expires_at, created_at
		FROM confirmation_codes
		WHERE user_id = $1 AND expires_at > NOW()
		ORDER BY created_at DESC
		LIMIT 1
	`

	var code entity.ConfirmationCode
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&code.ID,
		&code.UserID,
		&code.CodeHash,
		&code.ExpiresAt,
		&code.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find confirmation code",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find confirmation code for user %d: %w", userID, err)
	}

	return &code, nil
}

func (r *confirmationCodeRepository) DeleteForUser(ctx context.Context, userID int64) error {
	query := `DELETE FROM confirmation_codes WHERE user_id = $1`

	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		r.log.Error("Failed to delete confirmation codes",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return fmt.Errorf("delete confirmation codes for user %d: %w", userID, err)
	}

	return nil
}
