package repository

import (
	"context"
	"fmt"

	"review-platform/pkg/database"

	"go.uber.org/zap"
)

type TitleGenreRepository interface {
	Add(ctx context.Context, titleID, genreID int64) error
	ReplaceForTitle(ctx context.Context, titleID int64, genreIDs []int64) error
}

type titleGenreRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTitleGenreRepository(db database.PgxIface, log *zap.Logger) TitleGenreRepository {
	return &titleGenreRepository{
		db:  db,
		log: log.With(zap.String("repository", "title_genre")),
	}
}

func (r *titleGenreRepository) Add(ctx context.Context, titleID, genreID int64) error {
	query := `
		INSERT INTO title_genres (title_id, genre_id)
		VALUES ($1, $2)
		ON CONFLICT ON CONSTRAINT unique_title_genre DO NOTHING
	`

	if _, err := r.db.Exec(ctx, query, titleID, genreID); err != nil {
		r.log.Error("Failed to add title genre",
			zap.Error(err),
			zap.Int64("title_id", titleID),
			zap.Int64("genre_id", genreID),
		)
		return fmt.Errorf("add genre %d to title %d: %w", genreID, titleID, err)
	}

	return nil
}

// ReplaceForTitle rewrites the title's genre set inside one transaction,
// used by PATCH on titles.
func (r *titleGenreRepository) ReplaceForTitle(ctx context.Context, titleID int64, genreIDs []int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin replace genres: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM title_genres WHERE title_id = $1`, titleID); err != nil {
		r.log.Error("Failed to clear title genres",
			zap.Error(err),
			zap.Int64("title_id", titleID),
		)
		return fmt.Errorf("clear genres for title %d: %w", titleID, err)
	}

	for _, genreID := range genreIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO title_genres (title_id, genre_id) VALUES ($1, $2)`,
			titleID, genreID)
		if err != nil {
			r.log.Error("Failed to insert title genre",
				zap.Error(err),
				zap.Int64("title_id", titleID),
				zap.Int64("genre_id", genreID),
			)
			return fmt.Errorf("insert genre %d for title %d: %w", genreID, titleID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit replace genres: %w", err)
	}

	return nil
}
