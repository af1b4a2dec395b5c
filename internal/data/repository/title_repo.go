package repository

import (
	"context"
	"fmt"

	"review-platform/internal/data/entity"
	"review-platform/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// TitleFilter carries the list-endpoint query parameters. Zero values mean
// "no filter".
type TitleFilter struct {
	CategorySlug string
	GenreSlug    string
	Name         string
	Year         *int
}

type TitleRepository interface {
	Create(ctx context.Context, title *entity.Title) error
	FindByID(ctx context.Context, id int64) (*entity.Title, error)
	List(ctx context.Context, filter TitleFilter, limit, offset int) ([]*entity.Title, error)
	Count(ctx context.Context, filter TitleFilter) (int64, error)
	Update(ctx context.Context, title *entity.Title) error
	Delete(ctx context.Context, id int64) error
}

type titleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTitleRepository(db database.PgxIface, log *zap.Logger) TitleRepository {
	return &titleRepository{
		db:  db,
		log: log.With(zap.String("repository", "title")),
	}
}

func (r *titleRepository) Create(ctx context.Context, title *entity.Title) error {
	query := `
		INSERT INTO titles (name, year, description, category_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		title.Name,
		title.Year,
		title.Description,
		title.CategoryID,
	).Scan(&title.ID)

	if err != nil {
		r.log.Error("Failed to create title",
			zap.Error(err),
			zap.String("name", title.Name),
		)
		return fmt.Errorf("create title %s: %w", title.Name, err)
	}

	return nil
}

func (r *titleRepository) FindByID(ctx context.Context, id int64) (*entity.Title, error) {
	// Rating is the rounded average of the title's review scores,
	// null while no reviews exist.
	query := `
		SELECT t.id, t.name, t.year, t.description, t.category_id,
		       ROUND(AVG(r.score)::numeric, 1)::float8 AS rating
		FROM titles t
		LEFT JOIN reviews r ON r.title_id = t.id
		WHERE t.id = $1
		GROUP BY t.id
	`

	var title entity.Title
	err := r.db.QueryRow(ctx, query, id).Scan(
		&title.ID,
		&title.Name,
		&title.Year,
		&title.Description,
		&title.CategoryID,
		&title.Rating,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find title by ID",
			zap.Error(err),
			zap.Int64("title_id", id),
		)
		return nil, fmt.Errorf("find title by id %d: %w", id, err)
	}

	return &title, nil
}

func (r *titleRepository) List(ctx context.Context, filter TitleFilter, limit, offset int) ([]*entity.Title, error) {
	query := `
		SELECT t.id, t.name, t.year, t.description, t.category_id,
		       ROUND(AVG(r.score)::numeric, 1)::float8 AS rating
		FROM titles t
		LEFT JOIN reviews r ON r.title_id = t.id
		LEFT JOIN categories c ON c.id = t.category_id
		WHERE ($1 = '' OR c.slug = $1)
		  AND ($2 = '' OR EXISTS (
		      SELECT 1 FROM title_genres tg
		      INNER JOIN genres g ON g.id = tg.genre_id
		      WHERE tg.title_id = t.id AND g.slug = $2))
		  AND ($3 = '' OR t.name ILIKE '%' || $3 || '%')
		  AND ($4::int IS NULL OR t.year = $4)
		GROUP BY t.id
		ORDER BY t.id
		LIMIT $5 OFFSET $6
	`

	rows, err := r.db.Query(ctx, query,
		filter.CategorySlug,
		filter.GenreSlug,
		filter.Name,
		filter.Year,
		limit,
		offset,
	)
	if err != nil {
		r.log.Error("Failed to list titles",
			zap.Error(err),
			zap.String("category", filter.CategorySlug),
			zap.String("genre", filter.GenreSlug),
		)
		return nil, fmt.Errorf("list titles: %w", err)
	}
	defer rows.Close()

	var titles []*entity.Title
	for rows.Next() {
		var title entity.Title
		err := rows.Scan(
			&title.ID,
			&title.Name,
			&title.Year,
			&title.Description,
			&title.CategoryID,
			&title.Rating,
		)
		if err != nil {
			r.log.Error("Failed to scan title row", zap.Error(err))
			return nil, fmt.Errorf("scan title row: %w", err)
		}
		titles = append(titles, &title)
	}

	return titles, nil
}

func (r *titleRepository) Count(ctx context.Context, filter TitleFilter) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM titles t
		LEFT JOIN categories c ON c.id = t.category_id
		WHERE ($1 = '' OR c.slug = $1)
		  AND ($2 = '' OR EXISTS (
		      SELECT 1 FROM title_genres tg
		      INNER JOIN genres g ON g.id = tg.genre_id
		      WHERE tg.title_id = t.id AND g.slug = $2))
		  AND ($3 = '' OR t.name ILIKE '%' || $3 || '%')
		  AND ($4::int IS NULL OR t.year = $4)
	`

	var count int64
	err := r.db.QueryRow(ctx, query,
		filter.CategorySlug,
		filter.GenreSlug,
		filter.Name,
		filter.Year,
	).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count titles", zap.Error(err))
		return 0, fmt.Errorf("count titles: %w", err)
	}

	return count, nil
}

func (r *titleRepository) Update(ctx context.Context, title *entity.Title) error {
	query := `
		UPDATE titles
		SET name = $2, year = $3, description = $4, category_id = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		title.ID,
		title.Name,
		title.Year,
		title.Description,
		title.CategoryID,
	)

	if err != nil {
		r.log.Error("Failed to update title",
			zap.Error(err),
			zap.Int64("title_id", title.ID),
		)
		return fmt.Errorf("update title %d: %w", title.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("title %d not found", title.ID)
	}

	return nil
}

func (r *titleRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM titles WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete title",
			zap.Error(err),
			zap.Int64("title_id", id),
		)
		return fmt.Errorf("delete title %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("title %d not found", id)
	}

	r.log.Info("Title deleted", zap.Int64("title_id", id))
	return nil
}
