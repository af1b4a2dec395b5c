package importer

import (
	"fmt"
	"strconv"
	"time"
)

// The converters map a header-keyed CSV record onto the column order
// declared in the registry. Header names follow the original dataset:
// foreign keys arrive as "category" and "author", not "_id" suffixed.

func convertCategory(rec map[string]string) ([]any, error) {
	id, err := intField(rec, "id")
	if err != nil {
		return nil, err
	}
	return []any{id, rec["name"], rec["slug"]}, nil
}

func convertGenre(rec map[string]string) ([]any, error) {
	id, err := intField(rec, "id")
	if err != nil {
		return nil, err
	}
	return []any{id, rec["name"], rec["slug"]}, nil
}

func convertTitle(rec map[string]string) ([]any, error) {
	id, err := intField(rec, "id")
	if err != nil {
		return nil, err
	}
	year, err := intField(rec, "year")
	if err != nil {
		return nil, err
	}
	categoryID, err := optionalIntField(rec, "category")
	if err != nil {
		return nil, err
	}
	return []any{id, rec["name"], year, categoryID}, nil
}

func convertTitleGenre(rec map[string]string) ([]any, error) {
	id, err := intField(rec, "id")
	if err != nil {
		return nil, err
	}
	titleID, err := intField(rec, "title_id")
	if err != nil {
		return nil, err
	}
	genreID, err := intField(rec, "genre_id")
	if err != nil {
		return nil, err
	}
	return []any{id, titleID, genreID}, nil
}

func convertUser(rec map[string]string) ([]any, error) {
	id, err := intField(rec, "id")
	if err != nil {
		return nil, err
	}
	role := rec["role"]
	if role == "" {
		role = "user"
	}
	return []any{
		id,
		rec["username"],
		rec["email"],
		role,
		nullableField(rec, "bio"),
		nullableField(rec, "first_name"),
		nullableField(rec, "last_name"),
	}, nil
}

func convertReview(rec map[string]string) ([]any, error) {
	id, err := intField(rec, "id")
	if err != nil {
		return nil, err
	}
	titleID, err := intField(rec, "title_id")
	if err != nil {
		return nil, err
	}
	authorID, err := intField(rec, "author")
	if err != nil {
		return nil, err
	}
	score, err := intField(rec, "score")
	if err != nil {
		return nil, err
	}
	pubDate, err := timeField(rec, "pub_date")
	if err != nil {
		return nil, err
	}
	return []any{id, titleID, authorID, rec["text"], score, pubDate}, nil
}

func convertComment(rec map[string]string) ([]any, error) {
	id, err := intField(rec, "id")
	if err != nil {
		return nil, err
	}
	reviewID, err := intField(rec, "review_id")
	if err != nil {
		return nil, err
	}
	authorID, err := intField(rec, "author")
	if err != nil {
		return nil, err
	}
	pubDate, err := timeField(rec, "pub_date")
	if err != nil {
		return nil, err
	}
	return []any{id, reviewID, authorID, rec["text"], pubDate}, nil
}

func intField(rec map[string]string, key string) (int64, error) {
	raw, ok := rec[key]
	if !ok || raw == "" {
		return 0, fmt.Errorf("missing %q value", key)
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %q value %q: %w", key, raw, err)
	}
	return v, nil
}

func optionalIntField(rec map[string]string, key string) (*int64, error) {
	raw, ok := rec[key]
	if !ok || raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %q value %q: %w", key, raw, err)
	}
	return &v, nil
}

func nullableField(rec map[string]string, key string) *string {
	raw, ok := rec[key]
	if !ok || raw == "" {
		return nil
	}
	return &raw
}

func timeField(rec map[string]string, key string) (time.Time, error) {
	raw, ok := rec[key]
	if !ok || raw == "" {
		return time.Time{}, fmt.Errorf("missing %q value", key)
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %q value %q: %w", key, raw, err)
	}
	return t, nil
}
