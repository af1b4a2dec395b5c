package importer

import (
	"fmt"
	"path/filepath"
	"strings"
)

// model describes one loadable table: the CLI name, the table and
// columns CopyFrom writes, and the converter turning a CSV record into
// a column-ordered row.
type model struct {
	name    string
	table   string
	file    string // default CSV file name used by --full
	columns []string
	convert func(rec map[string]string) ([]any, error)
}

// insertingOrder is the dependency-respecting load order used by --full.
// For explicit targets, the caller owns the ordering; a join table
// loaded before its referenced tables fails on the FK constraint.
var insertingOrder = []string{
	"category",
	"genre",
	"title",
	"titlegenre",
	"user",
	"review",
	"comment",
}

var models = map[string]model{
	"category": {
		name:    "category",
		table:   "categories",
		file:    "category.csv",
		columns: []string{"id", "name", "slug"},
		convert: convertCategory,
	},
	"genre": {
		name:    "genre",
		table:   "genres",
		file:    "genre.csv",
		columns: []string{"id", "name", "slug"},
		convert: convertGenre,
	},
	"title": {
		name:    "title",
		table:   "titles",
		file:    "titles.csv",
		columns: []string{"id", "name", "year", "category_id"},
		convert: convertTitle,
	},
	"titlegenre": {
		name:    "titlegenre",
		table:   "title_genres",
		file:    "genre_title.csv",
		columns: []string{"id", "title_id", "genre_id"},
		convert: convertTitleGenre,
	},
	"user": {
		name:    "user",
		table:   "users",
		file:    "users.csv",
		columns: []string{"id", "username", "email", "role", "bio", "first_name", "last_name"},
		convert: convertUser,
	},
	"review": {
		name:    "review",
		table:   "reviews",
		file:    "review.csv",
		columns: []string{"id", "title_id", "author_id", "text", "score", "pub_date"},
		convert: convertReview,
	},
	"comment": {
		name:    "comment",
		table:   "comments",
		file:    "comments.csv",
		columns: []string{"id", "review_id", "author_id", "text", "pub_date"},
		convert: convertComment,
	},
}

// Step pairs a resolved model with the CSV file to load it from.
type Step struct {
	Model  model
	Source string
}

// BuildPlan validates targets and sources and returns the load steps in
// caller order. With full set, both lists are ignored and every model is
// planned in dependency order.
func BuildPlan(targets, sources []string, full bool, dataDir string) ([]Step, error) {
	if full {
		targets = nil
		sources = nil
		for _, name := range insertingOrder {
			targets = append(targets, name)
			sources = append(sources, models[name].file)
		}
	}

	if len(targets) == 0 {
		return nil, fmt.Errorf("option --target must be specified")
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("option --source must be specified")
	}
	if len(targets) != len(sources) {
		return nil, fmt.Errorf("number of csv files and corresponding models should be the same (%d targets, %d sources)",
			len(targets), len(sources))
	}

	steps := make([]Step, 0, len(targets))
	for i, target := range targets {
		m, ok := models[strings.ToLower(target)]
		if !ok {
			return nil, fmt.Errorf("cannot find %s model", target)
		}
		steps = append(steps, Step{
			Model:  m,
			Source: filepath.Join(dataDir, sources[i]),
		})
	}

	return steps, nil
}
