package importer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPlan_CallerOrderPreserved(t *testing.T) {
	steps, err := BuildPlan(
		[]string{"genre", "category"},
		[]string{"genre.csv", "category.csv"},
		false, "data")
	require.NoError(t, err)
	require.Len(t, steps, 2)

	// the plan must not reorder targets, even into dependency order
	assert.Equal(t, "genre", steps[0].Model.name)
	assert.Equal(t, "category", steps[1].Model.name)
	assert.Equal(t, filepath.Join("data", "genre.csv"), steps[0].Source)
}

func TestBuildPlan_TargetsAreCaseInsensitive(t *testing.T) {
	steps, err := BuildPlan(
		[]string{"Category", "TITLEGENRE"},
		[]string{"category.csv", "genre_title.csv"},
		false, "data")
	require.NoError(t, err)

	assert.Equal(t, "categories", steps[0].Model.table)
	assert.Equal(t, "title_genres", steps[1].Model.table)
}

func TestBuildPlan_UnknownModel(t *testing.T) {
	_, err := BuildPlan([]string{"actor"}, []string{"actor.csv"}, false, "data")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot find actor model")
}

func TestBuildPlan_CountMismatch(t *testing.T) {
	_, err := BuildPlan(
		[]string{"category", "genre"},
		[]string{"category.csv"},
		false, "data")
	assert.Error(t, err)
}

func TestBuildPlan_MissingFlags(t *testing.T) {
	_, err := BuildPlan(nil, []string{"category.csv"}, false, "data")
	assert.Error(t, err)

	_, err = BuildPlan([]string{"category"}, nil, false, "data")
	assert.Error(t, err)
}

func TestBuildPlan_Full(t *testing.T) {
	steps, err := BuildPlan(nil, nil, true, "fixtures")
	require.NoError(t, err)
	require.Len(t, steps, 7)

	// dependency order: referenced tables before the join table and the
	// user-generated content
	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = s.Model.name
	}
	assert.Equal(t, []string{
		"category", "genre", "title", "titlegenre", "user", "review", "comment",
	}, names)

	assert.Equal(t, filepath.Join("fixtures", "genre_title.csv"), steps[3].Source)
}
