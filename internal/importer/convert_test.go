package importer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConvertTitle(t *testing.T) {
	row, err := convertTitle(map[string]string{
		"id": "17", "name": "Dune", "year": "1984", "category": "1",
	})
	require.NoError(t, err)
	require.Len(t, row, 4)

	assert.Equal(t, int64(17), row[0])
	assert.Equal(t, "Dune", row[1])
	assert.Equal(t, int64(1984), row[2])
	require.NotNil(t, row[3])
	assert.Equal(t, int64(1), *(row[3].(*int64)))
}

func TestConvertTitle_NoCategory(t *testing.T) {
	row, err := convertTitle(map[string]string{
		"id": "17", "name": "Dune", "year": "1984", "category": "",
	})
	require.NoError(t, err)
	assert.Nil(t, row[3].(*int64))
}

func TestConvertReview(t *testing.T) {
	row, err := convertReview(map[string]string{
		"id":       "1",
		"title_id": "14",
		"text":     "worth a read",
		"author":   "3",
		"score":    "8",
		"pub_date": "2019-09-24T21:08:21.567Z",
	})
	require.NoError(t, err)
	require.Len(t, row, 6)

	assert.Equal(t, int64(14), row[1])
	assert.Equal(t, int64(3), row[2])
	assert.Equal(t, "worth a read", row[3])
	assert.Equal(t, int64(8), row[4])

	pubDate := row[5].(time.Time)
	assert.Equal(t, 2019, pubDate.Year())
}

func TestConvertReview_BadTimestamp(t *testing.T) {
	_, err := convertReview(map[string]string{
		"id": "1", "title_id": "1", "text": "x", "author": "1",
		"score": "5", "pub_date": "yesterday",
	})
	assert.Error(t, err)
}

func TestConvertUser_Nullables(t *testing.T) {
	row, err := convertUser(map[string]string{
		"id": "2", "username": "nemo", "email": "nemo@example.com",
		"role": "", "bio": "", "first_name": "Jules", "last_name": "",
	})
	require.NoError(t, err)

	assert.Equal(t, "user", row[3], "empty role defaults to user")
	assert.Nil(t, row[4].(*string))
	assert.Equal(t, "Jules", *(row[5].(*string)))
	assert.Nil(t, row[6].(*string))
}

func TestConvertCategory_MissingID(t *testing.T) {
	_, err := convertCategory(map[string]string{"name": "Films", "slug": "films"})
	assert.Error(t, err)
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "category.csv")
	require.NoError(t, os.WriteFile(src, []byte("id,name,slug\n1,Films,films\n2,Books,books\n"), 0o644))

	imp := NewImporter(nil, zap.NewNop())
	rows, err := imp.parseFile(Step{Model: models["category"], Source: src})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []any{int64(1), "Films", "films"}, rows[0])
	assert.Equal(t, []any{int64(2), "Books", "books"}, rows[1])
}

func TestParseFile_ConverterErrorNamesLine(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "category.csv")
	require.NoError(t, os.WriteFile(src, []byte("id,name,slug\none,Films,films\n"), 0o644))

	imp := NewImporter(nil, zap.NewNop())
	_, err := imp.parseFile(Step{Model: models["category"], Source: src})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}
