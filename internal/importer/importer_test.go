package importer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"review-platform/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubRow struct {
	populated bool
}

func (r stubRow) Scan(dest ...any) error {
	*dest[0].(*bool) = r.populated
	return nil
}

// stubDB answers population checks per table and records whether a
// transaction was ever opened.
type stubDB struct {
	database.PgxIface

	populated  map[string]bool
	beginCalls int
}

func (db *stubDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	for table, populated := range db.populated {
		if strings.Contains(sql, "FROM "+table) {
			return stubRow{populated: populated}
		}
	}
	return stubRow{}
}

func (db *stubDB) Begin(ctx context.Context) (pgx.Tx, error) {
	db.beginCalls++
	return nil, errors.New("transactions are not available in this test")
}

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	src := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(src, []byte(content), 0o644))
	return src
}

func TestRun_AlreadyPopulatedTableAborts(t *testing.T) {
	src := writeFixture(t, "category.csv", "id,name,slug\n1,Films,films\n")
	db := &stubDB{populated: map[string]bool{"categories": true}}

	imp := NewImporter(db, zap.NewNop())
	err := imp.Run(context.Background(), []Step{
		{Model: models["category"], Source: src},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "model category is already populated")
	assert.Zero(t, db.beginCalls, "nothing should be written")
}

func TestRun_MissingFileAbortsBeforeLoading(t *testing.T) {
	src := writeFixture(t, "category.csv", "id,name,slug\n1,Films,films\n")
	db := &stubDB{}

	// The second step's file does not exist; the first step must not be
	// loaded either, since the whole plan is validated up front.
	imp := NewImporter(db, zap.NewNop())
	err := imp.Run(context.Background(), []Step{
		{Model: models["category"], Source: src},
		{Model: models["genre"], Source: filepath.Join(t.TempDir(), "genre.csv")},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot parse file")
	assert.Contains(t, err.Error(), "genre.csv")
	assert.Zero(t, db.beginCalls, "nothing should be written")
}
