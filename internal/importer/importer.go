package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"review-platform/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Importer bulk-loads CSV fixtures into the database. Each step runs in
// its own transaction; the caller is responsible for supplying targets
// in a dependency-respecting order, so FK violations propagate as
// constraint errors rather than being reordered away.
type Importer struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewImporter(db database.PgxIface, log *zap.Logger) *Importer {
	return &Importer{
		db:  db,
		log: log.With(zap.String("component", "importer")),
	}
}

// Run validates every step up front, then loads the files in order.
// Nothing is written until the whole plan passes validation.
func (imp *Importer) Run(ctx context.Context, steps []Step) error {
	for _, step := range steps {
		if _, err := os.Stat(step.Source); err != nil {
			return fmt.Errorf("cannot parse file %s", step.Source)
		}

		populated, err := imp.tableHasRows(ctx, step.Model.table)
		if err != nil {
			return err
		}
		if populated {
			return fmt.Errorf("model %s is already populated", step.Model.name)
		}
	}

	imp.log.Info("Plan validated, started extracting", zap.Int("steps", len(steps)))

	for _, step := range steps {
		count, err := imp.load(ctx, step)
		if err != nil {
			return fmt.Errorf("error while populating %s: %w",
				step.Model.name, database.DescribeConstraintError(err))
		}
		imp.log.Info("Table populated",
			zap.String("model", step.Model.name),
			zap.String("source", step.Source),
			zap.Int64("rows", count))
	}

	return nil
}

func (imp *Importer) load(ctx context.Context, step Step) (int64, error) {
	rows, err := imp.parseFile(step)
	if err != nil {
		return 0, err
	}

	tx, err := imp.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	count, err := tx.CopyFrom(ctx,
		pgx.Identifier{step.Model.table},
		step.Model.columns,
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, err
	}
	if count != int64(len(rows)) {
		return 0, fmt.Errorf("loaded %d of %d rows", count, len(rows))
	}

	// The fixtures carry explicit ids, so the identity sequence has to be
	// advanced past the highest one or the next API insert collides.
	bump := fmt.Sprintf(
		`SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT COALESCE(MAX(id), 1) FROM %s))`,
		step.Model.table, step.Model.table)
	if _, err := tx.Exec(ctx, bump); err != nil {
		return 0, fmt.Errorf("advance id sequence: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}

	return count, nil
}

// parseFile reads a CSV with a header row and converts every record
// through the model converter.
func (imp *Importer) parseFile(step Step) ([][]any, error) {
	f, err := os.Open(step.Source)
	if err != nil {
		return nil, fmt.Errorf("cannot parse file %s", step.Source)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", step.Source, err)
	}

	var rows [][]any
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s line %d: %w", step.Source, line, err)
		}

		rec := make(map[string]string, len(header))
		for i, key := range header {
			if i < len(record) {
				rec[key] = record[i]
			}
		}

		row, err := step.Model.convert(rec)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", step.Source, line, err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func (imp *Importer) tableHasRows(ctx context.Context, table string) (bool, error) {
	var populated bool
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s)", table)
	if err := imp.db.QueryRow(ctx, query).Scan(&populated); err != nil {
		return false, fmt.Errorf("check %s population: %w", table, err)
	}
	return populated, nil
}
