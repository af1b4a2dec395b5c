package database

import (
	"context"
	"fmt"

	"review-platform/migrations"
)

// Migrate applies the embedded schema. Every statement is idempotent
// (CREATE ... IF NOT EXISTS) so running it against a populated database
// is a no-op.
func Migrate(ctx context.Context, db PgxIface) error {
	scripts, err := migrations.Scripts()
	if err != nil {
		return err
	}

	for _, script := range scripts {
		if _, err := db.Exec(ctx, script); err != nil {
			return fmt.Errorf("apply migration: %w", err)
		}
	}

	return nil
}
