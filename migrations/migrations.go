// Package migrations embeds the schema so both the server and the
// populatedb command can bootstrap an empty database.
package migrations

import (
	"embed"
	"fmt"
	"sort"
)

//go:embed *.sql
var files embed.FS

// Scripts returns the embedded migration scripts in filename order.
func Scripts() ([]string, error) {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("read migrations: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	scripts := make([]string, 0, len(names))
	for _, name := range names {
		data, err := files.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}
		scripts = append(scripts, string(data))
	}

	return scripts, nil
}
