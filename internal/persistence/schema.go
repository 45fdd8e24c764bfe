package persistence

import (
	"context"
	"embed"
	"fmt"
	"path"
	"sort"

	"go.uber.org/zap"

	"github.com/spec-kit/employee-service/internal/repository"
)

//go:embed sql/*.sql
var schemaFiles embed.FS

// ApplySchema creates the employees table when it does not exist yet. The
// statements are idempotent and run on every connect.
func ApplySchema(ctx context.Context, db repository.Database, logger *zap.Logger) error {
	entries, err := schemaFiles.ReadDir("sql")
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}

	filenames := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		filenames = append(filenames, entry.Name())
	}

	sort.Strings(filenames)

	for _, name := range filenames {
		content, err := schemaFiles.ReadFile(path.Join("sql", name))
		if err != nil {
			return fmt.Errorf("read schema %s: %w", name, err)
		}

		logger.Debug("applying schema", zap.String("file", name))
		if _, err := db.Exec(ctx, string(content)); err != nil {
			return fmt.Errorf("apply schema %s: %w", name, err)
		}
	}

	logger.Info("schema applied", zap.Int("count", len(filenames)))
	return nil
}
