package cmd

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ugnislab/flowgen/pkg/catalog"
)

// NewCatalog builds the node catalog for a command. A postgres:// database
// URL selects the SQL-backed catalog; anything else yields the in-memory
// catalog preloaded with the built-in definitions. When nodesPath is set the
// directory is loaded on top of the seed so local definition files win.
func NewCatalog(ctx context.Context, databaseURL, nodesPath string, logger *slog.Logger) catalog.Catalog {
	if isPostgresURL(databaseURL) {
		pg, err := catalog.NewPostgresCatalog(ctx, databaseURL)
		if err != nil {
			panic(err)
		}

		if nodesPath != "" {
			loadNodesDir(ctx, nodesPath, pg, logger)
		}

		return pg
	}

	mem := catalog.NewSeededCatalog()
	if nodesPath != "" {
		loadNodesDir(ctx, nodesPath, mem, logger)
	}

	return mem
}

func loadNodesDir(ctx context.Context, dir string, w catalog.Writer, logger *slog.Logger) {
	count, err := catalog.LoadDir(ctx, dir, w, logger)
	if err != nil {
		panic(err)
	}

	logger.Info("Loaded node definitions", "path", dir, "count", count)
}

func isPostgresURL(databaseURL string) bool {
	provider, _, found := strings.Cut(databaseURL, "://")
	if !found {
		return false
	}

	return provider == "postgres" || provider == "postgresql"
}
