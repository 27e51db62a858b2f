package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/ugnislab/flowgen/pkg/models"
)

// PostgresCatalog persists node definitions in a single table. Parameter
// specs are stored as a JSONB column so the schema survives new spec fields.
type PostgresCatalog struct {
	db *sql.DB
}

// NewPostgresCatalog opens the database, pings it and creates the table if
// it does not exist yet.
func NewPostgresCatalog(ctx context.Context, databaseURL string) (*PostgresCatalog, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open catalog database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping catalog database: %w", err)
	}

	c := &PostgresCatalog{db: db}
	if err := c.migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

func (c *PostgresCatalog) migrate(ctx context.Context) error {
	_, err := c.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS node_definitions (
			type         TEXT PRIMARY KEY,
			name         TEXT NOT NULL,
			display_name TEXT NOT NULL DEFAULT '',
			description  TEXT NOT NULL DEFAULT '',
			category     TEXT NOT NULL DEFAULT '',
			subcategory  TEXT NOT NULL DEFAULT '',
			icon         TEXT NOT NULL DEFAULT '',
			version      TEXT NOT NULL DEFAULT '',
			parameters   JSONB NOT NULL DEFAULT '[]'
		)`)
	if err != nil {
		return fmt.Errorf("create node_definitions table: %w", err)
	}
	return nil
}

func (c *PostgresCatalog) Close() error { return c.db.Close() }

func (c *PostgresCatalog) Upsert(ctx context.Context, def models.NodeDefinition) error {
	params, err := json.Marshal(def.Parameters)
	if err != nil {
		return fmt.Errorf("encode parameters for %s: %w", def.Type, err)
	}
	_, err = c.db.ExecContext(ctx, `
		INSERT INTO node_definitions
			(type, name, display_name, description, category, subcategory, icon, version, parameters)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (type) DO UPDATE SET
			name = EXCLUDED.name,
			display_name = EXCLUDED.display_name,
			description = EXCLUDED.description,
			category = EXCLUDED.category,
			subcategory = EXCLUDED.subcategory,
			icon = EXCLUDED.icon,
			version = EXCLUDED.version,
			parameters = EXCLUDED.parameters`,
		def.Type, def.Name, def.DisplayName, def.Description,
		def.Category, def.Subcategory, def.Icon, def.Version, params)
	if err != nil {
		return fmt.Errorf("upsert %s: %w", def.Type, err)
	}
	return nil
}

func (c *PostgresCatalog) Get(ctx context.Context, nodeType string) (*models.NodeDefinition, error) {
	row := c.db.QueryRowContext(ctx, selectColumns+` WHERE type = $1`, nodeType)
	def, err := scanDefinition(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNodeTypeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &def, nil
}

func (c *PostgresCatalog) List(ctx context.Context, limit int) ([]models.NodeDefinition, error) {
	rows, err := c.db.QueryContext(ctx, selectColumns+` ORDER BY type LIMIT $1`, normalizeLimit(limit))
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

func (c *PostgresCatalog) Search(ctx context.Context, text string, limit int) ([]models.NodeDefinition, error) {
	pattern := "%" + text + "%"
	rows, err := c.db.QueryContext(ctx, selectColumns+`
		WHERE type ILIKE $1 OR name ILIKE $1 OR display_name ILIKE $1 OR description ILIKE $1
		ORDER BY type LIMIT $2`, pattern, normalizeLimit(limit))
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

func (c *PostgresCatalog) Len(ctx context.Context) (int, error) {
	var n int
	err := c.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM node_definitions`).Scan(&n)
	return n, err
}

const selectColumns = `
	SELECT type, name, display_name, description, category, subcategory, icon, version, parameters
	FROM node_definitions`

type scanner interface {
	Scan(dest ...any) error
}

func scanDefinition(row scanner) (models.NodeDefinition, error) {
	var def models.NodeDefinition
	var params []byte
	err := row.Scan(&def.Type, &def.Name, &def.DisplayName, &def.Description,
		&def.Category, &def.Subcategory, &def.Icon, &def.Version, &params)
	if err != nil {
		return def, err
	}
	if err := json.Unmarshal(params, &def.Parameters); err != nil {
		return def, fmt.Errorf("decode parameters for %s: %w", def.Type, err)
	}
	return def, nil
}

func collect(rows *sql.Rows) ([]models.NodeDefinition, error) {
	defer rows.Close()
	var out []models.NodeDefinition
	for rows.Next() {
		def, err := scanDefinition(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, def)
	}
	return out, rows.Err()
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return 500
	}
	return limit
}
