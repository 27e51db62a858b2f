// Package catalog provides the read-mostly registry of known node types and
// their parameter schemas. The pipeline only reads it; loading happens at
// startup or through the indexer binary.
package catalog

import (
	"context"
	"errors"

	"github.com/ugnislab/flowgen/pkg/models"
)

// ErrNodeTypeNotFound is returned when a node type is not in the catalog.
var ErrNodeTypeNotFound = errors.New("node type not found")

// Catalog is the read side used by validation, prompting and the HTTP API.
type Catalog interface {
	// Get resolves a fully-qualified node type string.
	Get(ctx context.Context, nodeType string) (*models.NodeDefinition, error)
	// List returns up to limit definitions in stable (type-sorted) order.
	List(ctx context.Context, limit int) ([]models.NodeDefinition, error)
	// Search matches text case-insensitively against type, name and
	// display name.
	Search(ctx context.Context, text string, limit int) ([]models.NodeDefinition, error)
	// Len reports how many definitions the catalog holds.
	Len(ctx context.Context) (int, error)
}

// Writer is the load side used by the definition loader.
type Writer interface {
	Upsert(ctx context.Context, def models.NodeDefinition) error
}

// IsNodeTypeNotFound reports whether err means an unknown node type.
func IsNodeTypeNotFound(err error) bool {
	return errors.Is(err, ErrNodeTypeNotFound)
}
