package core

import (
	"context"
	"fmt"
	"io"

	"cafe/internal/db"
)

const (
	catalogSelectSQL = `SELECT M.itemName AS Name, M.price AS Price, M.description AS Types FROM Menu M`

	catalogByCategorySQL = catalogSelectSQL + ` WHERE M.type = $1`

	catalogByNameSQL = catalogSelectSQL + ` WHERE M.itemName = $1`
)

// CatalogService reads the Menu table. The Print methods write rows to w
// with a header and return how many items were printed.
type CatalogService interface {
	PrintCategory(ctx context.Context, w io.Writer, category MenuCategory) (int, error)
	PrintByName(ctx context.Context, w io.Writer, itemName string) (int, error)
}

type catalogService struct {
	exec db.Executor
}

// NewCatalogService constructs a CatalogService on top of exec.
func NewCatalogService(exec db.Executor) CatalogService {
	return &catalogService{exec: exec}
}

func (s *catalogService) PrintCategory(ctx context.Context, w io.Writer, category MenuCategory) (int, error) {
	n, err := s.exec.ExecuteQueryAndPrint(ctx, w, catalogByCategorySQL, string(category))
	if err != nil {
		return n, fmt.Errorf("failed to list category %q: %w", category, err)
	}
	return n, nil
}

func (s *catalogService) PrintByName(ctx context.Context, w io.Writer, itemName string) (int, error) {
	n, err := s.exec.ExecuteQueryAndPrint(ctx, w, catalogByNameSQL, itemName)
	if err != nil {
		return n, fmt.Errorf("failed to look up item %q: %w", itemName, err)
	}
	return n, nil
}
