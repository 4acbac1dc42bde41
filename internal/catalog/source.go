package catalog

import (
	"context"
	"fmt"

	"github.com/winepair/backend/internal/domain"
)

// Load builds a catalog from src. When the loaded data carries no keyword
// table, the built-in one is used.
func Load(ctx context.Context, src domain.CatalogSource) (*Catalog, error) {
	data, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	if len(data.Keywords) == 0 {
		data.Keywords = BuiltinKeywords()
	}
	return New(*data)
}

// BuiltinSource serves the reference data set
type BuiltinSource struct{}

// Load returns a copy of the reference data
func (BuiltinSource) Load(ctx context.Context) (*domain.CatalogData, error) {
	data := BuiltinData()
	return &data, nil
}

var _ domain.CatalogSource = BuiltinSource{}
