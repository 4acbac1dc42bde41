package catalogsrc

import (
	"fmt"

	"github.com/winepair/backend/config"
	"github.com/winepair/backend/internal/catalog"
	"github.com/winepair/backend/internal/domain"
)

// NewSource picks the catalog source named by cfg.Source
func NewSource(cfg config.CatalogConfig, debug bool) (domain.CatalogSource, error) {
	switch cfg.Source {
	case "", config.SourceBuiltin:
		return catalog.BuiltinSource{}, nil
	case config.SourceFile:
		return NewFileSource(cfg.Path), nil
	case config.SourceHTTP:
		client := NewClient(cfg.URL, cfg.Timeout)
		client.SetDebug(debug)
		return client, nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Source)
	}
}
