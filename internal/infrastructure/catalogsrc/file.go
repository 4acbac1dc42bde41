// Package catalogsrc loads catalog data from YAML files and remote JSON documents.
package catalogsrc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/winepair/backend/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileSource reads catalog data from a YAML file
type FileSource struct {
	path string
}

// NewFileSource creates a source for the YAML file at path
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Load reads and decodes the file
func (s *FileSource) Load(ctx context.Context) (*domain.CatalogData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	data, err := DecodeYAML(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return data, nil
}

// DecodeYAML decodes a catalog document. Unknown fields are rejected.
func DecodeYAML(r io.Reader) (*domain.CatalogData, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var data domain.CatalogData
	if err := dec.Decode(&data); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", domain.ErrCatalogInvalid)
		}
		if errors.Is(err, domain.ErrCatalogInvalid) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogInvalid, err)
	}
	return &data, nil
}

var _ domain.CatalogSource = (*FileSource)(nil)
