package manifest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/sercha-captions/internal/core/domain"
	"github.com/custodia-labs/sercha-captions/internal/core/ports/driven"
)

// Ensure Catalog implements the interface.
var _ driven.SourceCatalog = (*Catalog)(nil)

// ErrInvalidManifest indicates the file could not be used as a catalog.
var ErrInvalidManifest = errors.New("manifest: invalid")

type file struct {
	Documents []entry `yaml:"documents"`
}

type entry struct {
	ID          string         `yaml:"id"`
	SubtitleURL string         `yaml:"subtitle_url"`
	Title       string         `yaml:"title"`
	Metadata    map[string]any `yaml:"metadata"`
}

// Catalog reads the manifest on every List so edits are picked up by the
// next ingest run.
type Catalog struct {
	path string
}

// NewCatalog creates a catalog for the manifest at path.
func NewCatalog(path string) *Catalog {
	return &Catalog{path: path}
}

// Name identifies the catalog.
func (c *Catalog) Name() string {
	return "manifest:" + c.path
}

// List returns the manifest entries in file order.
func (c *Catalog) List(_ context.Context) ([]domain.SourceDocument, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(data)
}

// Parse decodes manifest YAML. IDs must be present and unique.
func Parse(data []byte) ([]domain.SourceDocument, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}

	seen := make(map[string]int, len(f.Documents))
	sources := make([]domain.SourceDocument, 0, len(f.Documents))
	for i, e := range f.Documents {
		id := strings.TrimSpace(e.ID)
		if id == "" {
			return nil, fmt.Errorf("%w: document %d has no id", ErrInvalidManifest, i)
		}
		if prev, dup := seen[id]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q (documents %d and %d)", ErrInvalidManifest, id, prev, i)
		}
		seen[id] = i

		sources = append(sources, domain.SourceDocument{
			ID:          id,
			SubtitleURL: strings.TrimSpace(e.SubtitleURL),
			Title:       e.Title,
			Metadata:    e.Metadata,
		})
	}
	return sources, nil
}
