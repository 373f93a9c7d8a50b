package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-captions/internal/core/domain"
)

func TestSourceCatalog_ListPreservesOrder(t *testing.T) {
	catalog := NewSourceCatalog(
		domain.SourceDocument{ID: "b"},
		domain.SourceDocument{ID: "a"},
	)
	catalog.Add(domain.SourceDocument{ID: "c"})

	sources, err := catalog.List(context.Background())
	require.NoError(t, err)
	require.Len(t, sources, 3)
	assert.Equal(t, "b", sources[0].ID)
	assert.Equal(t, "a", sources[1].ID)
	assert.Equal(t, "c", sources[2].ID)
	assert.Equal(t, "memory", catalog.Name())
}
