package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCorpus(t *testing.T) {
	tests := []struct {
		in      string
		want    Corpus
		wantErr bool
	}{
		{"", CorpusSubtitles, false},
		{"subtitles", CorpusSubtitles, false},
		{" Verses ", CorpusVerses, false},
		{"videos", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCorpus(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnsupportedType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSearchOptions_DefaultValues(t *testing.T) {
	opts := SearchOptions{}

	assert.Empty(t, opts.Corpus)
	assert.Empty(t, opts.Version)
	assert.Equal(t, 0, opts.Limit)
}
