package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/sercha-captions/internal/core/domain"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []domain.SearchTerm
	}{
		{
			name:  "quoted then free",
			query: "'sal' terra",
			want: []domain.SearchTerm{
				{Term: "sal", Exact: true},
				{Term: "terra", Exact: false},
			},
		},
		{
			name:  "comma separated",
			query: "sal, terra",
			want: []domain.SearchTerm{
				{Term: "sal", Exact: false},
				{Term: "terra", Exact: false},
			},
		},
		{
			name:  "quoted phrase keeps spaces",
			query: "'sal da terra'",
			want: []domain.SearchTerm{
				{Term: "sal da terra", Exact: true},
			},
		},
		{
			name:  "double quotes",
			query: `luz "do mundo" cidade`,
			want: []domain.SearchTerm{
				{Term: "luz"},
				{Term: "do mundo", Exact: true},
				{Term: "cidade"},
			},
		},
		{
			name:  "periods are separators",
			query: "sal.terra.",
			want: []domain.SearchTerm{
				{Term: "sal"},
				{Term: "terra"},
			},
		},
		{
			name:  "inner content trimmed",
			query: "'  sal  '",
			want: []domain.SearchTerm{
				{Term: "sal", Exact: true},
			},
		},
		{
			name:  "empty quotes dropped",
			query: `'' "  " terra`,
			want: []domain.SearchTerm{
				{Term: "terra"},
			},
		},
		{
			name:  "mismatched quotes are not a phrase",
			query: `'sal terra"`,
			want: []domain.SearchTerm{
				{Term: "sal"},
				{Term: "terra"},
			},
		},
		{
			name:  "blank",
			query: "  , . ",
			want:  []domain.SearchTerm{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.query))
		})
	}
}
