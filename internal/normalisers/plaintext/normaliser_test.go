package plaintext

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-captions/internal/core/domain"
)

func TestNormaliser_Metadata(t *testing.T) {
	n := New()
	assert.Equal(t, "plaintext", n.Name())
	assert.Contains(t, n.SupportedMIMETypes(), "text/plain")
	assert.Equal(t, []string{".txt"}, n.SupportedExtensions())
	assert.Equal(t, 1, n.Priority())
}

func TestNormaliser_Sniff(t *testing.T) {
	n := New()
	assert.True(t, n.Sniff([]byte("Olá mundo")))
	assert.False(t, n.Sniff([]byte{0xff, 0xfe, 0x00}))
}

func TestNormaliser_Normalise(t *testing.T) {
	content := "  Vós sois o sal da terra \r\n\r\nVós sois o sal da terra\nA luz do mundo\n"

	text, err := New().Normalise(context.Background(), &domain.Subtitle{Content: []byte(content)})
	require.NoError(t, err)
	assert.Equal(t, "Vós sois o sal da terra\nA luz do mundo", text)
}

func TestNormaliser_Normalise_InvalidUTF8(t *testing.T) {
	_, err := New().Normalise(context.Background(), &domain.Subtitle{Content: []byte{0xff, 0xfe}})
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestNormaliser_Normalise_Nil(t *testing.T) {
	_, err := New().Normalise(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
