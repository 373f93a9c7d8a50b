package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"accented name", "João", "joao"},
		{"mixed case", "SALVAÇÃO", "salvacao"},
		{"cedilla and tilde", "Coração não", "coracao nao"},
		{"already plain", "sal da terra", "sal da terra"},
		{"punctuation kept", "Olá, mundo!", "ola, mundo!"},
		{"decomposed input", "João", "joao"},
		{"digits", "Salmo 23", "salmo 23"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"João e Maria",
		"ÀÉÎÕÜ çñ",
		"Ελληνικά",
		"İstanbul",
		"Ångström Å",
		"emoji \U0001F642 e acentuação",
	}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestNormalize_KeepsMarksOutsideDiacriticalBlock(t *testing.T) {
	// U+20D7 is a combining mark outside U+0300-U+036F.
	in := "a⃗"
	assert.Equal(t, in, Normalize(in))
}
