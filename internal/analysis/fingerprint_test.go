package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint_Deterministic(t *testing.T) {
	text := "Vós sois o sal da terra"
	assert.Equal(t, Fingerprint(text), Fingerprint(text))
	assert.Len(t, Fingerprint(text), 64)
}

func TestFingerprint_Distinct(t *testing.T) {
	inputs := []string{"", " ", "sal", "Sal", "sal ", "salvação", "salvacao"}

	seen := map[string]string{}
	for _, in := range inputs {
		fp := Fingerprint(in)
		if prev, ok := seen[fp]; ok {
			t.Fatalf("collision between %q and %q", prev, in)
		}
		seen[fp] = in
	}
}
