package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmployerName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercases and strips spaces", "ACME Construction", "acmeconstruction"},
		{"strips ltd suffix", "ACME Construction Ltd", "acmeconstruction"},
		{"strips inc suffix", "Acme Inc", "acme"},
		{"strips corp suffix", "Acme Corp.", "acme"},
		{"strips hash marker", "Store #42", "42"},
		{"strips punctuation", "O'Brien & Sons!", "obriensons"},
		{"leftmost-first leaves corporation residue", "Corporation", "oration"},
		{"concatenation can recreate a marker", "Quin Creations", "quincreations"},
		{"empty input", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeEmployerName(tt.input))
		})
	}
}

func TestLooksLikePersonalPayor(t *testing.T) {
	tests := []struct {
		name       string
		descriptor string
		want       bool
	}{
		{"two-token personal name", "John Smith", true},
		{"single token", "JSMITH", true},
		{"corporate marker inc", "Acme Inc", false},
		{"corporate marker ltd", "SMITH LTD", false},
		{"corporate marker corp", "Initech Corp", false},
		{"three tokens", "International Business Machines", false},
		{"marker inside a word", "Lincoln Group", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LooksLikePersonalPayor(tt.descriptor))
		})
	}
}
