package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		code string
		want Language
	}{
		{"en", English},
		{"es", Spanish},
		{"es-MX", Spanish},
		{"en-US", English},
		{"fr", English},
		{"", English},
		{"not a language", English},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.code))
		})
	}
}

func TestNegotiate(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   Language
	}{
		{"prefers spanish", "es-419,es;q=0.9,en;q=0.8", Spanish},
		{"prefers english", "en-US,en;q=0.9", English},
		{"unsupported falls back", "de-DE,de;q=0.9", English},
		{"empty header", "", English},
		{"malformed header", ";;;", English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Negotiate(tt.header))
		})
	}
}

func TestT(t *testing.T) {
	assert.Equal(t, "Home", T("nav.home", English))
	assert.Equal(t, "Inicio", T("nav.home", Spanish))
	assert.Equal(t, "Plomería", T("services.plumbing.name", Spanish))

	// unknown keys fall back to the key itself
	assert.Equal(t, "nav.missing", T("nav.missing", English))
}

func TestTranslations(t *testing.T) {
	en := Translations(English)
	es := Translations(Spanish)

	assert.Equal(t, len(en), len(es), "both tables cover the same keys")
	for key := range en {
		assert.Contains(t, es, key)
	}

	// callers get a copy, not the shared table
	en["nav.home"] = "mutated"
	assert.Equal(t, "Home", T("nav.home", English))
}
