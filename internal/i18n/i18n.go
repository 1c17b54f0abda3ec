// Package i18n serves the static English/Spanish string tables used by
// the public site. Keys use dot notation ("nav.home") and unknown keys
// fall back to the key itself so the frontend never renders a blank.
package i18n

import (
	"golang.org/x/text/language"
)

// Language is a supported UI language.
type Language string

const (
	English Language = "en"
	Spanish Language = "es"
)

// DefaultLanguage is used when negotiation fails.
const DefaultLanguage = English

var supported = []language.Tag{
	language.English,
	language.Spanish,
}

var matcher = language.NewMatcher(supported)

// Parse maps a language code ("en", "es", "es-MX", ...) to a supported
// Language, defaulting to English for anything unknown.
func Parse(code string) Language {
	if code == "" {
		return DefaultLanguage
	}
	tag, err := language.Parse(code)
	if err != nil {
		return DefaultLanguage
	}
	_, index, _ := matcher.Match(tag)
	if index >= 0 && index < len(supported) && supported[index] == language.Spanish {
		return Spanish
	}
	return DefaultLanguage
}

// Negotiate picks the best supported language for an Accept-Language
// header value.
func Negotiate(acceptLanguage string) Language {
	if acceptLanguage == "" {
		return DefaultLanguage
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLanguage
	}
	_, index, _ := matcher.Match(tags...)
	if index >= 0 && index < len(supported) && supported[index] == language.Spanish {
		return Spanish
	}
	return DefaultLanguage
}

// T looks up a single key for a language. Missing keys return the key
// itself.
func T(key string, lang Language) string {
	table := tableFor(lang)
	if value, ok := table[key]; ok {
		return value
	}
	return key
}

// Translations returns the full flattened table for a language. The
// returned map is a copy so callers cannot mutate the tables.
func Translations(lang Language) map[string]string {
	table := tableFor(lang)
	out := make(map[string]string, len(table))
	for k, v := range table {
		out[k] = v
	}
	return out
}

func tableFor(lang Language) map[string]string {
	if lang == Spanish {
		return spanish
	}
	return english
}
