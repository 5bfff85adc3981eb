// Package i18n loads the embedded English and Welsh strings used by the hub
// pages. Handlers look strings up by key; missing keys render as the key.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
)

//go:embed locales/*.json
var locales embed.FS

// Supported languages.
const (
	English = "en"
	Welsh   = "cy"
)

// Translator looks up a string by key.
type Translator interface {
	T(key string) string
}

// Bundle holds every loaded language.
type Bundle struct {
	langs  map[string]map[string]string
	logger *slog.Logger
	missed sync.Map
}

// Load parses the embedded locale files.
func Load(logger *slog.Logger) (*Bundle, error) {
	if logger == nil {
		logger = slog.Default()
	}
	b := &Bundle{langs: make(map[string]map[string]string), logger: logger}
	for _, lang := range []string{English, Welsh} {
		raw, err := locales.ReadFile("locales/" + lang + ".json")
		if err != nil {
			return nil, fmt.Errorf("read %s locale: %w", lang, err)
		}
		strs := make(map[string]string)
		if err := json.Unmarshal(raw, &strs); err != nil {
			return nil, fmt.Errorf("parse %s locale: %w", lang, err)
		}
		b.langs[lang] = strs
	}
	return b, nil
}

// For returns the translator for lang, falling back to English.
func (b *Bundle) For(lang string) Translator {
	if _, ok := b.langs[lang]; !ok {
		lang = English
	}
	return translator{bundle: b, lang: lang}
}

// Keys returns every key defined for lang.
func (b *Bundle) Keys(lang string) []string {
	keys := make([]string, 0, len(b.langs[lang]))
	for k := range b.langs[lang] {
		keys = append(keys, k)
	}
	return keys
}

type translator struct {
	bundle *Bundle
	lang   string
}

func (t translator) T(key string) string {
	if s, ok := t.bundle.langs[t.lang][key]; ok {
		return s
	}
	if _, seen := t.bundle.missed.LoadOrStore(t.lang+":"+key, struct{}{}); !seen {
		t.bundle.logger.Debug("missing translation", "lang", t.lang, "key", key)
	}
	return key
}
