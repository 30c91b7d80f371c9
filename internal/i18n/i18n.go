package i18n

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"deckbot/internal/domain"

	"gopkg.in/yaml.v2"
)

// ErrMissingKey is returned when a required translation key is absent
// for a language. This is a configuration error and is never silently
// substituted.
var ErrMissingKey = errors.New("missing translation key")

// Translator is a read-only key to text lookup per language
type Translator struct {
	catalogs map[domain.Language]map[string]string
}

// New creates a translator from in-memory catalogs
func New(catalogs map[domain.Language]map[string]string) *Translator {
	return &Translator{catalogs: catalogs}
}

// Load reads one YAML catalog per supported language from dir
// (en.yml, ru.yml)
func Load(dir string) (*Translator, error) {
	catalogs := make(map[domain.Language]map[string]string)

	for _, lang := range domain.Languages() {
		path := filepath.Join(dir, string(lang)+".yml")
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read translation catalog %s: %w", path, err)
		}

		catalog := make(map[string]string)
		if err := yaml.Unmarshal(data, &catalog); err != nil {
			return nil, fmt.Errorf("failed to parse translation catalog %s: %w", path, err)
		}

		catalogs[lang] = catalog
	}

	return &Translator{catalogs: catalogs}, nil
}

// Lookup returns the text for key in the given language
func (t *Translator) Lookup(key string, lang domain.Language) (string, error) {
	catalog, exists := t.catalogs[lang]
	if !exists {
		return "", fmt.Errorf("no catalog for language %q: %w", lang, ErrMissingKey)
	}

	text, exists := catalog[key]
	if !exists {
		return "", fmt.Errorf("%w: %q for language %q", ErrMissingKey, key, lang)
	}

	return text, nil
}
