package tgl

import (
	"fmt"
	"strings"
)

// Resolver is a translation backend: it owns the loaded catalogs of every
// language and renders keys from them.
type Resolver interface {
	// Load parses text and replaces the catalog of language with it. On
	// error the previously loaded catalog is left untouched.
	Load(language, text string) error
	// Translate renders key using the two-tier rule implemented by Fallback.
	Translate(language, fallback, key string, args Args) string
	// Languages returns the loaded language identifiers, sorted.
	Languages() []string
}

// MapLoader is implemented by resolvers that can take a ready-made
// key/template map instead of catalog text.
type MapLoader interface {
	LoadMap(language string, translations map[string]string) error
}

// Fallback implements the two-tier lookup shared by all resolvers.
//
// When language is empty, fallback is used in its place. If the lookup in
// that language renders nothing, fallback is always consulted again, even
// when it names the same language.
func Fallback(language, fallback string, lookup func(language string) string) string {
	if language == "" && fallback == "" {
		return ""
	}
	if language == "" {
		language = fallback
	}
	if translated := lookup(language); translated != "" {
		return translated
	}
	return lookup(fallback)
}

// Classic resolves keys from flat catalogs (see Parse) held in a Store.
type Classic struct {
	store *Store
}

var (
	_ Resolver  = (*Classic)(nil)
	_ MapLoader = (*Classic)(nil)
)

// NewClassic returns a Classic resolver with no languages loaded.
func NewClassic() *Classic {
	return &Classic{store: NewStore()}
}

// Load implements Resolver. Entries with an empty value are dropped.
func (c *Classic) Load(language, text string) error {
	catalog, err := Parse(text, true)
	if err != nil {
		return fmt.Errorf("cannot load language %q: %w", language, err)
	}
	c.store.Load(language, catalog)
	return nil
}

// LoadMap implements MapLoader. Values are trimmed and empty ones dropped,
// exactly as if the map had been written out and loaded as text.
func (c *Classic) LoadMap(language string, translations map[string]string) error {
	catalog := make(Catalog, len(translations))
	for key, value := range translations {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("cannot load language %q: %w", language, &ParseError{Msg: "empty key"})
		}
		if value = strings.TrimSpace(value); value != "" {
			catalog[key] = value
		}
	}
	c.store.Load(language, catalog)
	return nil
}

// Translate implements Resolver.
func (c *Classic) Translate(language, fallback, key string, args Args) string {
	return Fallback(language, fallback, func(language string) string {
		template, ok := c.store.Lookup(language, key)
		if !ok || template == "" {
			return ""
		}
		return Format(template, args)
	})
}

// Languages implements Resolver.
func (c *Classic) Languages() []string {
	return c.store.Languages()
}
