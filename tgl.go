// Implements flat translation catalogs with a current/fallback language
// lookup and {name} placeholders.

package tgl

import (
	"fmt"
	"slices"
	"sync"
)

// DefaultExtensions are the catalog file extensions picked up when
// LoadPath is given a directory.
var DefaultExtensions = []string{"tgl", "egl", "ftl"}

// Translator ties a Resolver to a Locale. Use NewTranslator to create an
// instance.
type Translator struct {
	// Ideally NewTranslator would return a *Translator pointer. As we
	// don't want the locks and the missing-key set to be copied, we
	// embed a pointer to an ancillary struct holding our data.
	*translator
}

type translator struct {
	resolver Resolver
	locale   *Locale
	missing  sync.Map

	// Extensions lists the file extensions, without the dot, accepted
	// by LoadPath when reading a directory.
	Extensions []string
	// StrictMissingKeys logs every key that renders nothing, once per
	// language pair and key.
	StrictMissingKeys bool
}

// NewTranslator returns a Translator that resolves keys with resolver in the
// languages held by locale. A nil locale starts with both languages empty.
func NewTranslator(resolver Resolver, locale *Locale) Translator {
	if locale == nil {
		locale = NewLocale("", "")
	}
	return Translator{&translator{
		resolver:   resolver,
		locale:     locale,
		Extensions: slices.Clone(DefaultExtensions),
	}}
}

// Locale returns the language context used by t.
func (t Translator) Locale() *Locale {
	return t.locale
}

// LoadText loads catalog content for language, replacing whatever was loaded
// for it before.
func (t Translator) LoadText(language, content string) error {
	return t.resolver.Load(language, content)
}

// LoadMap loads ready-made translations for language. It fails with
// ErrUnsupported if the resolver cannot take a map.
func (t Translator) LoadMap(language string, translations map[string]string) error {
	loader, ok := t.resolver.(MapLoader)
	if !ok {
		return fmt.Errorf("cannot load map for %q: %w", language, ErrUnsupported)
	}
	return loader.LoadMap(language, translations)
}

// SetLanguage changes the current language.
func (t Translator) SetLanguage(language string) {
	t.locale.SetLanguage(language)
}

// Language returns the current language.
func (t Translator) Language() string {
	return t.locale.Language()
}

// SetFallback changes the fallback language.
func (t Translator) SetFallback(language string) {
	t.locale.SetFallback(language)
}

// Fallback returns the fallback language.
func (t Translator) Fallback() string {
	return t.locale.Fallback()
}

// Languages returns the loaded language identifiers.
func (t Translator) Languages() []string {
	return t.resolver.Languages()
}

// Translate renders key in the current language, falling back to the
// fallback language. It returns "" when neither has a translation.
func (t Translator) Translate(key string, args Args) string {
	language, fallback := t.locale.Language(), t.locale.Fallback()
	translated := t.resolver.Translate(language, fallback, key, args)
	if translated == "" && t.StrictMissingKeys {
		t.logMissingOnce(language, fallback, key)
	}
	return translated
}

// Tr is Translate with arguments given as alternating name, value pairs:
//
//	t.Tr("Hello {name}!", "name", user.Name)
func (t Translator) Tr(key string, kv ...any) string {
	return t.Translate(key, V(kv...))
}
