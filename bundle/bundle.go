// Package bundle implements a tgl.Resolver on top of go-i18n message
// bundles. Catalog text is a TOML message file:
//
//	greet = "Hello {{.name}}!"
//
//	[farewell]
//	description = "Shown when leaving"
//	other = "Goodbye {{.name}}"
//
// Templates use go-i18n's text/template syntax rather than tgl's {name}
// placeholders.
package bundle

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	tgl "github.com/snapcore/go-tgl"
)

// Resolver keeps one go-i18n bundle per loaded language.
type Resolver struct {
	mu      sync.RWMutex
	bundles map[string]*languageBundle
}

type languageBundle struct {
	tag    language.Tag
	bundle *i18n.Bundle
}

var (
	_ tgl.Resolver  = (*Resolver)(nil)
	_ tgl.MapLoader = (*Resolver)(nil)
)

// New returns a Resolver with no languages loaded.
func New() *Resolver {
	return &Resolver{bundles: map[string]*languageBundle{}}
}

func newLanguageBundle(language string) (*languageBundle, error) {
	tag, err := parseTag(language)
	if err != nil {
		return nil, err
	}
	b := i18n.NewBundle(tag)
	b.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return &languageBundle{tag: tag, bundle: b}, nil
}

// parseTag accepts POSIX style identifiers such as "pt_BR" as well as BCP 47
// tags.
func parseTag(lang string) (language.Tag, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return tag, &tgl.ParseError{Msg: fmt.Sprintf("invalid language %q", lang), Err: err}
	}
	return tag, nil
}

// Load implements tgl.Resolver. The text is a TOML message file; an invalid
// file or language leaves the previously loaded bundle in place.
func (r *Resolver) Load(language, text string) error {
	lb, err := newLanguageBundle(language)
	if err != nil {
		return fmt.Errorf("cannot load language %q: %w", language, err)
	}
	// go-i18n takes the language and the format from the file name.
	name := "catalog." + lb.tag.String() + ".toml"
	if _, err := lb.bundle.ParseMessageFileBytes([]byte(text), name); err != nil {
		return fmt.Errorf("cannot load language %q: %w", language, &tgl.ParseError{Msg: "invalid message file", Err: err})
	}
	r.store(language, lb)
	return nil
}

// LoadMap implements tgl.MapLoader. Each value becomes the "other" form of
// the message with the same ID.
func (r *Resolver) LoadMap(language string, translations map[string]string) error {
	lb, err := newLanguageBundle(language)
	if err != nil {
		return fmt.Errorf("cannot load language %q: %w", language, err)
	}
	messages := make([]*i18n.Message, 0, len(translations))
	for id, other := range translations {
		if id == "" {
			return fmt.Errorf("cannot load language %q: %w", language, &tgl.ParseError{Msg: "empty key"})
		}
		messages = append(messages, &i18n.Message{ID: id, Other: other})
	}
	if err := lb.bundle.AddMessages(lb.tag, messages...); err != nil {
		return fmt.Errorf("cannot load language %q: %w", language, &tgl.ParseError{Msg: "invalid message", Err: err})
	}
	r.store(language, lb)
	return nil
}

func (r *Resolver) store(language string, lb *languageBundle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bundles == nil {
		r.bundles = map[string]*languageBundle{}
	}
	r.bundles[language] = lb
}

// Translate implements tgl.Resolver. Args are passed to the message template
// as its data.
func (r *Resolver) Translate(language, fallback, key string, args tgl.Args) string {
	return tgl.Fallback(language, fallback, func(language string) string {
		return r.localize(language, key, args)
	})
}

func (r *Resolver) localize(language, key string, args tgl.Args) string {
	r.mu.RLock()
	lb, ok := r.bundles[language]
	r.mu.RUnlock()
	if !ok {
		return ""
	}

	localizer := i18n.NewLocalizer(lb.bundle, lb.tag.String())
	translated, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: map[string]any(args),
	})
	if err != nil {
		var notFound *i18n.MessageNotFoundErr
		if !errors.As(err, &notFound) {
			tgl.Logger.Debug().Err(err).
				Str("language", language).
				Str("key", key).
				Msg("Cannot render message")
		}
		return ""
	}
	return translated
}

// Languages implements tgl.Resolver.
func (r *Resolver) Languages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	languages := make([]string, 0, len(r.bundles))
	for language := range r.bundles {
		languages = append(languages, language)
	}
	sort.Strings(languages)
	return languages
}
