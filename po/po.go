// Package po implements a tgl.Resolver reading gettext PO catalogs. The msgid
// is the translation key and the msgstr is a tgl template:
//
//	msgid "Hello {name}!"
//	msgstr "Bonjour {name} !"
//
// Only singular messages outside any msgctxt are used; plural forms are
// ignored.
package po

import (
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"

	tgl "github.com/snapcore/go-tgl"
)

// Resolver keeps the translated messages of every loaded language.
type Resolver struct {
	store *tgl.Store
}

var _ tgl.Resolver = (*Resolver)(nil)

// New returns a Resolver with no languages loaded.
func New() *Resolver {
	return &Resolver{store: tgl.NewStore()}
}

// Load implements tgl.Resolver. Entries with an empty msgstr are left out,
// so they resolve through the fallback language.
func (r *Resolver) Load(language, text string) error {
	if strings.TrimSpace(language) == "" {
		return fmt.Errorf("cannot load catalog: %w", &tgl.ParseError{Msg: "empty language"})
	}

	po := gotext.NewPo()
	po.Parse([]byte(text))

	catalog := make(tgl.Catalog)
	for id, translation := range po.GetDomain().GetTranslations() {
		// The header entry has an empty msgid.
		if id == "" {
			continue
		}
		// Index 0 holds the singular msgstr whatever the plural rule.
		if msgstr := translation.Trs[0]; msgstr != "" {
			catalog[id] = msgstr
		}
	}
	r.store.Load(language, catalog)
	return nil
}

// Translate implements tgl.Resolver.
func (r *Resolver) Translate(language, fallback, key string, args tgl.Args) string {
	return tgl.Fallback(language, fallback, func(language string) string {
		template, ok := r.store.Lookup(language, key)
		if !ok {
			return ""
		}
		return tgl.Format(template, args)
	})
}

// Languages implements tgl.Resolver.
func (r *Resolver) Languages() []string {
	return r.store.Languages()
}
