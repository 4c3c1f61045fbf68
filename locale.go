package tgl

import (
	"os"
	"strings"
	"sync"
)

var osGetenv = os.Getenv

// Locale is the language context of an application: the current language
// used for lookups and the fallback consulted when a lookup comes back
// empty. Both start out as given to NewLocale; neither is checked against
// the languages actually loaded.
type Locale struct {
	language slot
	fallback slot
}

// slot is a string read on every translation and rarely written.
type slot struct {
	mu    sync.RWMutex
	value string
}

func (s *slot) get() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

func (s *slot) set(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.value = value
}

// NewLocale returns a Locale with the given current and fallback languages.
// Either may be empty.
func NewLocale(language, fallback string) *Locale {
	l := &Locale{}
	l.language.value = language
	l.fallback.value = fallback
	return l
}

// LocaleFromEnv returns a Locale whose current language is taken from the
// user's environment (LANGUAGE, LC_ALL, LC_MESSAGES, LANG, in that order)
// with codeset and modifier removed, e.g. "de_DE.UTF-8@euro" gives "de_DE".
func LocaleFromEnv(fallback string) *Locale {
	return NewLocale(userLanguage(), fallback)
}

func userLanguage() string {
	for _, name := range []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"} {
		for _, candidate := range strings.Split(osGetenv(name), ":") {
			if lang := stripLocale(candidate); lang != "" {
				return lang
			}
		}
	}
	return ""
}

// stripLocale drops the codeset and modifier of a POSIX locale name. The
// "C" and "POSIX" locales carry no language and yield "".
func stripLocale(locale string) string {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	locale = strings.TrimSpace(locale)
	if locale == "C" || locale == "POSIX" {
		return ""
	}
	return locale
}

// Language returns the current language.
func (l *Locale) Language() string {
	return l.language.get()
}

// SetLanguage changes the current language.
func (l *Locale) SetLanguage(language string) {
	l.language.set(language)
}

// Fallback returns the fallback language.
func (l *Locale) Fallback() string {
	return l.fallback.get()
}

// SetFallback changes the fallback language.
func (l *Locale) SetFallback(language string) {
	l.fallback.set(language)
}
