package tgl

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func mockGetenv(env map[string]string) (restore func()) {
	old := osGetenv
	osGetenv = func(name string) string {
		return env[name]
	}
	return func() {
		osGetenv = old
	}
}

func TestLocaleSlots(t *testing.T) {
	l := NewLocale("en_US", "en")
	assert.Equal(t, "en_US", l.Language())
	assert.Equal(t, "en", l.Fallback())

	l.SetLanguage("ja_JP")
	l.SetFallback("")
	assert.Equal(t, "ja_JP", l.Language())
	assert.Equal(t, "", l.Fallback())
}

func TestLocaleConcurrentAccess(t *testing.T) {
	l := NewLocale("", "")
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			l.SetLanguage("de")
			l.SetFallback("en")
		}()
		go func() {
			defer wg.Done()
			_ = l.Language() + l.Fallback()
		}()
	}
	wg.Wait()
	assert.Equal(t, "de", l.Language())
	assert.Equal(t, "en", l.Fallback())
}

func TestLocaleFromEnv(t *testing.T) {
	for _, test := range []struct {
		env      map[string]string
		expected string
	}{
		{map[string]string{}, ""},
		{map[string]string{"LANG": "C"}, ""},
		{map[string]string{"LANG": "de_DE.UTF-8"}, "de_DE"},
		{map[string]string{"LANG": "de_DE.UTF-8", "LC_MESSAGES": "fr_FR"}, "fr_FR"},
		{map[string]string{"LANG": "de_DE", "LC_ALL": "sv_SE.ISO-8859-1@euro"}, "sv_SE"},
		{map[string]string{"LANG": "de_DE", "LANGUAGE": ":ja_JP:en"}, "ja_JP"},
	} {
		restore := mockGetenv(test.env)
		l := LocaleFromEnv("en")
		restore()

		assert.Equal(t, test.expected, l.Language(), "env: %v", test.env)
		assert.Equal(t, "en", l.Fallback())
	}
}
