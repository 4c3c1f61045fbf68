package tgl

import (
	"github.com/rs/zerolog"
)

// Logger is the logger used by package tgl. It discards everything until the
// application installs its own, typically with
//
//	tgl.Logger = log.With().Str("sys", "tgl").Logger()
var Logger = zerolog.Nop()

// logMissingOnce logs a lookup that rendered nothing, once per
// (language, key) pair.
func (t *translator) logMissingOnce(language, fallback, key string) {
	id := language + "\x00" + fallback + "\x00" + key
	if _, loaded := t.missing.LoadOrStore(id, struct{}{}); loaded {
		return
	}
	Logger.Warn().
		Str("language", language).
		Str("fallback", fallback).
		Str("key", key).
		Msg("Missing translation")
}
