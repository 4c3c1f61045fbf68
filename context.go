package tgl

import (
	"context"
)

type contextKeyType struct{}

var translatorKey = contextKeyType{}

// WithTranslator returns a derived context that carries t. Pass it to code
// that translates with Tr.
//
// The ctx must not be nil.
func WithTranslator(ctx context.Context, t Translator) context.Context {
	return context.WithValue(ctx, translatorKey, t)
}

// FromContext returns the Translator stored in ctx, if any.
func FromContext(ctx context.Context) (Translator, bool) {
	if ctx == nil {
		return Translator{}, false
	}
	t, ok := ctx.Value(translatorKey).(Translator)
	return t, ok && t.translator != nil
}

// Tr translates key with the Translator carried by ctx. Arguments are given
// as alternating name, value pairs:
//
//	tgl.Tr(ctx, "Hello {name}!", "name", user.Name)
//
// It returns "" when ctx carries no Translator.
func Tr(ctx context.Context, key string, kv ...any) string {
	t, ok := FromContext(ctx)
	if !ok {
		return ""
	}
	return t.Tr(key, kv...)
}
