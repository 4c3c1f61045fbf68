package tgl

import (
	"fmt"
	"strings"
)

// Args holds named template arguments. Values are stringified with
// fmt.Sprint when substituted.
type Args map[string]any

// V builds Args from alternating name, value pairs.
// Panics on programmer error.
func V(kv ...any) Args {
	if len(kv)%2 != 0 {
		panic("tgl.V: odd number of arguments, want name, value pairs")
	}

	args := make(Args, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		name, ok := kv[i].(string)
		if !ok {
			panic("tgl.V: name must be string")
		}
		args[name] = kv[i+1]
	}
	return args
}

// Format replaces each {name} placeholder in template with the matching
// argument. Placeholders without an argument are left as they are, and
// arguments without a placeholder are ignored. Substituted text is not
// scanned again.
func Format(template string, args Args) string {
	if len(args) == 0 || !strings.Contains(template, "{") {
		return template
	}

	var b strings.Builder
	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			break
		}
		end := strings.IndexByte(rest[open+1:], '}')
		if end < 0 {
			break
		}
		name := rest[open+1 : open+1+end]
		value, ok := args[name]
		if !ok {
			b.WriteString(rest[:open+1])
			rest = rest[open+1:]
			continue
		}
		b.WriteString(rest[:open])
		b.WriteString(fmt.Sprint(value))
		rest = rest[open+end+2:]
	}
	b.WriteString(rest)
	return b.String()
}
