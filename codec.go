package tgl

import (
	"errors"
	"fmt"
	"strings"
)

const (
	delimiter        = "="
	escapedDelimiter = `\=`
)

// Entry is a single key/value pair in catalog file order.
type Entry struct {
	Key   string
	Value string
}

// Parse parses catalog text into a Catalog.
//
// Each line holding a "=" starts a new entry; lines without one continue the
// value of the previous entry, so templates may span several lines. A "="
// that belongs to the key (or to the value on the key's line) is written as
// `\=`. When cleanEmpty is set, entries whose value is empty are dropped.
func Parse(text string, cleanEmpty bool) (Catalog, error) {
	catalog := make(Catalog)

	var (
		key     string
		keyLine int
		values  []string
	)
	flush := func() {
		if keyLine == 0 {
			return
		}
		value := strings.TrimSpace(strings.Join(values, "\n"))
		if value != "" || !cleanEmpty {
			catalog[key] = value
		}
	}

	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if !strings.Contains(line, delimiter) {
			if keyLine == 0 {
				if strings.TrimSpace(line) != "" {
					return nil, &ParseError{Line: i + 1, Msg: "text outside of any entry"}
				}
				continue
			}
			values = append(values, line)
			continue
		}

		flush()
		k, v := splitEntry(line)
		if k == "" {
			return nil, &ParseError{Line: i + 1, Msg: "empty key"}
		}
		key, keyLine = k, i+1
		values = append(values[:0], v)
	}
	flush()

	return catalog, nil
}

// splitEntry splits an entry line into its key and the first line of its
// value, resolving `\=` escapes on both sides.
func splitEntry(line string) (key, value string) {
	if !strings.Contains(line, escapedDelimiter) {
		k, v, _ := strings.Cut(line, delimiter)
		return strings.TrimSpace(k), strings.TrimSpace(v)
	}

	segments := strings.Split(line, escapedDelimiter)
	var keyParts, valueParts []string
	for i, segment := range segments {
		k, v, found := strings.Cut(segment, delimiter)
		if !found {
			keyParts = append(keyParts, strings.TrimSpace(segment))
			continue
		}
		keyParts = append(keyParts, strings.TrimSpace(k))
		valueParts = append(valueParts, strings.TrimSpace(v))
		valueParts = append(valueParts, segments[i+1:]...)
		break
	}
	return strings.Join(keyParts, delimiter), strings.Join(valueParts, delimiter)
}

// ErrInvalidKey is returned by CheckKey for keys a catalog cannot hold.
var ErrInvalidKey = errors.New("invalid catalog key")

// CheckKey reports whether key can be written with FormatEntry and read
// back unchanged by Parse. Keys that are empty, span several lines, or
// carry whitespace that Parse trims cannot.
func CheckKey(key string) error {
	switch {
	case key == "":
		return fmt.Errorf("%w: empty key", ErrInvalidKey)
	case strings.ContainsAny(key, "\r\n"):
		return fmt.Errorf("%w: %q spans several lines", ErrInvalidKey, key)
	}
	catalog, err := Parse(FormatEntry(key, ""), false)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidKey, key, err)
	}
	if _, ok := catalog[key]; !ok {
		return fmt.Errorf("%w: %q does not read back unchanged", ErrInvalidKey, key)
	}
	return nil
}

// EscapeKey escapes every "=" in key so it survives Parse.
func EscapeKey(key string) string {
	return strings.ReplaceAll(key, delimiter, escapedDelimiter)
}

// FormatEntry formats a single catalog line. An empty value produces a bare
// "key =" placeholder awaiting translation.
func FormatEntry(key, value string) string {
	if value == "" {
		return EscapeKey(key) + " " + delimiter
	}
	return EscapeKey(key) + " " + delimiter + " " + value
}

// Serialize formats entries one per line followed by a blank line, ready to
// be appended to a catalog file.
func Serialize(entries []Entry) string {
	lines := make([]string, 0, len(entries)+1)
	for _, entry := range entries {
		lines = append(lines, FormatEntry(entry.Key, entry.Value))
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}
