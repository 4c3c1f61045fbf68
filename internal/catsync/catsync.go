// Package catsync merges newly discovered keys into per-language catalog
// files. Existing content is never rewritten, new entries are appended.
package catsync

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	tgl "github.com/snapcore/go-tgl"
)

// Options control a synchronization run.
type Options struct {
	// Languages to write a catalog for, one file each.
	Languages []string
	// OutputDir holds the catalog files, it is created when missing.
	OutputDir string
	// Ext is the catalog file extension, without the dot.
	Ext string
	// DefaultLanguage gets each key as its own initial value, other
	// languages get an empty value.
	DefaultLanguage string
}

// Result reports what was appended to the catalog of one language.
type Result struct {
	Language string
	Path     string
	Added    []string
	// Skipped lists keys a catalog cannot hold, see tgl.CheckKey.
	Skipped []string
}

// Sync appends to every language's catalog the keys it does not contain
// yet, in the order given. Keys repeated in keys are written once. Keys
// that would not read back unchanged are logged and skipped. A catalog with
// nothing to add is not touched.
func Sync(keys []string, opts Options) ([]Result, error) {
	results := make([]Result, 0, len(opts.Languages))
	for _, language := range opts.Languages {
		res, err := syncLanguage(keys, language, opts)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func catalogPath(language string, opts Options) string {
	return filepath.Join(opts.OutputDir, language+"."+opts.Ext)
}

func syncLanguage(keys []string, language string, opts Options) (Result, error) {
	res := Result{Language: language, Path: catalogPath(language, opts)}

	known, unterminated, err := readKeys(res.Path)
	if err != nil {
		return res, err
	}

	isDefault := language == opts.DefaultLanguage
	var entries []tgl.Entry
	for _, key := range keys {
		if _, ok := known[key]; ok {
			continue
		}
		known[key] = struct{}{}
		if err := tgl.CheckKey(key); err != nil {
			tgl.Logger.Warn().Err(err).
				Str("language", language).
				Str("key", key).
				Msg("Skipping key")
			res.Skipped = append(res.Skipped, key)
			continue
		}

		entry := tgl.Entry{Key: key}
		if isDefault {
			entry.Value = key
		}
		entries = append(entries, entry)
		res.Added = append(res.Added, key)
	}
	if len(entries) == 0 {
		tgl.Logger.Debug().Str("language", language).Str("path", res.Path).Msg("Catalog is up to date")
		return res, nil
	}

	text := tgl.Serialize(entries)
	if unterminated {
		text = "\n" + text
	}
	if err := appendText(res.Path, text); err != nil {
		return res, err
	}
	tgl.Logger.Info().
		Str("language", language).
		Str("path", res.Path).
		Int("added", len(entries)).
		Msg("Wrote catalog")
	return res, nil
}

// readKeys returns the keys present in the catalog at path, including
// those with an empty value, and whether the file lacks a final newline.
// A missing file has no keys.
func readKeys(path string) (known map[string]struct{}, unterminated bool, err error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]struct{}{}, false, nil
	}
	if err != nil {
		return nil, false, &tgl.ResourceError{Path: path, Err: err}
	}

	catalog, err := tgl.Parse(string(content), false)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", path, err)
	}
	known = make(map[string]struct{}, len(catalog))
	for key := range catalog {
		known[key] = struct{}{}
	}
	unterminated = len(content) > 0 && content[len(content)-1] != '\n'
	return known, unterminated, nil
}

func appendText(path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &tgl.ResourceError{Path: filepath.Dir(path), Err: err}
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
	if err != nil {
		return &tgl.ResourceError{Path: path, Err: err}
	}
	if _, err := f.WriteString(text); err != nil {
		f.Close()
		return &tgl.ResourceError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &tgl.ResourceError{Path: path, Err: err}
	}
	return nil
}
