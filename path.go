package tgl

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadPath loads a catalog file, or every catalog file directly inside a
// directory. The language of each file is its base name without extension,
// so "po/pt_BR.tgl" loads language "pt_BR".
//
// Inside a directory only files whose extension is listed in Extensions are
// read; entries that cannot be inspected are logged and skipped. Any file
// that cannot be read or parsed fails the whole call, although files loaded
// before it stay loaded.
func (t Translator) LoadPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return &ResourceError{Path: path, Err: err}
	}

	files := []string{path}
	if info.IsDir() {
		files, err = t.catalogFiles(path)
		if err != nil {
			return err
		}
	}

	for _, file := range files {
		base := filepath.Base(file)
		language := strings.TrimSuffix(base, filepath.Ext(base))
		if language == "" {
			continue
		}
		content, err := readCatalogFile(file)
		if err != nil {
			return err
		}
		if err := t.LoadText(language, content); err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		Logger.Debug().
			Str("path", file).
			Str("language", language).
			Msg("Loaded catalog")
	}
	return nil
}

func (t Translator) catalogFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &ResourceError{Path: dir, Err: err}
	}

	var files []string
	for _, entry := range entries {
		if !t.acceptsExtension(entry.Name()) {
			continue
		}
		file := filepath.Join(dir, entry.Name())
		// Stat follows symlinks, so a link to a catalog counts as one.
		info, err := os.Stat(file)
		if err != nil {
			Logger.Warn().Err(err).Str("path", file).Msg("Skipping unreadable directory entry")
			continue
		}
		if info.IsDir() {
			continue
		}
		files = append(files, file)
	}
	return files, nil
}

func (t Translator) acceptsExtension(name string) bool {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return false
	}
	for _, allowed := range t.Extensions {
		if strings.EqualFold(ext, strings.TrimPrefix(allowed, ".")) {
			return true
		}
	}
	return false
}

func readCatalogFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &ResourceError{Path: path, Err: err}
	}
	defer f.Close()

	m, err := openMapping(f)
	if err != nil {
		return "", &ResourceError{Path: path, Err: err}
	}
	defer m.Close()

	// Copy out of the mapping: catalogs keep substrings of the content.
	return string(m.data), nil
}
