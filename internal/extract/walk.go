package extract

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	tgl "github.com/snapcore/go-tgl"
)

// Walk parses every matching file below root. Files are parsed
// concurrently but their keys are returned in lexical file order. The
// first read or parse error aborts the walk and nothing is returned.
func (e *Extractor) Walk(root string) ([]Occurrence, error) {
	files, err := e.sourceFiles(root)
	if err != nil {
		return nil, err
	}

	results := make([][]Occurrence, len(files))
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			found, err := e.ParseFile(file)
			if err != nil {
				return err
			}
			tgl.Logger.Trace().Str("file", file).Int("keys", len(found)).Msg("Parsed source file")
			results[i] = found
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Occurrence
	for _, found := range results {
		all = append(all, found...)
	}
	return all, nil
}

// sourceFiles lists the files to parse, in lexical order.
func (e *Extractor) sourceFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path == root {
				return nil
			}
			if e.skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if e.acceptsExtension(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cannot walk %s: %w", root, err)
	}
	return files, nil
}

func (e *Extractor) skipDir(name string) bool {
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
		return true
	}
	for _, skip := range e.SkipDirs {
		if name == skip {
			return true
		}
	}
	return false
}

func (e *Extractor) acceptsExtension(path string) bool {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return false
	}
	for _, allowed := range e.Extensions {
		if strings.EqualFold(ext, strings.TrimPrefix(allowed, ".")) {
			return true
		}
	}
	return false
}
