// Package extract finds the literal keys passed to translation calls in Go
// source code.
package extract

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"os"
	"strconv"
	"strings"
)

var (
	ErrNotString = errors.New("not a string constant")
	ErrNoKey     = errors.New("no string constant argument")
)

// StructuralParseError reports a source file that could not be parsed.
type StructuralParseError struct {
	File string
	Err  error
}

func (e *StructuralParseError) Error() string {
	return fmt.Sprintf("cannot parse %s: %v", e.File, e.Err)
}

func (e *StructuralParseError) Unwrap() error {
	return e.Err
}

// stringConstant evaluates an ast.Expr representing a string constant
//
// In addition to plain literals, parenthesised literals and concatenations
// of literals are accepted.
func stringConstant(expr ast.Expr) (string, error) {
	switch val := expr.(type) {
	case *ast.BasicLit:
		if val.Kind != token.STRING {
			return "", ErrNotString
		}
		s, err := strconv.Unquote(val.Value)
		if err != nil {
			return "", err
		}
		return s, nil
	// Support simple string concatenation
	case *ast.BinaryExpr:
		// we only support string concat
		if val.Op != token.ADD {
			return "", ErrNotString
		}
		left, err := stringConstant(val.X)
		if err != nil {
			return "", err
		}
		right, err := stringConstant(val.Y)
		if err != nil {
			return "", err
		}
		return left + right, nil
	// Support parenthesised expressions
	case *ast.ParenExpr:
		return stringConstant(val.X)
	}
	return "", ErrNotString
}

// Keyword describes the translation call to look for: the bare function
// Name, or Name qualified by one of Aliases.
type Keyword struct {
	Name    string
	Aliases []string
}

// DefaultKeyword matches Tr(...) and tgl.Tr(...).
var DefaultKeyword = Keyword{Name: "Tr", Aliases: []string{"tgl"}}

func (k Keyword) Match(call *ast.CallExpr) bool {
	switch e := call.Fun.(type) {
	case *ast.Ident:
		return e.Name == k.Name
	case *ast.SelectorExpr:
		if e.Sel.Name != k.Name {
			return false
		}
		// Only a single qualifier, a.b.Tr() is some value's method.
		ident, ok := e.X.(*ast.Ident)
		if !ok {
			return false
		}
		for _, alias := range k.Aliases {
			if ident.Name == alias {
				return true
			}
		}
	}
	return false
}

// Extract returns the key of a matching call: its first argument, or its
// second when the first is a context (see isContext). The key must be a
// string constant.
func (k Keyword) Extract(call *ast.CallExpr) (string, error) {
	args := call.Args
	if len(args) > 1 && isContext(args[0]) {
		args = args[1:]
	}
	if len(args) == 0 {
		return "", ErrNoKey
	}
	key, err := stringConstant(args[0])
	if err != nil {
		return "", ErrNoKey
	}
	return key, nil
}

// isContext recognizes a context.Context argument by its usual spellings,
// as types are not available: ctx or a name ending in Ctx, x.ctx, any
// context.X(...) call, and x.Context().
func isContext(expr ast.Expr) bool {
	switch e := expr.(type) {
	case *ast.Ident:
		return isContextName(e.Name)
	case *ast.SelectorExpr:
		return isContextName(e.Sel.Name)
	case *ast.CallExpr:
		sel, ok := e.Fun.(*ast.SelectorExpr)
		if !ok {
			return false
		}
		if pkg, ok := sel.X.(*ast.Ident); ok && pkg.Name == "context" {
			return true
		}
		return sel.Sel.Name == "Context"
	}
	return false
}

func isContextName(name string) bool {
	return name == "ctx" || strings.HasSuffix(name, "Ctx")
}

// Occurrence is a key found at a call site.
type Occurrence struct {
	Key  string
	File string
	Line int
}

// Extractor collects keys from source files.
type Extractor struct {
	Keyword Keyword
	Parser  SourceParser
	// Extensions lists the file extensions, without the dot, read by
	// Walk. Matching ignores case.
	Extensions []string
	// SkipDirs names directories Walk does not descend into. Directories
	// whose name starts with "." or "_" are always skipped.
	SkipDirs []string
}

// New returns an Extractor looking for DefaultKeyword in Go files.
func New() *Extractor {
	return &Extractor{
		Keyword:    DefaultKeyword,
		Parser:     GoParser{},
		Extensions: []string{"go"},
		SkipDirs:   []string{"vendor", "testdata", "bin"},
	}
}

// ParseSource returns the keys found in src, in source order. Duplicates
// are kept.
func (e *Extractor) ParseSource(filename string, src []byte) ([]Occurrence, error) {
	var found []Occurrence
	err := e.Parser.ParseCalls(filename, src, func(call *ast.CallExpr, pos token.Position) {
		if !e.Keyword.Match(call) {
			return
		}
		key, err := e.Keyword.Extract(call)
		if err != nil || key == "" {
			return
		}
		found = append(found, Occurrence{Key: key, File: pos.Filename, Line: pos.Line})
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// ParseFile reads and parses filename.
func (e *Extractor) ParseFile(filename string) ([]Occurrence, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return e.ParseSource(filename, src)
}

// Keys returns the keys of occs, in order.
func Keys(occs []Occurrence) []string {
	keys := make([]string, len(occs))
	for i, occ := range occs {
		keys[i] = occ.Key
	}
	return keys
}
