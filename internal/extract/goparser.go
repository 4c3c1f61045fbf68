package extract

import (
	"go/ast"
	"go/parser"
	"go/token"

	"golang.org/x/tools/go/ast/inspector"
)

// SourceParser parses a source file and reports every call expression in
// it, in source order, nested calls after the call containing them.
type SourceParser interface {
	ParseCalls(filename string, src []byte, visit func(call *ast.CallExpr, pos token.Position)) error
}

// GoParser is the SourceParser for Go files.
type GoParser struct{}

var callFilter = []ast.Node{(*ast.CallExpr)(nil)}

func (GoParser) ParseCalls(filename string, src []byte, visit func(*ast.CallExpr, token.Position)) error {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.SkipObjectResolution)
	if err != nil {
		return &StructuralParseError{File: filename, Err: err}
	}

	in := inspector.New([]*ast.File{file})
	in.Preorder(callFilter, func(node ast.Node) {
		call := node.(*ast.CallExpr)
		visit(call, fset.Position(call.Pos()))
	})
	return nil
}
