package extract

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/scanner"
	"os"
	"path/filepath"
	"testing"

	. "gopkg.in/check.v1"
)

func Test(t *testing.T) {
	TestingT(t)
}

var _ = Suite(extractSuite{})

type extractSuite struct{}

func (extractSuite) TestStringConstant(c *C) {
	for _, test := range []struct {
		code, expected string
	}{
		{`"Hello world"`, "Hello world"},
		{"`Hello world`", "Hello world"},
		{"\"Hello \" + `world`", "Hello world"},
		{`"Line 1\nLine 2"`, "Line 1\nLine 2"},
		{`("Hello")`, "Hello"},
		{`("a"+"b")+("c"+"d")`, "abcd"},
		{`"a=b"`, "a=b"},
	} {
		comment := Commentf("expression: %s", test.code)
		expr, err := parser.ParseExpr(test.code)
		c.Assert(err, IsNil, comment)
		result, err := stringConstant(expr)
		if !c.Check(err, IsNil, comment) {
			continue
		}
		c.Check(result, Equals, test.expected, comment)
	}

	for _, code := range []string{
		"1",
		"'x'",
		"name",
		"`xyz`+2",
		`"a"-"b"`,
		`fmt.Sprint("a")`,
	} {
		expr, err := parser.ParseExpr(code)
		c.Assert(err, IsNil)
		result, err := stringConstant(expr)
		c.Check(err, NotNil, Commentf("expression %s evaluated to %q", code, result))
	}
}

func (extractSuite) TestKeywordMatch(c *C) {
	for _, test := range []struct {
		code string
		ok   bool
	}{
		{`Tr("a")`, true},
		{`tgl.Tr("a")`, true},
		{`other.Tr("a")`, false},
		{`a.tgl.Tr("a")`, false},
		{`f().Tr("a")`, false},
		{`Tr2("a")`, false},
		{`tgl.Translate("a")`, false},
		{`tr("a")`, false},
	} {
		comment := Commentf("expr: %s", test.code)
		expr, err := parser.ParseExpr(test.code)
		c.Assert(err, IsNil, comment)
		c.Check(DefaultKeyword.Match(expr.(*ast.CallExpr)), Equals, test.ok, comment)
	}

	kw := Keyword{Name: "T", Aliases: []string{"i18n", "l"}}
	for _, code := range []string{`T("a")`, `i18n.T("a")`, `l.T("a")`} {
		expr, err := parser.ParseExpr(code)
		c.Assert(err, IsNil)
		c.Check(kw.Match(expr.(*ast.CallExpr)), Equals, true, Commentf("expr: %s", code))
	}
}

func (extractSuite) TestKeywordExtract(c *C) {
	for _, test := range []struct {
		code string
		key  string
		err  error
	}{
		{`Tr("foo\tbar")`, "foo\tbar", nil},
		{`Tr("greet", "name", user)`, "greet", nil},
		{`Tr("x" + "y", "n", 1)`, "xy", nil},
		{`Tr(ctx, "greet", "name", user)`, "greet", nil},
		{`Tr(reqCtx, "greet")`, "greet", nil},
		{`Tr(s.ctx, "greet")`, "greet", nil},
		{`Tr(r.Context(), "greet")`, "greet", nil},
		{`Tr(context.Background(), "greet")`, "greet", nil},
		{`Tr(context.WithValue(ctx, k, v), "greet")`, "greet", nil},

		// the key is never looked for past its position
		{`Tr(ctx, msg, "count", n)`, "", ErrNoKey},
		{`Tr(msg, "count", n)`, "", ErrNoKey},
		{`Tr(Tr("inner"), "outer")`, "", ErrNoKey},
		{`Tr(ctx)`, "", ErrNoKey},
		{`Tr(key)`, "", ErrNoKey},
		{`Tr()`, "", ErrNoKey},
	} {
		comment := Commentf("expr: %s", test.code)
		expr, err := parser.ParseExpr(test.code)
		c.Assert(err, IsNil, comment)

		key, err := DefaultKeyword.Extract(expr.(*ast.CallExpr))
		c.Check(err, Equals, test.err, comment)
		c.Check(key, Equals, test.key, comment)
	}
}

func (extractSuite) TestParseSource(c *C) {
	const content = `package main

import (
	"fmt"

	"example.com/tgl"
	"example.com/other"
)

func main() {
	fmt.Println(Tr("hello"))
	go func() {
		if true {
			_ = []string{tgl.Tr("nested", "n", 1)}
		}
	}()
	other.Tr("ignored")
	fmt.Println(tgl.Tr("a=b"), Tr(""), Tr(name))
	Tr("hello")
}
`
	e := New()
	found, err := e.ParseSource("main.go", []byte(content))
	c.Assert(err, IsNil)
	c.Check(found, DeepEquals, []Occurrence{
		{"hello", "main.go", 11},
		{"nested", "main.go", 14},
		{"a=b", "main.go", 18},
		{"hello", "main.go", 19},
	})
	c.Check(Keys(found), DeepEquals, []string{"hello", "nested", "a=b", "hello"})
}

func (extractSuite) TestParseSourceRecall(c *C) {
	const content = `package main

func main() {
	println(Tr("first"))
	println(other.Tr("unrelated"))
	println(tgl.Tr(ctx, "second", "n", 2))
	println(tgl.Tr(ctx, msg, "count", 2))
	println(pkg.sub.Tr("unrelated too"))
	println(tgl.Tr("third"))
}
`
	found, err := New().ParseSource("recall.go", []byte(content))
	c.Assert(err, IsNil)
	c.Check(Keys(found), DeepEquals, []string{"first", "second", "third"})
}

func (extractSuite) TestParseSourceNestedCalls(c *C) {
	const content = `package main

var x = Tr("outer", "arg", Tr("inner"))
`
	found, err := New().ParseSource("x.go", []byte(content))
	c.Assert(err, IsNil)
	c.Check(Keys(found), DeepEquals, []string{"outer", "inner"})
}

func (extractSuite) TestParseSourceSyntaxError(c *C) {
	_, err := New().ParseSource("broken.go", []byte("package main\nfunc {"))
	c.Assert(err, NotNil)

	var parseErr *StructuralParseError
	c.Assert(errors.As(err, &parseErr), Equals, true)
	c.Check(parseErr.File, Equals, "broken.go")
	var list scanner.ErrorList
	c.Check(errors.As(err, &list), Equals, true)
}

func writeTree(c *C, root string, files map[string]string) {
	for name, content := range files {
		path := filepath.Join(root, name)
		c.Assert(os.MkdirAll(filepath.Dir(path), 0o755), IsNil)
		c.Assert(os.WriteFile(path, []byte(content), 0o644), IsNil)
	}
}

func (extractSuite) TestWalk(c *C) {
	root := c.MkDir()
	writeTree(c, root, map[string]string{
		"b.go":                 "package p\nvar _ = Tr(\"b\")\n",
		"a.go":                 "package p\nvar _ = tgl.Tr(\"a1\")\nvar _ = Tr(\"a2\")\n",
		"sub/c.GO":             "package sub\nvar _ = Tr(\"c\")\n",
		"sub/notes.txt":        "Tr(\"txt\")",
		"vendor/v/v.go":        "package v\nvar _ = Tr(\"vendored\")\n",
		"testdata/t.go":        "package t\nvar _ = Tr(\"testdata\")\n",
		".git/x.go":            "package x\nvar _ = Tr(\"hidden\")\n",
		"_build/y.go":          "package y\nvar _ = Tr(\"underscore\")\n",
		"sub/deeper/broken.md": "not go",
	})

	found, err := New().Walk(root)
	c.Assert(err, IsNil)
	c.Check(Keys(found), DeepEquals, []string{"a1", "a2", "b", "c"})
	c.Check(found[0].File, Equals, filepath.Join(root, "a.go"))
	c.Check(found[1].Line, Equals, 3)
}

func (extractSuite) TestWalkExtensions(c *C) {
	root := c.MkDir()
	writeTree(c, root, map[string]string{
		"a.go":  "package p\nvar _ = Tr(\"go\")\n",
		"b.gox": "package p\nvar _ = Tr(\"gox\")\n",
	})

	e := New()
	e.Extensions = []string{".gox"}
	found, err := e.Walk(root)
	c.Assert(err, IsNil)
	c.Check(Keys(found), DeepEquals, []string{"gox"})
}

func (extractSuite) TestWalkParseErrorAborts(c *C) {
	root := c.MkDir()
	writeTree(c, root, map[string]string{
		"a.go": "package p\nvar _ = Tr(\"a\")\n",
		"b.go": "package p\nfunc {",
	})

	found, err := New().Walk(root)
	c.Check(found, IsNil)
	var parseErr *StructuralParseError
	c.Assert(errors.As(err, &parseErr), Equals, true)
	c.Check(parseErr.File, Equals, filepath.Join(root, "b.go"))
}

func (extractSuite) TestWalkMissingRoot(c *C) {
	_, err := New().Walk(filepath.Join(c.MkDir(), "missing"))
	c.Check(errors.Is(err, os.ErrNotExist), Equals, true)
}

func (extractSuite) TestWalkEmptyTree(c *C) {
	found, err := New().Walk(c.MkDir())
	c.Assert(err, IsNil)
	c.Check(found, HasLen, 0)
}
