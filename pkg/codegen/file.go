// Package codegen turns component files into Go source.
//
// A component file holds a package clause, optional Go imports and any number
// of components:
//
//	package views
//
//	import "strings"
//
//	component Greeting(name string, admin bool) {
//	    div { class = "greeting", h1 { "Hello, " strings.ToUpper(name) } }
//	}
//
// Each component becomes a function with the same parameters returning a
// runtime.Renderable.
//
// Slot values go through runtime.From. A rune is an int32, so a
// dynamic rune value renders as its code point; wrap it as runtime.Rune(r)
// to render the character. Interpreted templates yield runtime.Rune when
// ranging over a string, so they already render characters.
package codegen

import (
	"fmt"
	goparser "go/parser"
	"go/scanner"
	"go/token"
	"strconv"

	"github.com/goliatone/go-htmlgen/pkg/ast"
	"github.com/goliatone/go-htmlgen/pkg/parser"
)

// Extension is the file extension of component files.
const Extension = ".htmlg"

// File is a parsed component file.
type File struct {
	Path       string
	Package    string
	Imports    []Import
	Components []*Component
}

// Import is one Go import of a component file. Name is the explicit alias,
// empty when none was given.
type Import struct {
	Name string
	Path string
}

// Component is one component declaration.
type Component struct {
	Name string
	// Params is the Go parameter list, without parentheses.
	Params string
	Body   []ast.Node
	Pos    ast.Pos
}

// Component returns the component called name, or nil.
func (f *File) Component(name string) *Component {
	for _, c := range f.Components {
		if c.Name == name {
			return c
		}
	}
	return nil
}

type tok struct {
	tok token.Token
	lit string
	off int
	end int
	pos ast.Pos
}

type fileParser struct {
	path string
	src  []byte
	toks []tok
	i    int
}

// ParseFile parses a component file. Errors are *parser.Error values wrapped
// with the file path.
func ParseFile(path string, src []byte) (*File, error) {
	p := &fileParser{path: path, src: src}
	p.scan()
	f, err := p.file()
	if err != nil {
		return nil, fmt.Errorf("codegen: %s: %w", path, err)
	}
	return f, nil
}

func (p *fileParser) scan() {
	fset := token.NewFileSet()
	file := fset.AddFile(p.path, -1, len(p.src))
	var s scanner.Scanner
	// body errors are reported by the template parser, which also accepts '?'
	s.Init(file, p.src, func(token.Position, string) {}, 0)
	for {
		pos, t, lit := s.Scan()
		position := fset.Position(pos)
		off := position.Offset
		var end int
		switch {
		case t == token.SEMICOLON && lit == "\n", t == token.EOF:
			end = off
		case lit != "":
			end = off + len(lit)
		default:
			end = off + len(t.String())
		}
		p.toks = append(p.toks, tok{
			tok: t,
			lit: lit,
			off: off,
			end: end,
			pos: ast.Pos{Offset: off, Line: position.Line, Col: position.Column},
		})
		if t == token.EOF {
			return
		}
	}
}

func (p *fileParser) peek() tok {
	for p.toks[p.i].tok == token.SEMICOLON {
		p.i++
	}
	return p.toks[p.i]
}

// raw returns the next token without skipping separators.
func (p *fileParser) raw() tok {
	t := p.toks[p.i]
	if t.tok != token.EOF {
		p.i++
	}
	return t
}

func (p *fileParser) next() tok {
	t := p.peek()
	if t.tok != token.EOF {
		p.i++
	}
	return t
}

func (p *fileParser) errorf(t tok, format string, args ...any) error {
	frag := t.lit
	if frag == "" {
		frag = t.tok.String()
	}
	return parser.NewError(parser.ErrSyntax, t.pos, frag, fmt.Sprintf(format, args...))
}

func (p *fileParser) expect(want token.Token, what string) (tok, error) {
	t := p.next()
	if t.tok != want {
		return t, p.errorf(t, "expected %s, found %s", what, describe(t))
	}
	return t, nil
}

func describe(t tok) string {
	switch {
	case t.tok == token.EOF:
		return "end of file"
	case t.lit != "" && t.tok != token.SEMICOLON:
		return strconv.Quote(t.lit)
	}
	return "'" + t.tok.String() + "'"
}

func (p *fileParser) file() (*File, error) {
	f := &File{Path: p.path}
	if _, err := p.expect(token.PACKAGE, "package clause"); err != nil {
		return nil, err
	}
	name, err := p.expect(token.IDENT, "package name")
	if err != nil {
		return nil, err
	}
	f.Package = name.lit

	seen := make(map[string]bool)
	for {
		t := p.peek()
		switch {
		case t.tok == token.EOF:
			return f, nil
		case t.tok == token.IMPORT:
			if len(f.Components) > 0 {
				return nil, p.errorf(t, "imports must appear before components")
			}
			imports, err := p.imports()
			if err != nil {
				return nil, err
			}
			f.Imports = append(f.Imports, imports...)
		case t.tok == token.IDENT && t.lit == "component":
			c, err := p.component()
			if err != nil {
				return nil, err
			}
			if seen[c.Name] {
				return nil, parser.NewError(parser.ErrSyntax, c.Pos, c.Name,
					fmt.Sprintf("component %s redeclared", c.Name))
			}
			seen[c.Name] = true
			f.Components = append(f.Components, c)
		default:
			return nil, p.errorf(t, "expected import or component, found %s", describe(t))
		}
	}
}

func (p *fileParser) imports() ([]Import, error) {
	p.next()
	if p.peek().tok != token.LPAREN {
		spec, err := p.importSpec()
		if err != nil {
			return nil, err
		}
		return []Import{spec}, nil
	}
	p.next()
	var out []Import
	for p.peek().tok != token.RPAREN {
		if p.peek().tok == token.EOF {
			return nil, p.errorf(p.peek(), "unterminated import block")
		}
		spec, err := p.importSpec()
		if err != nil {
			return nil, err
		}
		out = append(out, spec)
	}
	p.next()
	return out, nil
}

func (p *fileParser) importSpec() (Import, error) {
	var spec Import
	switch t := p.peek(); t.tok {
	case token.IDENT:
		spec.Name = p.next().lit
	case token.PERIOD:
		p.next()
		spec.Name = "."
	}
	lit, err := p.expect(token.STRING, "import path")
	if err != nil {
		return spec, err
	}
	path, err := strconv.Unquote(lit.lit)
	if err != nil || path == "" {
		return spec, p.errorf(lit, "invalid import path %s", lit.lit)
	}
	spec.Path = path
	return spec, nil
}

func (p *fileParser) component() (*Component, error) {
	kw := p.next()
	name, err := p.expect(token.IDENT, "component name")
	if err != nil {
		return nil, err
	}
	lparen, err := p.expect(token.LPAREN, "'('")
	if err != nil {
		return nil, err
	}
	rparen, err := p.closing(token.LPAREN, token.RPAREN)
	if err != nil {
		return nil, p.errorf(lparen, "unbalanced parameter list")
	}
	params := string(p.src[lparen.end:rparen.off])
	if _, err := goparser.ParseExpr("func(" + params + ")"); err != nil {
		return nil, parser.NewError(parser.ErrExpression, lparen.pos, params,
			fmt.Sprintf("invalid parameter list: %v", err))
	}

	lbrace, err := p.expect(token.LBRACE, "'{'")
	if err != nil {
		return nil, err
	}
	rbrace, err := p.closing(token.LBRACE, token.RBRACE)
	if err != nil {
		return nil, p.errorf(lbrace, "unterminated component body")
	}

	base := ast.Pos{Offset: lbrace.end, Line: lbrace.pos.Line, Col: lbrace.pos.Col + 1}
	body, err := parser.Parse(string(p.src[lbrace.end:rbrace.off]), parser.WithBase(base))
	if err != nil {
		return nil, err
	}
	return &Component{Name: name.lit, Params: params, Body: body, Pos: kw.pos}, nil
}

// closing consumes tokens up to and including the close token matching an
// open token that was just consumed.
func (p *fileParser) closing(open, close token.Token) (tok, error) {
	depth := 1
	for {
		t := p.raw()
		switch t.tok {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return t, nil
			}
		case token.EOF:
			return t, fmt.Errorf("unexpected end of file")
		}
	}
}
