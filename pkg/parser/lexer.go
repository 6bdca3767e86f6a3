package parser

import (
	"fmt"
	"go/scanner"
	"go/token"
	"strconv"

	"github.com/goliatone/go-htmlgen/pkg/ast"
)

// item is one scanned token. off and end are byte offsets into the parsed
// source; pos is the reported position, shifted by the parser base.
type item struct {
	tok token.Token
	lit string
	off int
	end int
	pos ast.Pos
}

func (it item) text() string {
	if it.lit != "" {
		return it.lit
	}
	return it.tok.String()
}

func (it item) isQuestion() bool {
	return it.tok == token.ILLEGAL && it.lit == "?"
}

// isNewline reports whether it is a semicolon the scanner inserted at a line
// end.
func (it item) isNewline() bool {
	return it.tok == token.SEMICOLON && it.lit == "\n"
}

func describe(it item) string {
	switch {
	case it.tok == token.EOF:
		return "end of input"
	case it.isNewline():
		return "newline"
	}
	return strconv.Quote(it.text())
}

// tokenize scans src with the Go scanner. Templates use Go's token grammar
// plus '?', which the scanner reports as an illegal character and the
// parser accepts in optional attribute names.
func tokenize(src string, base ast.Pos) ([]item, error) {
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(src))

	var scanErr *Error
	handler := func(pos token.Position, msg string) {
		if scanErr != nil || msg == "illegal character U+003F '?'" {
			return
		}
		scanErr = &Error{Kind: ErrSyntax, Pos: shift(pos, base), Msg: msg}
	}

	var s scanner.Scanner
	s.Init(file, []byte(src), handler, 0)

	var items []item
	for {
		p, tok, lit := s.Scan()
		position := file.Position(p)
		it := item{tok: tok, lit: lit, off: position.Offset, pos: shift(position, base)}
		switch {
		case tok == token.EOF, it.isNewline():
			it.end = it.off
		default:
			it.end = it.off + len(it.text())
		}
		if tok == token.ILLEGAL && !it.isQuestion() && scanErr == nil {
			scanErr = &Error{Kind: ErrSyntax, Pos: it.pos, Fragment: lit, Msg: fmt.Sprintf("unexpected character %q", lit)}
		}
		if scanErr != nil {
			if scanErr.Fragment == "" && it.end > it.off {
				scanErr.Fragment = src[it.off:it.end]
			}
			return nil, scanErr
		}
		items = append(items, it)
		if tok == token.EOF {
			return items, nil
		}
	}
}

func shift(p token.Position, base ast.Pos) ast.Pos {
	out := ast.Pos{Offset: p.Offset + base.Offset, Line: p.Line, Col: p.Column}
	if base.Line > 0 {
		if p.Line == 1 {
			out.Col += base.Col - 1
		}
		out.Line += base.Line - 1
	}
	return out
}
