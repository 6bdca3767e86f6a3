package parser

import (
	"errors"
	"strings"

	"github.com/goliatone/go-htmlgen/pkg/ast"
)

// Error kinds. Every *Error wraps exactly one of these, so callers can test
// with errors.Is.
var (
	ErrSyntax              = errors.New("syntax error")
	ErrAttributeAfterChild = errors.New("attributes must precede children")
	ErrVoidChildren        = errors.New("void elements cannot contain content")
	ErrUnknownTag          = errors.New("unknown tag name")
	ErrTooManyArms         = errors.New("too many branch arms")
	ErrExpression          = errors.New("invalid expression")
)

// Error is a template diagnostic. Fragment is the offending source text.
type Error struct {
	Kind     error
	Pos      ast.Pos
	Fragment string
	Msg      string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Pos.String())
	b.WriteString(": ")
	if e.Kind != nil {
		b.WriteString(e.Kind.Error())
	} else {
		b.WriteString("error")
	}
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Kind }

// NewError builds an *Error for callers outside the parser, such as the
// generator and the source emitter, that report against parsed nodes.
func NewError(kind error, pos ast.Pos, fragment, msg string) *Error {
	return &Error{Kind: kind, Pos: pos, Fragment: fragment, Msg: msg}
}
