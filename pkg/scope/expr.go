package scope

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"strings"
)

// ErrUnsupported is returned by Compile for valid Go expressions outside the
// interpreted subset.
var ErrUnsupported = errors.New("scope: unsupported expression")

// Expr is a compiled expression. It is immutable and safe for concurrent use.
type Expr struct {
	src  string
	root node
}

// Compile parses src as a Go expression and checks it against the supported
// subset.
func Compile(src string) (*Expr, error) {
	trimmed := strings.TrimSpace(src)
	if trimmed == "" {
		return nil, errors.New("scope: empty expression")
	}
	parsed, err := parser.ParseExpr(trimmed)
	if err != nil {
		return nil, fmt.Errorf("scope: parse %q: %w", trimmed, err)
	}
	root, err := compile(parsed)
	if err != nil {
		return nil, err
	}
	return &Expr{src: trimmed, root: root}, nil
}

// MustCompile is Compile that panics on error.
func MustCompile(src string) *Expr {
	e, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return e
}

// String returns the expression source.
func (e *Expr) String() string { return e.src }

// Eval returns the value of the expression in s.
func (e *Expr) Eval(s *Scope) any {
	return e.root.eval(s)
}

// Truthy reports whether the expression value counts as true. See Truthy.
func (e *Expr) Truthy(s *Scope) bool {
	return Truthy(e.root.eval(s))
}

type node interface {
	eval(s *Scope) any
}

func unsupported(n ast.Node, what string) error {
	return fmt.Errorf("%w: %s at offset %d", ErrUnsupported, what, n.Pos()-1)
}

func compile(e ast.Expr) (node, error) {
	switch e := e.(type) {
	case *ast.ParenExpr:
		return compile(e.X)
	case *ast.BasicLit:
		return compileLiteral(e)
	case *ast.Ident:
		switch e.Name {
		case "true":
			return literal{value: true}, nil
		case "false":
			return literal{value: false}, nil
		case "nil":
			return literal{}, nil
		}
		return path{root: e.Name}, nil
	case *ast.SelectorExpr:
		inner, err := compile(e.X)
		if err != nil {
			return nil, err
		}
		if p, ok := inner.(path); ok {
			return path{root: p.root, names: append(append([]string(nil), p.names...), e.Sel.Name)}, nil
		}
		return selector{x: inner, name: e.Sel.Name}, nil
	case *ast.CallExpr:
		return compileCall(e)
	case *ast.IndexExpr:
		x, err := compile(e.X)
		if err != nil {
			return nil, err
		}
		idx, err := compile(e.Index)
		if err != nil {
			return nil, err
		}
		return index{x: x, index: idx}, nil
	case *ast.UnaryExpr:
		x, err := compile(e.X)
		if err != nil {
			return nil, err
		}
		switch e.Op {
		case token.NOT:
			return not{x: x}, nil
		case token.SUB:
			return negate{x: x}, nil
		case token.ADD:
			return x, nil
		}
		return nil, unsupported(e, "operator "+e.Op.String())
	case *ast.BinaryExpr:
		left, err := compile(e.X)
		if err != nil {
			return nil, err
		}
		right, err := compile(e.Y)
		if err != nil {
			return nil, err
		}
		switch e.Op {
		case token.LAND:
			return and{left: left, right: right}, nil
		case token.LOR:
			return or{left: left, right: right}, nil
		case token.EQL, token.NEQ, token.LSS, token.LEQ, token.GTR, token.GEQ:
			return compare{op: e.Op, left: left, right: right}, nil
		case token.ADD, token.SUB, token.MUL, token.QUO, token.REM:
			return arith{op: e.Op, left: left, right: right}, nil
		}
		return nil, unsupported(e, "operator "+e.Op.String())
	case *ast.CompositeLit:
		return nil, unsupported(e, "composite literal")
	case *ast.FuncLit:
		return nil, unsupported(e, "function literal")
	}
	return nil, unsupported(e, fmt.Sprintf("%T", e))
}

func compileLiteral(e *ast.BasicLit) (node, error) {
	switch e.Kind {
	case token.STRING, token.CHAR:
		v, err := strconv.Unquote(e.Value)
		if err != nil {
			return nil, fmt.Errorf("scope: invalid literal %s: %w", e.Value, err)
		}
		return literal{value: v}, nil
	case token.INT:
		if v, err := strconv.ParseInt(e.Value, 0, 64); err == nil {
			return literal{value: v}, nil
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(e.Value, "_", ""), 64)
		if err != nil {
			return nil, fmt.Errorf("scope: invalid literal %s: %w", e.Value, err)
		}
		return literal{value: v}, nil
	case token.FLOAT:
		v, err := strconv.ParseFloat(e.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("scope: invalid literal %s: %w", e.Value, err)
		}
		return literal{value: v}, nil
	}
	return nil, unsupported(e, "literal "+e.Value)
}

func compileCall(e *ast.CallExpr) (node, error) {
	if ident, ok := e.Fun.(*ast.Ident); ok && ident.Name == "len" {
		if len(e.Args) != 1 {
			return nil, unsupported(e, "len needs one argument")
		}
		x, err := compile(e.Args[0])
		if err != nil {
			return nil, err
		}
		return length{x: x}, nil
	}
	sel, ok := e.Fun.(*ast.SelectorExpr)
	if !ok || len(e.Args) > 0 {
		return nil, unsupported(e, "function call")
	}
	x, err := compile(sel.X)
	if err != nil {
		return nil, err
	}
	return call{x: x, method: sel.Sel.Name}, nil
}

type literal struct {
	value any
}

func (n literal) eval(*Scope) any { return n.value }

type path struct {
	root  string
	names []string
}

func (n path) eval(s *Scope) any {
	v, _ := s.lookupPath(n.root, n.names)
	return v
}

type selector struct {
	x    node
	name string
}

func (n selector) eval(s *Scope) any {
	v, _ := field(n.x.eval(s), n.name)
	return v
}

type call struct {
	x      node
	method string
}

func (n call) eval(s *Scope) any {
	v, _ := method(n.x.eval(s), n.method)
	return v
}

type index struct {
	x     node
	index node
}

func (n index) eval(s *Scope) any {
	v, _ := indexValue(n.x.eval(s), n.index.eval(s))
	return v
}

type length struct {
	x node
}

func (n length) eval(s *Scope) any {
	return int64(lengthOf(n.x.eval(s)))
}

type not struct {
	x node
}

func (n not) eval(s *Scope) any {
	return !Truthy(n.x.eval(s))
}

type negate struct {
	x node
}

func (n negate) eval(s *Scope) any {
	v := n.x.eval(s)
	if i, ok := coerceInt(v); ok {
		return -i
	}
	f, ok := coerceNumber(v)
	if !ok {
		return nil
	}
	return -f
}

type and struct {
	left  node
	right node
}

func (n and) eval(s *Scope) any {
	return Truthy(n.left.eval(s)) && Truthy(n.right.eval(s))
}

type or struct {
	left  node
	right node
}

func (n or) eval(s *Scope) any {
	return Truthy(n.left.eval(s)) || Truthy(n.right.eval(s))
}

type compare struct {
	op    token.Token
	left  node
	right node
}

func (n compare) eval(s *Scope) any {
	return Compare(n.op, n.left.eval(s), n.right.eval(s))
}

type arith struct {
	op    token.Token
	left  node
	right node
}

func (n arith) eval(s *Scope) any {
	return arithmetic(n.op, n.left.eval(s), n.right.eval(s))
}
