// Package ast defines the node tree produced by the template parser.
package ast

import "fmt"

// Pos is a location in template source. Line and Col are 1-based; Offset is
// the byte offset.
type Pos struct {
	Offset int
	Line   int
	Col    int
}

func (p Pos) String() string {
	if p.Line == 0 {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Node is an element, text, expression, branch or loop.
type Node interface {
	Position() Pos
	node()
}

// Element is an HTML element. Void elements never have children.
type Element struct {
	Name     string
	Attrs    []*Attr
	Children []Node
	Void     bool
	Pos      Pos
}

// Text is literal text content. It is escaped when rendered.
type Text struct {
	Value string
	Pos   Pos
}

// Expr is an opaque expression. Src is its source text, trimmed. Lit is set
// when the expression is a single literal, which lets the generator fold it
// into static output.
type Expr struct {
	Src string
	Lit *Literal
	Pos Pos
}

// IsLiteral reports whether e is a foldable literal.
func (e *Expr) IsLiteral() bool { return e != nil && e.Lit != nil }

// Branch is an if/else-if/else chain. A chain written without a final else
// gets an empty synthetic arm, so every Branch has at least two arms.
type Branch struct {
	Arms []*Arm
	Pos  Pos
}

// Arity returns the number of arms, synthetic else included.
func (b *Branch) Arity() int { return len(b.Arms) }

// Arm is one alternative of a Branch. Cond is nil for the else arm.
type Arm struct {
	Cond      *Expr
	Body      []Node
	Synthetic bool
}

// Loop repeats Body for every element of Expr, binding Key and Value the way
// a Go range clause does. Either name may be "_" or empty.
type Loop struct {
	Key   string
	Value string
	Expr  *Expr
	Body  []Node
	Pos   Pos
}

func (n *Element) Position() Pos { return n.Pos }
func (n *Text) Position() Pos    { return n.Pos }
func (n *Expr) Position() Pos    { return n.Pos }
func (n *Branch) Position() Pos  { return n.Pos }
func (n *Loop) Position() Pos    { return n.Pos }

func (*Element) node() {}
func (*Text) node()    {}
func (*Expr) node()    {}
func (*Branch) node()  {}
func (*Loop) node()    {}

// Attr is a name/value pair on an element. Identifier names are stored in
// their HTML spelling (underscores become hyphens); Quoted records whether the
// name was written as a string. Optional attributes are rendered only when
// their value is present.
type Attr struct {
	Name     string
	Quoted   bool
	Optional bool
	Value    *Expr
	Pos      Pos
}

// LiteralKind classifies a literal expression.
type LiteralKind int

const (
	LitString LiteralKind = iota
	LitRune
	LitInt
	LitFloat
	LitBool
)

func (k LiteralKind) String() string {
	switch k {
	case LitString:
		return "string"
	case LitRune:
		return "rune"
	case LitInt:
		return "int"
	case LitFloat:
		return "float"
	case LitBool:
		return "bool"
	}
	return fmt.Sprintf("LiteralKind(%d)", int(k))
}

// Literal is a constant value. Raw is the source token; Value is the text the
// literal renders as, before escaping.
type Literal struct {
	Kind  LiteralKind
	Raw   string
	Value string
}

// Truthy reports whether a literal keeps an optional attribute. Only the
// literal false drops it.
func (l *Literal) Truthy() bool {
	return l.Kind != LitBool || l.Value == "true"
}

// Inspect walks nodes depth-first, calling fn for each node. Children of a
// node are skipped when fn returns false. Attribute values are visited as
// *Expr nodes.
func Inspect(nodes []Node, fn func(Node) bool) {
	for _, n := range nodes {
		inspect(n, fn)
	}
}

func inspect(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	switch n := n.(type) {
	case *Element:
		for _, attr := range n.Attrs {
			if attr.Value != nil {
				inspect(attr.Value, fn)
			}
		}
		Inspect(n.Children, fn)
	case *Branch:
		for _, arm := range n.Arms {
			if arm.Cond != nil {
				inspect(arm.Cond, fn)
			}
			Inspect(arm.Body, fn)
		}
	case *Loop:
		if n.Expr != nil {
			inspect(n.Expr, fn)
		}
		Inspect(n.Body, fn)
	}
}
