// Package generate serialises an ast node tree into Parts: static text with
// literals folded in, interleaved with slots for every dynamic value.
package generate

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/goliatone/go-htmlgen/pkg/ast"
	"github.com/goliatone/go-htmlgen/pkg/escape"
	"github.com/goliatone/go-htmlgen/pkg/known"
	"github.com/goliatone/go-htmlgen/pkg/parser"
)

// Option configures Generate.
type Option func(*generator)

// WithPolicy sets the escape policy applied to folded literals. Renderers
// must use the same policy for slot values.
func WithPolicy(p escape.Policy) Option {
	return func(g *generator) {
		g.policy = p
	}
}

type generator struct {
	policy  escape.Policy
	imports map[string]struct{}
}

// Generate serialises nodes. Structural problems that the parser rejects are
// checked again here, so hand-built trees get the same errors.
func Generate(nodes []ast.Node, opts ...Option) (*Result, error) {
	g := &generator{imports: make(map[string]struct{})}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	parts, err := g.parts(nodes)
	if err != nil {
		return nil, err
	}

	imports := make([]string, 0, len(g.imports))
	for name := range g.imports {
		imports = append(imports, name)
	}
	slices.Sort(imports)
	return &Result{Parts: parts, Imports: imports}, nil
}

// builder accumulates static text in one buffer and records where slots cut
// it.
type builder struct {
	buf   []byte
	marks []mark
}

type mark struct {
	offset int
	slot   Slot
}

func (b *builder) text(s string) {
	b.buf = append(b.buf, s...)
}

func (b *builder) slot(s Slot) {
	b.marks = append(b.marks, mark{offset: len(b.buf), slot: s})
}

// finish slices the buffer at the recorded offsets. Empty static slices are
// dropped, and since every static slice spans the text between two slots, no
// two static parts are ever adjacent.
func (b *builder) finish() []Part {
	var parts []Part
	last := 0
	for _, m := range b.marks {
		if m.offset > last {
			parts = append(parts, Part{Text: string(b.buf[last:m.offset])})
		}
		parts = append(parts, Part{Slot: m.slot})
		last = m.offset
	}
	if len(b.buf) > last {
		parts = append(parts, Part{Text: string(b.buf[last:])})
	}
	return parts
}

func (g *generator) parts(nodes []ast.Node) ([]Part, error) {
	b := &builder{}
	for _, n := range nodes {
		if err := g.node(b, n); err != nil {
			return nil, err
		}
	}
	return b.finish(), nil
}

func (g *generator) node(b *builder, n ast.Node) error {
	switch n := n.(type) {
	case *ast.Element:
		return g.element(b, n)
	case *ast.Text:
		b.buf = g.policy.Into(b.buf, n.Value)
	case *ast.Expr:
		if n.Lit != nil {
			b.buf = g.policy.Into(b.buf, n.Lit.Value)
			return nil
		}
		b.slot(&ExprSlot{Expr: n})
	case *ast.Branch:
		slot, err := g.branch(n)
		if err != nil {
			return err
		}
		b.slot(slot)
	case *ast.Loop:
		body, err := g.parts(n.Body)
		if err != nil {
			return err
		}
		b.slot(&LoopSlot{Key: n.Key, Value: n.Value, Expr: n.Expr, Parts: body, Pos: n.Pos})
	case nil:
	default:
		return parser.NewError(parser.ErrSyntax, n.Position(), "", fmt.Sprintf("unsupported node %T", n))
	}
	return nil
}

func (g *generator) element(b *builder, el *ast.Element) error {
	if !known.IsKnownTag(el.Name) {
		return parser.NewError(parser.ErrUnknownTag, el.Pos, el.Name, strconv.Quote(el.Name))
	}
	void := known.IsVoidTag(el.Name)
	if void && len(el.Children) > 0 {
		return parser.NewError(parser.ErrVoidChildren, el.Children[0].Position(), "",
			fmt.Sprintf("<%s> is a void element", el.Name))
	}
	g.imports[el.Name] = struct{}{}

	b.text("<")
	b.text(el.Name)
	for _, attr := range el.Attrs {
		g.attribute(b, attr)
	}
	b.text(">")
	if void {
		return nil
	}
	for _, child := range el.Children {
		if err := g.node(b, child); err != nil {
			return err
		}
	}
	b.text("</")
	b.text(el.Name)
	b.text(">")
	return nil
}

func (g *generator) attribute(b *builder, attr *ast.Attr) {
	value := attr.Value
	if attr.Optional && !value.IsLiteral() {
		b.slot(&AttrSlot{Name: attr.Name, Expr: value})
		return
	}
	if attr.Optional && !value.Lit.Truthy() {
		return
	}

	b.text(" ")
	b.text(attr.Name)
	b.text(`="`)
	if value.IsLiteral() {
		b.buf = g.policy.Into(b.buf, value.Lit.Value)
	} else {
		b.slot(&ExprSlot{Expr: value})
	}
	b.text(`"`)
}

func (g *generator) branch(n *ast.Branch) (*BranchSlot, error) {
	if len(n.Arms) == 0 || n.Arms[0].Cond == nil {
		return nil, parser.NewError(parser.ErrSyntax, n.Pos, "if", "branch needs a condition")
	}
	if len(n.Arms) > parser.MaxArms {
		return nil, parser.NewError(parser.ErrTooManyArms, n.Pos, "if",
			fmt.Sprintf("%d arms, at most %d are supported", len(n.Arms), parser.MaxArms))
	}

	slot := &BranchSlot{Pos: n.Pos}
	for _, arm := range n.Arms {
		body, err := g.parts(arm.Body)
		if err != nil {
			return nil, err
		}
		slot.Arms = append(slot.Arms, Arm{Cond: arm.Cond, Parts: body, Synthetic: arm.Synthetic})
	}
	if n.Arms[len(n.Arms)-1].Cond != nil {
		// an if without else always ends in an empty arm
		slot.Arms = append(slot.Arms, Arm{Synthetic: true})
	}
	if len(slot.Arms) > parser.MaxArms {
		return nil, parser.NewError(parser.ErrTooManyArms, n.Pos, "if",
			fmt.Sprintf("%d arms, at most %d are supported", len(slot.Arms), parser.MaxArms))
	}
	return slot, nil
}
