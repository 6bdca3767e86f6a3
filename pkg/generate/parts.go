package generate

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-htmlgen/pkg/ast"
)

// Part is one unit of generated output: static text, or a slot filled at
// render time. Exactly one of Text and Slot is set.
type Part struct {
	Text string
	Slot Slot
}

// IsStatic reports whether p is static text.
func (p Part) IsStatic() bool { return p.Slot == nil }

// Slot is the dynamic half of a Part.
type Slot interface {
	Position() ast.Pos
	slot()
}

// ExprSlot renders an expression value, escaped.
type ExprSlot struct {
	Expr *ast.Expr
}

// AttrSlot renders ` name="value"` when the value is present and nothing
// otherwise.
type AttrSlot struct {
	Name string
	Expr *ast.Expr
}

// BranchSlot renders exactly one arm: the first whose condition holds, or the
// final else arm.
type BranchSlot struct {
	Arms []Arm
	Pos  ast.Pos
}

// Arity returns the number of arms, synthetic else included.
func (s *BranchSlot) Arity() int { return len(s.Arms) }

// Arm is one alternative of a BranchSlot. Cond is nil for the else arm.
type Arm struct {
	Cond      *ast.Expr
	Parts     []Part
	Synthetic bool
}

// LoopSlot renders Parts once per element of Expr with Key and Value bound.
type LoopSlot struct {
	Key   string
	Value string
	Expr  *ast.Expr
	Parts []Part
	Pos   ast.Pos
}

func (s *ExprSlot) Position() ast.Pos   { return s.Expr.Pos }
func (s *AttrSlot) Position() ast.Pos   { return s.Expr.Pos }
func (s *BranchSlot) Position() ast.Pos { return s.Pos }
func (s *LoopSlot) Position() ast.Pos   { return s.Pos }

func (*ExprSlot) slot()   {}
func (*AttrSlot) slot()   {}
func (*BranchSlot) slot() {}
func (*LoopSlot) slot()   {}

// Result is the output of Generate.
type Result struct {
	Parts []Part
	// Imports lists every element name the template uses, sorted, once each.
	Imports []string
}

// Static returns the whole output when the template has no slots.
func (r *Result) Static() (string, bool) {
	return staticText(r.Parts)
}

func staticText(parts []Part) (string, bool) {
	switch len(parts) {
	case 0:
		return "", true
	case 1:
		if parts[0].IsStatic() {
			return parts[0].Text, true
		}
	}
	return "", false
}

// SizeHint estimates the rendered size from static text alone: every static
// part, the largest arm of each branch and one pass of each loop body.
func (r *Result) SizeHint() int {
	return sizeHint(r.Parts)
}

func sizeHint(parts []Part) int {
	total := 0
	for _, part := range parts {
		switch slot := part.Slot.(type) {
		case nil:
			total += len(part.Text)
		case *BranchSlot:
			largest := 0
			for _, arm := range slot.Arms {
				largest = max(largest, sizeHint(arm.Parts))
			}
			total += largest
		case *LoopSlot:
			total += sizeHint(slot.Parts)
		}
	}
	return total
}

// Describe lists parts one per line, nested slots indented.
func Describe(parts []Part) string {
	var b strings.Builder
	describeParts(&b, parts, 0)
	return b.String()
}

func describeParts(b *strings.Builder, parts []Part, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, part := range parts {
		switch slot := part.Slot.(type) {
		case nil:
			fmt.Fprintf(b, "%sstatic %q\n", indent, part.Text)
		case *ExprSlot:
			fmt.Fprintf(b, "%sexpr %s\n", indent, slot.Expr.Src)
		case *AttrSlot:
			fmt.Fprintf(b, "%soptional %s = %s\n", indent, slot.Name, slot.Expr.Src)
		case *BranchSlot:
			fmt.Fprintf(b, "%sbranch (%d arms)\n", indent, slot.Arity())
			for i, arm := range slot.Arms {
				cond := "else"
				if arm.Cond != nil {
					cond = "if " + arm.Cond.Src
				}
				fmt.Fprintf(b, "%s  arm %d: %s\n", indent, i, cond)
				describeParts(b, arm.Parts, depth+2)
			}
		case *LoopSlot:
			fmt.Fprintf(b, "%sloop %s\n", indent, slot.Expr.Src)
			describeParts(b, slot.Parts, depth+1)
		}
	}
}
