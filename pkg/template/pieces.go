package template

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"

	"github.com/goliatone/go-htmlgen/pkg/generate"
	"github.com/goliatone/go-htmlgen/pkg/parser"
	"github.com/goliatone/go-htmlgen/pkg/runtime"
	"github.com/goliatone/go-htmlgen/pkg/scope"
)

// piece is a Part with its expressions compiled.
type piece interface {
	render(buf *runtime.Buffer, s *scope.Scope)
}

func compileParts(parts []generate.Part) ([]piece, error) {
	out := make([]piece, 0, len(parts))
	for _, part := range parts {
		p, err := compilePart(part)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func compileExpr(src string, slot generate.Slot) (*scope.Expr, error) {
	e, err := scope.Compile(src)
	if err != nil {
		return nil, parser.NewError(parser.ErrExpression, slot.Position(), src, err.Error())
	}
	return e, nil
}

func compilePart(part generate.Part) (piece, error) {
	switch slot := part.Slot.(type) {
	case nil:
		return staticPiece(part.Text), nil
	case *generate.ExprSlot:
		e, err := compileExpr(slot.Expr.Src, slot)
		if err != nil {
			return nil, err
		}
		return exprPiece{expr: e}, nil
	case *generate.AttrSlot:
		e, err := compileExpr(slot.Expr.Src, slot)
		if err != nil {
			return nil, err
		}
		return attrPiece{name: slot.Name, expr: e}, nil
	case *generate.BranchSlot:
		b := branchPiece{arms: make([]armPiece, 0, slot.Arity())}
		for _, arm := range slot.Arms {
			var cond *scope.Expr
			if arm.Cond != nil {
				e, err := compileExpr(arm.Cond.Src, slot)
				if err != nil {
					return nil, err
				}
				cond = e
			}
			body, err := compileParts(arm.Parts)
			if err != nil {
				return nil, err
			}
			b.arms = append(b.arms, armPiece{cond: cond, body: body})
		}
		return b, nil
	case *generate.LoopSlot:
		e, err := compileExpr(slot.Expr.Src, slot)
		if err != nil {
			return nil, err
		}
		body, err := compileParts(slot.Parts)
		if err != nil {
			return nil, err
		}
		return loopPiece{key: slot.Key, value: slot.Value, expr: e, body: body}, nil
	}
	return nil, fmt.Errorf("unsupported slot %T", part.Slot)
}

func renderPieces(pieces []piece, buf *runtime.Buffer, s *scope.Scope) {
	for _, p := range pieces {
		p.render(buf, s)
	}
}

type staticPiece string

func (p staticPiece) render(buf *runtime.Buffer, _ *scope.Scope) {
	buf.AppendString(string(p))
}

type exprPiece struct {
	expr *scope.Expr
}

func (p exprPiece) render(buf *runtime.Buffer, s *scope.Scope) {
	runtime.From(p.expr.Eval(s)).RenderTo(buf)
}

type attrPiece struct {
	name string
	expr *scope.Expr
}

func (p attrPiece) render(buf *runtime.Buffer, s *scope.Scope) {
	runtime.OptionalAttr(p.name, p.expr.Eval(s)).RenderTo(buf)
}

type armPiece struct {
	cond *scope.Expr
	body []piece
}

type branchPiece struct {
	arms []armPiece
}

// render selects the first arm whose condition holds and renders it through
// the same EitherN value compiled code would build.
func (p branchPiece) render(buf *runtime.Buffer, s *scope.Scope) {
	chosen := len(p.arms) - 1
	for i, arm := range p.arms {
		if arm.cond == nil || arm.cond.Truthy(s) {
			chosen = i
			break
		}
	}
	body := p.arms[chosen].body
	either, ok := runtime.Choose(len(p.arms), chosen, runtime.FromFn(func(buf *runtime.Buffer) {
		renderPieces(body, buf, s)
	}))
	if !ok {
		renderPieces(body, buf, s)
		return
	}
	either.RenderTo(buf)
}

type loopPiece struct {
	key   string
	value string
	expr  *scope.Expr
	body  []piece
}

func (p loopPiece) render(buf *runtime.Buffer, s *scope.Scope) {
	each(p.expr.Eval(s), func(k, v any) {
		inner := s.With(p.key, k)
		if p.value != "" {
			inner = inner.With(p.value, v)
		}
		renderPieces(p.body, buf, inner)
	})
}

// each ranges over v like a Go for-range statement with one or two
// variables: k is the index or key (or the element for integers and
// single-value iterators), v the element. Ranging over a string yields byte
// offsets and runtime.Rune values. Maps are visited in key order so
// output is deterministic. Values that cannot be ranged over yield nothing.
func each(v any, fn func(k, v any)) {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && (rv.Kind() == reflect.Pointer && rv.Elem().Kind() != reflect.Array || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return
	}

	switch rv.Kind() {
	case reflect.Map:
		keys := rv.MapKeys()
		slices.SortFunc(keys, compareKeys)
		for _, k := range keys {
			fn(k.Interface(), rv.MapIndex(k).Interface())
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		for k := range rv.Seq() {
			fn(k.Interface(), nil)
		}
	case reflect.Func:
		if rv.IsNil() || !rv.Type().CanSeq() && !rv.Type().CanSeq2() {
			return
		}
		if rv.Type().CanSeq2() {
			for k, v := range rv.Seq2() {
				fn(k.Interface(), v.Interface())
			}
			return
		}
		for k := range rv.Seq() {
			fn(k.Interface(), nil)
		}
	case reflect.String:
		// Runes render as characters, not code points.
		for i, r := range rv.String() {
			fn(i, runtime.Rune(r))
		}
	case reflect.Slice, reflect.Array, reflect.Pointer:
		for k, v := range rv.Seq2() {
			fn(k.Interface(), v.Interface())
		}
	}
}

func compareKeys(a, b reflect.Value) int {
	switch a.Kind() {
	case reflect.String:
		return cmp.Compare(a.String(), b.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(a.Int(), b.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return cmp.Compare(a.Uint(), b.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(a.Float(), b.Float())
	}
	return cmp.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
}
