package runtime

import (
	"fmt"
	"iter"
	"reflect"
	"unicode/utf8"

	"github.com/goliatone/go-htmlgen/pkg/escape"
)

// Doctype is the HTML5 document type declaration.
const Doctype = PreEscaped("<!DOCTYPE html>")

// Empty renders nothing.
var Empty Renderable = PreEscaped("")

// Text is a string rendered with escaping.
type Text string

func (t Text) RenderTo(buf *Buffer) { buf.AppendEscaped(string(t)) }
func (t Text) SizeHint() int        { return len(t) }

// Rune is a single character rendered with escaping.
type Rune rune

func (r Rune) RenderTo(buf *Buffer) { buf.AppendEscapedRune(rune(r)) }

// String returns the character, so runes compare equal to one-character
// strings in interpreted conditions.
func (r Rune) String() string { return string(rune(r)) }

func (r Rune) SizeHint() int {
	if n := utf8.RuneLen(rune(r)); n > 0 {
		return n
	}
	return utf8.UTFMax
}

// Bool renders as "true" or "false".
type Bool bool

func (b Bool) RenderTo(buf *Buffer) {
	if b {
		buf.AppendString("true")
		return
	}
	buf.AppendString("false")
}

func (b Bool) SizeHint() int { return 5 }

// Int renders the decimal form of a signed integer.
type Int int64

func (i Int) RenderTo(buf *Buffer) { buf.AppendInt(int64(i)) }
func (i Int) SizeHint() int        { return 20 }

// Uint renders the decimal form of an unsigned integer.
type Uint uint64

func (u Uint) RenderTo(buf *Buffer) { buf.AppendUint(uint64(u)) }
func (u Uint) SizeHint() int        { return 20 }

// Float renders the shortest decimal form of a float64.
type Float float64

func (f Float) RenderTo(buf *Buffer) { buf.AppendFloat(float64(f), 64) }
func (f Float) SizeHint() int        { return 24 }

// Float32 renders the shortest decimal form of a float32.
type Float32 float32

func (f Float32) RenderTo(buf *Buffer) { buf.AppendFloat(float64(f), 32) }
func (f Float32) SizeHint() int        { return 16 }

// PreEscaped is trusted markup written verbatim.
type PreEscaped string

func (p PreEscaped) RenderTo(buf *Buffer) { buf.AppendString(string(p)) }
func (p PreEscaped) SizeHint() int        { return len(p) }

// Func adapts a write callback into a Renderable. Generated components are
// Funcs.
type Func func(buf *Buffer)

func (f Func) RenderTo(buf *Buffer) {
	if f != nil {
		f(buf)
	}
}

func (f Func) SizeHint() int { return 0 }

// FromFn wraps fn as a Renderable.
func FromFn(fn func(buf *Buffer)) Func {
	return Func(fn)
}

// Sized attaches a fixed size hint to a renderable that cannot estimate its
// own output.
func Sized(hint int, r Renderable) Renderable {
	return sized{hint: hint, r: r}
}

type sized struct {
	hint int
	r    Renderable
}

func (s sized) RenderTo(buf *Buffer) { renderValue(s.r, buf) }
func (s sized) SizeHint() int        { return s.hint }

// Group renders its members in order. Nil members are skipped.
type Group []Renderable

func (g Group) RenderTo(buf *Buffer) {
	for _, r := range g {
		if r != nil {
			r.RenderTo(buf)
		}
	}
}

func (g Group) SizeHint() int {
	total := 0
	for _, r := range g {
		if r != nil {
			total += r.SizeHint()
		}
	}
	return total
}

// Option is a renderable that may be absent. The zero value is absent.
type Option[T Renderable] struct {
	value T
	ok    bool
}

// Some returns a present Option holding v.
func Some[T Renderable](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an absent Option.
func None[T Renderable]() Option[T] {
	return Option[T]{}
}

// Get returns the held value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.value, o.ok }

// IsAbsent implements Absenter.
func (o Option[T]) IsAbsent() bool { return !o.ok }

func (o Option[T]) RenderTo(buf *Buffer) {
	if o.ok {
		renderValue(o.value, buf)
	}
}

func (o Option[T]) SizeHint() int {
	if !o.ok {
		return 0
	}
	return hintValue(o.value)
}

// Slice renders every element in order.
type Slice[T Renderable] []T

func (s Slice[T]) RenderTo(buf *Buffer) {
	for _, v := range s {
		renderValue(v, buf)
	}
}

func (s Slice[T]) SizeHint() int {
	total := 0
	for _, v := range s {
		total += hintValue(v)
	}
	return total
}

// Mapped renders fn applied to every item. Each item is mapped at most once:
// asking for the size hint materialises the results, which RenderTo reuses.
type Mapped[S any, T Renderable] struct {
	items []S
	fn    func(S) T
	done  []T
}

// Map returns a Renderable that applies fn to each item lazily.
func Map[S any, T Renderable](items []S, fn func(S) T) *Mapped[S, T] {
	return &Mapped[S, T]{items: items, fn: fn}
}

func (m *Mapped[S, T]) materialise() []T {
	if m.done == nil && len(m.items) > 0 {
		m.done = make([]T, len(m.items))
		for i, item := range m.items {
			m.done[i] = m.fn(item)
		}
	}
	return m.done
}

func (m *Mapped[S, T]) RenderTo(buf *Buffer) {
	if m.done != nil {
		Slice[T](m.done).RenderTo(buf)
		return
	}
	for _, item := range m.items {
		renderValue(m.fn(item), buf)
	}
}

func (m *Mapped[S, T]) SizeHint() int {
	return Slice[T](m.materialise()).SizeHint()
}

// Seq renders every value produced by an iterator. Its length is unknown, so
// it contributes nothing to size hints.
type Seq[T Renderable] iter.Seq[T]

func (s Seq[T]) RenderTo(buf *Buffer) {
	if s == nil {
		return
	}
	for v := range s {
		renderValue(v, buf)
	}
}

func (s Seq[T]) SizeHint() int { return 0 }

// WithPolicy renders r with the given escape policy and restores the previous
// policy afterwards.
func WithPolicy(p escape.Policy, r Renderable) Renderable {
	return policyScope{policy: p, r: r}
}

type policyScope struct {
	policy escape.Policy
	r      Renderable
}

func (s policyScope) RenderTo(buf *Buffer) {
	prev := buf.SetPolicy(s.policy)
	renderValue(s.r, buf)
	buf.SetPolicy(prev)
}

func (s policyScope) SizeHint() int { return hintValue(s.r) }

// OptionalAttr renders ` name="value"` when value is present and nothing
// otherwise. See Present for the presence rules.
func OptionalAttr(name string, value any) Renderable {
	if !Present(value) {
		return Empty
	}
	return optionalAttr{name: name, value: From(value)}
}

type optionalAttr struct {
	name  string
	value Renderable
}

func (a optionalAttr) RenderTo(buf *Buffer) {
	buf.AppendByte(' ')
	buf.AppendString(a.name)
	buf.AppendString(`="`)
	a.value.RenderTo(buf)
	buf.AppendByte('"')
}

func (a optionalAttr) SizeHint() int {
	return len(a.name) + 4 + a.value.SizeHint()
}

// From converts an arbitrary Go value into a Renderable.
//
// Renderables pass through. Strings and byte slices become Text, numbers and
// booleans use their decimal or literal forms, and slices render each element.
// Nil values and nil pointers render nothing. Anything else is formatted with
// fmt and escaped.
func From(v any) Renderable {
	switch typed := v.(type) {
	case nil:
		return Empty
	case Renderable:
		if isNilPointer(typed) {
			return Empty
		}
		return typed
	case string:
		return Text(typed)
	case []byte:
		return Text(typed)
	case bool:
		return Bool(typed)
	case int:
		return Int(typed)
	case int8:
		return Int(typed)
	case int16:
		return Int(typed)
	case int32:
		return Int(typed)
	case int64:
		return Int(typed)
	case uint:
		return Uint(typed)
	case uint8:
		return Uint(typed)
	case uint16:
		return Uint(typed)
	case uint32:
		return Uint(typed)
	case uint64:
		return Uint(typed)
	case uintptr:
		return Uint(typed)
	case float32:
		return Float32(typed)
	case float64:
		return Float(typed)
	case []Renderable:
		return Group(typed)
	case []string:
		return Map(typed, func(s string) Text { return Text(s) })
	case []any:
		return Map(typed, From)
	case error:
		if isNilPointer(typed) {
			return Empty
		}
		return Text(typed.Error())
	case fmt.Stringer:
		if isNilPointer(typed) {
			return Empty
		}
		return Text(typed.String())
	}
	return fromReflect(reflect.ValueOf(v))
}

func fromReflect(rv reflect.Value) Renderable {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Empty
		}
		return From(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Empty
		}
		group := make(Group, rv.Len())
		for i := range group {
			group[i] = From(rv.Index(i).Interface())
		}
		return group
	case reflect.String:
		return Text(rv.String())
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Uint(rv.Uint())
	case reflect.Float32:
		return Float32(rv.Float())
	case reflect.Float64:
		return Float(rv.Float())
	case reflect.Func:
		if fn, ok := rv.Interface().(func(*Buffer)); ok {
			return Func(fn)
		}
	}
	return Text(fmt.Sprint(rv.Interface()))
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// renderValue renders v unless it is a nil interface or pointer, which can
// happen when a type parameter is instantiated with an interface type.
func renderValue[T Renderable](v T, buf *Buffer) {
	if isNilRenderable(v) {
		return
	}
	v.RenderTo(buf)
}

func hintValue[T Renderable](v T) int {
	if isNilRenderable(v) {
		return 0
	}
	return v.SizeHint()
}

func isNilRenderable(v Renderable) bool {
	if v == nil {
		return true
	}
	switch v.(type) {
	case Func, Group, Text, PreEscaped, Int, Uint, Float, Float32, Bool, Rune:
		return false
	}
	return isNilPointer(v)
}
