package runtime

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-htmlgen/pkg/escape"
)

type stringer struct{ v string }

func (s stringer) String() string { return s.v }

func ptr[T any](v T) *T { return &v }

func TestRenderBuiltins(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		r    Renderable
		want string
	}{
		{name: "text escapes", r: Text("<b>&</b>"), want: "&lt;b&gt;&amp;&lt;/b&gt;"},
		{name: "pre-escaped verbatim", r: PreEscaped("<b>ok</b>"), want: "<b>ok</b>"},
		{name: "rune escapes", r: Rune('<'), want: "&lt;"},
		{name: "rune multibyte", r: Rune('ß'), want: "ß"},
		{name: "bool true", r: Bool(true), want: "true"},
		{name: "bool false", r: Bool(false), want: "false"},
		{name: "int", r: Int(-42), want: "-42"},
		{name: "uint", r: Uint(18446744073709551615), want: "18446744073709551615"},
		{name: "float", r: Float(1.5), want: "1.5"},
		{name: "float whole", r: Float(2), want: "2"},
		{name: "float32", r: Float32(0.1), want: "0.1"},
		{name: "some", r: Some(Text("x")), want: "x"},
		{name: "none", r: None[Text](), want: ""},
		{name: "slice", r: Slice[Int]{1, 2, 3}, want: "123"},
		{name: "group skips nil", r: Group{Text("a"), nil, PreEscaped("<br>")}, want: "a<br>"},
		{name: "func", r: FromFn(func(buf *Buffer) { buf.AppendString("<i>") }), want: "<i>"},
		{name: "nil func", r: Func(nil), want: ""},
		{name: "doctype", r: Doctype, want: "<!DOCTYPE html>"},
		{name: "empty", r: Empty, want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, Render(tc.r)); diff != "" {
				t.Fatalf("render mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMapAppliesFunctionOnce(t *testing.T) {
	calls := 0
	m := Map([]string{"a", "<b>"}, func(s string) Text {
		calls++
		return Text(s)
	})

	if got := m.SizeHint(); got != 4 {
		t.Fatalf("size hint: want 4, got %d", got)
	}
	if got := Render(m); got != "a&lt;b&gt;" {
		t.Fatalf("unexpected render %q", got)
	}
	if calls != 2 {
		t.Fatalf("expected each item mapped once, got %d calls", calls)
	}
}

func TestSeqRendersIterator(t *testing.T) {
	seq := Seq[Int](func(yield func(Int) bool) {
		for i := Int(1); i <= 3; i++ {
			if !yield(i) {
				return
			}
		}
	})
	if got := Render(seq); got != "123" {
		t.Fatalf("unexpected render %q", got)
	}
	if seq.SizeHint() != 0 {
		t.Fatalf("iterator size hint should be zero")
	}
}

func TestFromConvertsGoValues(t *testing.T) {
	t.Parallel()

	var nilPtr *string
	name := "<ada>"

	cases := []struct {
		name string
		v    any
		want string
	}{
		{name: "nil", v: nil, want: ""},
		{name: "string", v: "a&b", want: "a&amp;b"},
		{name: "bytes", v: []byte("<"), want: "&lt;"},
		{name: "int", v: 7, want: "7"},
		{name: "uint8", v: uint8(255), want: "255"},
		{name: "float64", v: 3.25, want: "3.25"},
		{name: "bool", v: true, want: "true"},
		{name: "nil pointer", v: nilPtr, want: ""},
		{name: "pointer", v: &name, want: "&lt;ada&gt;"},
		{name: "strings", v: []string{"a", "b"}, want: "ab"},
		{name: "any slice", v: []any{1, "x", false}, want: "1xfalse"},
		{name: "int slice", v: []int{4, 5}, want: "45"},
		{name: "stringer", v: stringer{v: `"q"`}, want: "&quot;q&quot;"},
		{name: "error", v: errors.New("boom <1>"), want: "boom &lt;1&gt;"},
		{name: "renderable", v: PreEscaped("<hr>"), want: "<hr>"},
		{name: "struct fallback", v: struct{ A int }{A: 1}, want: "{1}"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Render(From(tc.v)); got != tc.want {
				t.Fatalf("From(%#v): want %q, got %q", tc.v, tc.want, got)
			}
		})
	}
}

func TestOptionalAttr(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		value any
		want  string
	}{
		{name: "nil", value: nil, want: ""},
		{name: "false", value: false, want: ""},
		{name: "true", value: true, want: ` hidden="true"`},
		{name: "empty string present", value: "", want: ` hidden=""`},
		{name: "text escaped", value: `a"b`, want: ` hidden="a&quot;b"`},
		{name: "none", value: None[Text](), want: ""},
		{name: "some", value: Some(Int(3)), want: ` hidden="3"`},
		{name: "nil pointer", value: (*int)(nil), want: ""},
		{name: "pointer to false", value: ptr(false), want: ""},
		{name: "pointer to true", value: ptr(true), want: ` hidden="true"`},
		{name: "pointer to pointer to false", value: ptr(ptr(false)), want: ""},
		{name: "pointer to empty string", value: ptr(""), want: ` hidden=""`},
		{name: "nil slice", value: []string(nil), want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Render(OptionalAttr("hidden", tc.value)); got != tc.want {
				t.Fatalf("want %q, got %q", tc.want, got)
			}
		})
	}
}

func TestWithPolicyScopesEscaping(t *testing.T) {
	r := Group{
		WithPolicy(escape.Strict, Text("it's")),
		Text(" it's"),
	}
	if got := Render(r); got != "it&#39;s it's" {
		t.Fatalf("unexpected render %q", got)
	}
	if got := RenderPolicy(Text("'"), escape.Strict); got != "&#39;" {
		t.Fatalf("unexpected strict render %q", got)
	}
}

func TestEitherRendersSelectedArm(t *testing.T) {
	e := Either3Of1[Text, Int, PreEscaped](Int(9))
	if e.Index() != 1 {
		t.Fatalf("expected index 1, got %d", e.Index())
	}
	if got := Render(e); got != "9" {
		t.Fatalf("unexpected render %q", got)
	}
	if e.SizeHint() != Int(9).SizeHint() {
		t.Fatalf("size hint should come from the held arm")
	}

	var zero Either2[Renderable, Renderable]
	if got := Render(zero); got != "" {
		t.Fatalf("zero either with interface arms should render nothing, got %q", got)
	}
}

func TestChoose(t *testing.T) {
	for arity := 2; arity <= MaxArms; arity++ {
		for index := 0; index < arity; index++ {
			r, ok := Choose(arity, index, Int(index))
			if !ok {
				t.Fatalf("Choose(%d, %d) failed", arity, index)
			}
			indexed, ok := r.(interface{ Index() int })
			if !ok || indexed.Index() != index {
				t.Fatalf("Choose(%d, %d) produced wrong alternative", arity, index)
			}
		}
	}
	if _, ok := Choose(MaxArms+1, 0, Empty); ok {
		t.Fatalf("expected arity above MaxArms to fail")
	}
	if _, ok := Choose(3, 3, Empty); ok {
		t.Fatalf("expected out of range index to fail")
	}
}

func TestSizeHintTracksGrowingOutput(t *testing.T) {
	h := NewSizeHint(0)
	for size := 1; size <= 100; size++ {
		capacity := h.Get()
		if size > capacity {
			t.Fatalf("size %d exceeds estimate %d", size, capacity)
		}
		if capacity > size+size/8+75 {
			t.Fatalf("estimate %d too generous for size %d", capacity, size)
		}
		h.Update(size)
	}
}

func TestWriteToUsesPooledBuffer(t *testing.T) {
	var out bytes.Buffer
	n, err := WriteTo(&out, Group{PreEscaped("<p>"), Text("a<b"), PreEscaped("</p>")})
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if got := out.String(); got != "<p>a&lt;b</p>" || int(n) != len(got) {
		t.Fatalf("unexpected output %q (%d bytes)", got, n)
	}

	// a pooled buffer must come back with the default policy
	out.Reset()
	if _, err := WriteTo(&out, WithPolicy(escape.Strict, Text("'"))); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	out.Reset()
	if _, err := WriteTo(&out, Text("'")); err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if out.String() != "'" {
		t.Fatalf("policy leaked across pooled buffers: %q", out.String())
	}
}

func TestBufferGrowKeepsContent(t *testing.T) {
	buf := NewBuffer(1)
	buf.AppendString("abc")
	buf.Grow(1024)
	if cap(buf.Bytes())-buf.Len() < 1024 {
		t.Fatalf("grow did not reserve capacity")
	}
	buf.AppendString(strings.Repeat("x", 3))
	if buf.String() != "abcxxx" {
		t.Fatalf("unexpected content %q", buf.String())
	}
	if !slices.Equal(buf.Bytes(), []byte("abcxxx")) {
		t.Fatalf("bytes mismatch")
	}
}

func TestBufferTruncate(t *testing.T) {
	buf := NewBuffer(8)
	buf.AppendString("keep")
	mark := buf.Len()
	buf.AppendString("drop")
	buf.Truncate(mark)
	if buf.String() != "keep" {
		t.Fatalf("unexpected content %q", buf.String())
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out of range truncation")
		}
	}()
	buf.Truncate(buf.Len() + 1)
}
