package template

import (
	"bytes"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-htmlgen/pkg/escape"
	"github.com/goliatone/go-htmlgen/pkg/parser"
	"github.com/goliatone/go-htmlgen/pkg/runtime"
)

type item struct {
	Title string
	Done  bool
}

func TestRender(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		src    string
		values map[string]any
		want   string
	}{
		{
			name:   "slots escape values",
			src:    `div { class = cls, "Hello, " name }`,
			values: map[string]any{"cls": `a"b`, "name": "<Ada>"},
			want:   `<div class="a&quot;b">Hello, &lt;Ada&gt;</div>`,
		},
		{
			name:   "optional attribute present",
			src:    `input { disabled? = off, value? = v }`,
			values: map[string]any{"off": true, "v": ""},
			want:   `<input disabled="true" value="">`,
		},
		{
			name:   "optional attribute absent",
			src:    `input { disabled? = off, value? = v, id = "x" }`,
			values: map[string]any{"off": false, "v": runtime.None[runtime.Text]()},
			want:   `<input id="x">`,
		},
		{
			name:   "missing values render nothing",
			src:    `p { missing }`,
			values: nil,
			want:   `<p></p>`,
		},
		{
			name:   "first matching arm",
			src:    `if admin { "A" } else if guest { "G" } else { "N" }`,
			values: map[string]any{"admin": false, "guest": true},
			want:   "G",
		},
		{
			name:   "else arm",
			src:    `if admin { "A" } else if guest { "G" } else { "N" }`,
			values: map[string]any{},
			want:   "N",
		},
		{
			name:   "synthetic else renders nothing",
			src:    `div { if count > 3 { "many" } }`,
			values: map[string]any{"count": 2},
			want:   "<div></div>",
		},
		{
			name: "loop over slice",
			src:  `ul { for _, it := range items { li { class? = it.Done, it.Title } } }`,
			values: map[string]any{"items": []item{
				{Title: "one"},
				{Title: "two", Done: true},
			}},
			want: `<ul><li>one</li><li class="true">two</li></ul>`,
		},
		{
			name:   "loop index only",
			src:    `for i := range xs { i }`,
			values: map[string]any{"xs": []string{"a", "b", "c"}},
			want:   "012",
		},
		{
			name:   "loop over map in key order",
			src:    `for k, v := range m { k "=" v ";" }`,
			values: map[string]any{"m": map[string]int{"b": 2, "a": 1, "c": 3}},
			want:   "a=1;b=2;c=3;",
		},
		{
			name:   "loop over integer",
			src:    `for i := range 3 { i }`,
			values: nil,
			want:   "012",
		},
		{
			name:   "nested loops shadow",
			src:    `for _, row := range rows { tr { for _, c := range row { td { c } } } }`,
			values: map[string]any{"rows": [][]int{{1, 2}, {3}}},
			want:   "<tr><td>1</td><td>2</td></tr><tr><td>3</td></tr>",
		},
		{
			name:   "loop over nil",
			src:    `ul { for _, x := range xs { li { x } } }`,
			values: map[string]any{"xs": []string(nil)},
			want:   "<ul></ul>",
		},
		{
			name:   "loop over single-value iterator",
			src:    `ul { for v := range seq { li { v } } }`,
			values: map[string]any{"seq": slices.Values([]string{"a", "b"})},
			want:   "<ul><li>a</li><li>b</li></ul>",
		},
		{
			name:   "loop over two-value iterator",
			src:    `ul { for k, v := range pairs { li { k "=" v } } }`,
			values: map[string]any{"pairs": maps.All(map[string]int{"x": 1})},
			want:   "<ul><li>x=1</li></ul>",
		},
		{
			name:   "loop over string yields characters",
			src:    `for i, r := range s { i r }`,
			values: map[string]any{"s": "hé<"},
			want:   "0h1é3&lt;",
		},
		{
			name:   "string runes compare with char literals",
			src:    `for _, r := range s { if r == 'é' { "E" } else { r } }`,
			values: map[string]any{"s": "hé"},
			want:   "hE",
		},
		{
			name:   "renderable values pass through",
			src:    `div { body }`,
			values: map[string]any{"body": runtime.PreEscaped("<b>ok</b>")},
			want:   "<div><b>ok</b></div>",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tpl, err := Compile(tc.src)
			if err != nil {
				t.Fatalf("Compile returned error: %v", err)
			}
			if diff := cmp.Diff(tc.want, tpl.Render(tc.values)); diff != "" {
				t.Fatalf("output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStaticTemplate(t *testing.T) {
	t.Parallel()

	tpl := MustCompile(`html { body { h1 { "Hi" } } }`)
	got, ok := tpl.Static()
	if !ok {
		t.Fatalf("expected static template")
	}
	want := "<html><body><h1>Hi</h1></body></html>"
	if got != want {
		t.Fatalf("static mismatch: %q", got)
	}
	if r, ok := tpl.Execute(nil).(runtime.PreEscaped); !ok || string(r) != want {
		t.Fatalf("expected a PreEscaped constant, got %T", tpl.Execute(nil))
	}
	if diff := cmp.Diff([]string{"body", "h1", "html"}, tpl.Imports()); diff != "" {
		t.Fatalf("imports mismatch (-want +got):\n%s", diff)
	}
}

func TestExecuteIsDeferred(t *testing.T) {
	t.Parallel()

	tpl := MustCompile(`p { name }`)
	values := map[string]any{"name": "before"}
	r := tpl.Execute(values)
	values["name"] = "after"
	if got := runtime.Render(r); got != "<p>after</p>" {
		t.Fatalf("expected evaluation at render time, got %q", got)
	}
}

func TestStrictPolicy(t *testing.T) {
	t.Parallel()

	tpl := MustCompile(`p { title = "it's", name }`, WithPolicy(escape.Strict))
	got := tpl.Render(map[string]any{"name": "don't"})
	if got != `<p title="it&#39;s">don&#39;t</p>` {
		t.Fatalf("unexpected strict output %q", got)
	}

	outer := runtime.Group{tpl.Execute(map[string]any{"name": "'"}), runtime.Text("'")}
	if got := runtime.Render(outer); got != `<p title="it&#39;s">&#39;</p>'` {
		t.Fatalf("policy should be restored after the template, got %q", got)
	}
}

func TestWriteTo(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	n, err := MustCompile(`b { x }`).WriteTo(&out, map[string]any{"x": 42})
	if err != nil {
		t.Fatalf("WriteTo returned error: %v", err)
	}
	if out.String() != "<b>42</b>" || n != int64(out.Len()) {
		t.Fatalf("unexpected output %q (%d bytes)", out.String(), n)
	}
}

func TestCompileErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		src  string
		kind error
	}{
		{src: `div { class = }`, kind: parser.ErrSyntax},
		{src: `blink { "x" }`, kind: parser.ErrUnknownTag},
		{src: `br { "x" }`, kind: parser.ErrVoidChildren},
		{src: `p { strings.ToUpper(name) }`, kind: parser.ErrExpression},
		{src: `p { title? = flags << 2 }`, kind: parser.ErrExpression},
	}
	for _, tc := range cases {
		_, err := Compile(tc.src, WithName("broken"))
		if !errors.Is(err, tc.kind) {
			t.Fatalf("Compile(%q): want %v, got %v", tc.src, tc.kind, err)
		}
	}
}

func TestConcurrentRender(t *testing.T) {
	t.Parallel()

	tpl := MustCompile(`ul { for _, x := range xs { li { x } } }`)
	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got := tpl.Render(map[string]any{"xs": []int{i, i + 1}})
			want := fmt.Sprintf("<ul><li>%d</li><li>%d</li></ul>", i, i+1)
			if got != want {
				errs <- fmt.Errorf("goroutine %d: got %q", i, got)
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	if _, err := reg.Add("greeting", `p { "Hi " name }`); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	reg.MustRegister(MustCompile(`hr {}`, WithName("divider")))

	if err := reg.Register(MustCompile(`br {}`, WithName("divider"))); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	if err := reg.Register(MustCompile(`br {}`)); err == nil {
		t.Fatalf("expected error for unnamed template")
	}
	if _, err := reg.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if !reg.Has("greeting") || reg.Has("missing") {
		t.Fatalf("Has reported wrong membership")
	}
	if !slices.Equal(reg.List(), []string{"divider", "greeting"}) {
		t.Fatalf("unexpected list %v", reg.List())
	}

	got, err := reg.Render("greeting", map[string]any{"name": "Ada"})
	if err != nil || got != "<p>Hi Ada</p>" {
		t.Fatalf("Render = %q, %v", got, err)
	}

	var out bytes.Buffer
	if err := reg.Execute(&out, "divider", nil); err != nil || out.String() != "<hr>" {
		t.Fatalf("Execute = %q, %v", out.String(), err)
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("MustGet should panic for missing templates")
		}
	}()
	reg.MustGet("missing")
}
