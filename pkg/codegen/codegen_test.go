package codegen

import (
	"errors"
	goparser "go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-htmlgen/pkg/ast"
	"github.com/goliatone/go-htmlgen/pkg/escape"
	"github.com/goliatone/go-htmlgen/pkg/generate"
	"github.com/goliatone/go-htmlgen/pkg/parser"
)

const viewsSrc = `package views

import "strings"

import (
	"fmt"
	h "example.com/helpers"
)

// Banner has no dynamic parts.
component Banner() {
	header { h1 { "Welcome" } }
}

component Greeting(name string, admin bool) {
	div {
		class = "greeting", hidden? = !admin,
		h1 { "Hello, " strings.ToUpper(name) }
		if admin { span { "admin" } }
	}
}

component List(items []string, total int) {
	ul {
		for i, it := range items { li { data_index = i, it } }
		for _, it := range items { hr {} }
	}
	p { fmt.Sprint(total) h.Suffix() }
}
`

func TestParseFile(t *testing.T) {
	t.Parallel()

	f, err := ParseFile("views/greeting.htmlg", []byte(viewsSrc))
	if err != nil {
		t.Fatalf("ParseFile returned error: %v", err)
	}
	if f.Package != "views" {
		t.Fatalf("unexpected package %q", f.Package)
	}
	wantImports := []Import{
		{Path: "strings"},
		{Path: "fmt"},
		{Name: "h", Path: "example.com/helpers"},
	}
	if diff := cmp.Diff(wantImports, f.Imports); diff != "" {
		t.Fatalf("imports mismatch (-want +got):\n%s", diff)
	}

	var names, params []string
	for _, c := range f.Components {
		names = append(names, c.Name)
		params = append(params, c.Params)
	}
	if diff := cmp.Diff([]string{"Banner", "Greeting", "List"}, names); diff != "" {
		t.Fatalf("components mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"", "name string, admin bool", "items []string, total int"}, params); diff != "" {
		t.Fatalf("params mismatch (-want +got):\n%s", diff)
	}
	if c := f.Component("Greeting"); c == nil || c.Pos.Line != 15 {
		t.Fatalf("expected Greeting at line 15, got %+v", c)
	}
	if f.Component("Missing") != nil {
		t.Fatalf("expected nil for unknown component")
	}
}

func TestEmit(t *testing.T) {
	t.Parallel()

	out, err := CompileFile("views/greeting.htmlg", []byte(viewsSrc))
	if err != nil {
		t.Fatalf("CompileFile returned error: %v", err)
	}
	src := string(out)

	if _, err := goparser.ParseFile(token.NewFileSet(), "views.go", out, 0); err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, src)
	}

	wants := []string{
		Header,
		"// source: greeting.htmlg",
		"package views",
		`h "example.com/helpers"`,
		`"github.com/goliatone/go-htmlgen/pkg/known"`,
		`"github.com/goliatone/go-htmlgen/pkg/runtime"`,
		"var _ = [...]known.Tag{known.Div, known.H1, known.Header, known.Hr, known.Li, known.P, known.Span, known.Ul}",
		"func Banner() runtime.Renderable {",
		`return runtime.PreEscaped("<header><h1>Welcome</h1></header>")`,
		"func Greeting(name string, admin bool) runtime.Renderable {",
		`buf.AppendString("<div class=\"greeting\"")`,
		`runtime.OptionalAttr("hidden", !admin).RenderTo(buf)`,
		"runtime.From(strings.ToUpper(name)).RenderTo(buf)",
		"func() runtime.Either2[runtime.Renderable, runtime.Renderable] {",
		"if admin {",
		`return runtime.Either2Of0[runtime.Renderable, runtime.Renderable](runtime.PreEscaped("<span>admin</span>"))`,
		"return runtime.Either2Of1[runtime.Renderable, runtime.Renderable](runtime.Empty)",
		"}().RenderTo(buf)",
		"for i, it := range items {",
		`buf.AppendString("<li data-index=\"")`,
		"runtime.From(i).RenderTo(buf)",
		"for range items {",
		"runtime.From(h.Suffix()).RenderTo(buf)",
	}
	for _, want := range wants {
		if !strings.Contains(src, want) {
			t.Fatalf("generated code missing %q:\n%s", want, src)
		}
	}
	if strings.Contains(src, "pkg/escape") {
		t.Fatalf("default policy should not import escape:\n%s", src)
	}
}

func TestEmitStrictPolicy(t *testing.T) {
	t.Parallel()

	src := "package views\ncomponent Quote(s string) { q { title = \"it's\", s } }\n"
	out, err := CompileFile("quote.htmlg", []byte(src), WithPolicy(escape.Strict))
	if err != nil {
		t.Fatalf("CompileFile returned error: %v", err)
	}
	got := string(out)
	for _, want := range []string{
		`"github.com/goliatone/go-htmlgen/pkg/escape"`,
		"runtime.WithPolicy(escape.Strict, runtime.Sized(",
		`buf.AppendString("<q title=\"it&#39;s\">")`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("generated code missing %q:\n%s", want, got)
		}
	}
}

func TestEmitAvoidsImportCollisions(t *testing.T) {
	t.Parallel()

	src := "package views\nimport \"runtime\"\ncomponent Version() { p { runtime.Version() } }\n"
	out, err := CompileFile("version.htmlg", []byte(src), WithKnownImport("example.com/tags/known"))
	if err != nil {
		t.Fatalf("CompileFile returned error: %v", err)
	}
	got := string(out)
	for _, want := range []string{
		`htmlgenruntime "github.com/goliatone/go-htmlgen/pkg/runtime"`,
		`"example.com/tags/known"`,
		"func Version() htmlgenruntime.Renderable {",
		"htmlgenruntime.From(runtime.Version()).RenderTo(buf)",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("generated code missing %q:\n%s", want, got)
		}
	}
	if _, err := goparser.ParseFile(token.NewFileSet(), "", out, 0); err != nil {
		t.Fatalf("generated code does not parse: %v", err)
	}
}

func TestParseFileErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		src  string
		kind error
		line int
	}{
		{name: "missing package", src: "component X() { p {} }", kind: parser.ErrSyntax, line: 1},
		{name: "stray declaration", src: "package v\nfunc X() {}\n", kind: parser.ErrSyntax, line: 2},
		{name: "body syntax", src: "package v\n\ncomponent Bad() {\n    div { class = }\n}\n", kind: parser.ErrSyntax, line: 4},
		{name: "unknown tag", src: "package v\ncomponent X() {\n\tblink {}\n}\n", kind: parser.ErrUnknownTag, line: 3},
		{name: "void children", src: "package v\ncomponent X() { br { \"x\" } }\n", kind: parser.ErrVoidChildren, line: 2},
		{name: "bad params", src: "package v\ncomponent X(a int,, b) { p {} }\n", kind: parser.ErrExpression, line: 2},
		{name: "unterminated body", src: "package v\ncomponent X() { p {}\n", kind: parser.ErrSyntax, line: 2},
		{name: "duplicate component", src: "package v\ncomponent X() {}\ncomponent X() {}\n", kind: parser.ErrSyntax, line: 3},
		{name: "import after component", src: "package v\ncomponent X() {}\nimport \"fmt\"\n", kind: parser.ErrSyntax, line: 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseFile("x.htmlg", []byte(tc.src))
			if !errors.Is(err, tc.kind) {
				t.Fatalf("want %v, got %v", tc.kind, err)
			}
			var perr *parser.Error
			if !errors.As(err, &perr) {
				t.Fatalf("expected *parser.Error, got %T", err)
			}
			if perr.Pos.Line != tc.line {
				t.Fatalf("want line %d, got %s", tc.line, perr.Pos)
			}
			if !strings.HasPrefix(err.Error(), "codegen: x.htmlg: ") {
				t.Fatalf("error should carry the file path: %v", err)
			}
		})
	}
}

func TestValidateRejectsInvalidExpressions(t *testing.T) {
	t.Parallel()

	parts := []generate.Part{
		{Text: "<p>"},
		{Slot: &generate.LoopSlot{
			Expr:  &ast.Expr{Src: "items"},
			Parts: []generate.Part{{Slot: &generate.ExprSlot{Expr: &ast.Expr{Src: "a +", Pos: ast.Pos{Line: 2, Col: 5}}}}},
		}},
	}
	err := validate(parts)
	if !errors.Is(err, parser.ErrExpression) {
		t.Fatalf("expected ErrExpression, got %v", err)
	}
}

func TestEmitRequiresPackage(t *testing.T) {
	if _, err := Emit(&File{}); err == nil {
		t.Fatalf("expected error for missing package name")
	}
}
