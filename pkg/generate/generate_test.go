package generate

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"

	"github.com/goliatone/go-htmlgen/pkg/ast"
	"github.com/goliatone/go-htmlgen/pkg/escape"
	"github.com/goliatone/go-htmlgen/pkg/known"
	"github.com/goliatone/go-htmlgen/pkg/parser"
	"github.com/goliatone/go-htmlgen/pkg/runtime"
)

func generateSrc(t *testing.T, src string, opts ...Option) *Result {
	t.Helper()
	nodes, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("Parse(%q): %v", src, err)
	}
	res, err := Generate(nodes, opts...)
	if err != nil {
		t.Fatalf("Generate(%q): %v", src, err)
	}
	return res
}

func TestStaticTemplates(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		src  string
		want string
	}{
		{name: "empty element", src: `div {}`, want: "<div></div>"},
		{name: "attributes", src: `div { class = "foo bar", id = "baz" }`, want: `<div class="foo bar" id="baz"></div>`},
		{name: "void element", src: `input {}`, want: "<input>"},
		{name: "nested", src: `html { body { div {} } }`, want: "<html><body><div></div></body></html>"},
		{name: "escaped attribute", src: `div { title = "<script>" }`, want: `<div title="&lt;script&gt;"></div>`},
		{name: "escaped text", src: `p { "a < b & \"c\"" }`, want: "<p>a &lt; b &amp; &quot;c&quot;</p>"},
		{name: "folded literals", src: `p { 1 " " 2.5 " " true 'x' }`, want: "<p>1 2.5 truex</p>"},
		{name: "folded negative and hex", src: `p { -3, 0x10 }`, want: "<p>-316</p>"},
		{name: "literal optional true", src: `input { disabled? = true }`, want: `<input disabled="true">`},
		{name: "literal optional false", src: `input { disabled? = false, id = "x" }`, want: `<input id="x">`},
		{name: "literal optional empty string", src: `div { title? = "" }`, want: `<div title=""></div>`},
		{name: "quoted and normalised names", src: `div { "@click" = "go", data_id = 7 }`, want: `<div @click="go" data-id="7"></div>`},
		{name: "siblings at root", src: `h1 { "a" } p { "b" }`, want: "<h1>a</h1><p>b</p>"},
		{name: "text only", src: `"just text"`, want: "just text"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := generateSrc(t, tc.src)
			if len(res.Parts) != 1 || !res.Parts[0].IsStatic() {
				t.Fatalf("expected one static part, got %s", Describe(res.Parts))
			}
			got, ok := res.Static()
			if !ok {
				t.Fatalf("expected static result")
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("output mismatch (-want +got):\n%s", diff)
			}
			if res.SizeHint() != len(got) {
				t.Fatalf("size hint %d, want %d", res.SizeHint(), len(got))
			}
		})
	}
}

func TestEmptyTemplate(t *testing.T) {
	res := generateSrc(t, "")
	if len(res.Parts) != 0 {
		t.Fatalf("expected no parts, got %d", len(res.Parts))
	}
	if got, ok := res.Static(); !ok || got != "" {
		t.Fatalf("empty template should be static and empty")
	}
}

func TestDynamicSlots(t *testing.T) {
	t.Parallel()

	res := generateSrc(t, `div { class = cls, hidden? = isHidden, "Hello, " name }`)
	if _, ok := res.Static(); ok {
		t.Fatalf("dynamic template reported as static")
	}

	want := []string{
		`static "<div class=\""`,
		"expr cls",
		`static "\""`,
		"optional hidden = isHidden",
		`static ">Hello, "`,
		"expr name",
		`static "</div>"`,
	}
	got := strings.Split(strings.TrimSpace(Describe(res.Parts)), "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("parts mismatch (-want +got):\n%s", diff)
	}
}

func TestBranchSlot(t *testing.T) {
	t.Parallel()

	res := generateSrc(t, `div { if a { "A" } else if b { span { "B" } } else { "C" } }`)
	if len(res.Parts) != 3 {
		t.Fatalf("expected open tag, branch, close tag; got %s", Describe(res.Parts))
	}
	slot, ok := res.Parts[1].Slot.(*BranchSlot)
	if !ok {
		t.Fatalf("expected branch slot, got %T", res.Parts[1].Slot)
	}
	if slot.Arity() != 3 {
		t.Fatalf("expected 3 arms, got %d", slot.Arity())
	}
	wantArms := []string{"A", "<span>B</span>", "C"}
	for i, want := range wantArms {
		got, ok := staticText(slot.Arms[i].Parts)
		if !ok || got != want {
			t.Fatalf("arm %d: want %q, got %q", i, want, got)
		}
	}
	if diff := cmp.Diff([]string{"div", "span"}, res.Imports); diff != "" {
		t.Fatalf("imports mismatch (-want +got):\n%s", diff)
	}
	if res.SizeHint() != len("<div>")+len("<span>B</span>")+len("</div>") {
		t.Fatalf("size hint should count the largest arm, got %d", res.SizeHint())
	}

	res = generateSrc(t, `if ok { "yes" }`)
	slot = res.Parts[0].Slot.(*BranchSlot)
	if slot.Arity() != 2 || !slot.Arms[1].Synthetic || len(slot.Arms[1].Parts) != 0 {
		t.Fatalf("expected synthetic empty else arm")
	}
}

func TestLoopSlot(t *testing.T) {
	t.Parallel()

	res := generateSrc(t, `ul { for _, item := range items { li { item } } }`)
	if len(res.Parts) != 3 {
		t.Fatalf("unexpected parts %s", Describe(res.Parts))
	}
	loop, ok := res.Parts[1].Slot.(*LoopSlot)
	if !ok {
		t.Fatalf("expected loop slot, got %T", res.Parts[1].Slot)
	}
	if loop.Key != "_" || loop.Value != "item" || loop.Expr.Src != "items" {
		t.Fatalf("unexpected loop %+v", loop)
	}
	if got := Describe(loop.Parts); got != "static \"<li>\"\nexpr item\nstatic \"</li>\"\n" {
		t.Fatalf("unexpected body parts:\n%s", got)
	}
}

func TestImportsAreDistinctAndSorted(t *testing.T) {
	res := generateSrc(t, `ul { li { a {} } li { b {} } } p { for x := range xs { a { x } } }`)
	if diff := cmp.Diff([]string{"a", "b", "li", "p", "ul"}, res.Imports); diff != "" {
		t.Fatalf("imports mismatch (-want +got):\n%s", diff)
	}
}

func TestStrictPolicyFoldsSingleQuotes(t *testing.T) {
	res := generateSrc(t, `p { title = "it's", "don't" }`, WithPolicy(escape.Strict))
	got, _ := res.Static()
	if got != `<p title="it&#39;s">don&#39;t</p>` {
		t.Fatalf("unexpected strict output %q", got)
	}
}

// no part list, at any nesting depth, may hold an empty static part or two
// adjacent static parts
func checkParts(t *testing.T, parts []Part) {
	t.Helper()
	for i, part := range parts {
		if part.IsStatic() && part.Text == "" {
			t.Fatalf("empty static part at %d", i)
		}
		if i > 0 && part.IsStatic() && parts[i-1].IsStatic() {
			t.Fatalf("adjacent static parts at %d", i)
		}
		switch slot := part.Slot.(type) {
		case *BranchSlot:
			for _, arm := range slot.Arms {
				checkParts(t, arm.Parts)
			}
		case *LoopSlot:
			checkParts(t, slot.Parts)
		}
	}
}

func TestPartInvariants(t *testing.T) {
	t.Parallel()

	templates := []string{
		`div {}`,
		`a b c`,
		`div { x y }`,
		`"" x ""`,
		`div { class = a, id = b } span { c }`,
		`p { hidden? = h } p { title? = "" }`,
		`if a { b } else if c { "" } else { d e }`,
		`for _, v := range vs { "" v "" }`,
		`div { if x { span { y } } for i := range n { i } }`,
	}
	for _, src := range templates {
		checkParts(t, generateSrc(t, src).Parts)
	}
}

func TestStructuralErrorsOnHandBuiltTrees(t *testing.T) {
	t.Parallel()

	manyArms := &ast.Branch{}
	for i := 0; i < parser.MaxArms+1; i++ {
		manyArms.Arms = append(manyArms.Arms, &ast.Arm{Cond: &ast.Expr{Src: "c"}})
	}
	twelve := &ast.Branch{}
	for i := 0; i < parser.MaxArms; i++ {
		twelve.Arms = append(twelve.Arms, &ast.Arm{Cond: &ast.Expr{Src: "c"}})
	}

	cases := []struct {
		name string
		node ast.Node
		kind error
	}{
		{name: "unknown tag", node: &ast.Element{Name: "blink"}, kind: parser.ErrUnknownTag},
		{name: "void with children", node: &ast.Element{Name: "br", Children: []ast.Node{&ast.Text{Value: "x"}}}, kind: parser.ErrVoidChildren},
		{name: "too many arms", node: manyArms, kind: parser.ErrTooManyArms},
		{name: "too many arms after synthetic else", node: twelve, kind: parser.ErrTooManyArms},
		{name: "empty branch", node: &ast.Branch{}, kind: parser.ErrSyntax},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Generate([]ast.Node{tc.node})
			if !errors.Is(err, tc.kind) {
				t.Fatalf("want %v, got %v", tc.kind, err)
			}
		})
	}
}

func TestArmLimitMatchesRuntime(t *testing.T) {
	if parser.MaxArms != runtime.MaxArms {
		t.Fatalf("parser allows %d arms but runtime has Either types up to %d", parser.MaxArms, runtime.MaxArms)
	}
}

// wellFormed checks that every non-void start tag is closed in order.
func wellFormed(t *testing.T, out string) {
	t.Helper()
	z := html.NewTokenizer(strings.NewReader(out))
	var stack []string
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if !errors.Is(z.Err(), io.EOF) {
				t.Fatalf("tokenizer: %v", z.Err())
			}
			if len(stack) != 0 {
				t.Fatalf("unclosed elements %v in %q", stack, out)
			}
			return
		case html.StartTagToken:
			name, _ := z.TagName()
			if !known.IsVoidTag(string(name)) {
				stack = append(stack, string(name))
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if len(stack) == 0 || stack[len(stack)-1] != string(name) {
				t.Fatalf("unexpected </%s> in %q", name, out)
			}
			stack = stack[:len(stack)-1]
		}
	}
}

func TestStaticOutputIsWellFormed(t *testing.T) {
	t.Parallel()

	templates := []string{
		`html { head { title { "x" } meta { charset = "utf-8" } } body { main { h1 { "<hi>" } hr {} } } }`,
		`table { thead { tr { th { "a" } } } tbody { tr { td { 1 } td { 2 } } } }`,
		`form { label { for = "e", "Email" } input { type = "email", id = "e" } button { "Send" } }`,
	}
	for _, src := range templates {
		out, ok := generateSrc(t, src).Static()
		if !ok {
			t.Fatalf("expected static output for %q", src)
		}
		wellFormed(t, out)
	}
}
