// Package template runs generated Parts without compiling Go: every slot
// expression is evaluated by pkg/scope against values supplied at render
// time.
package template

import (
	"fmt"
	"io"

	"github.com/goliatone/go-htmlgen/pkg/ast"
	"github.com/goliatone/go-htmlgen/pkg/escape"
	"github.com/goliatone/go-htmlgen/pkg/generate"
	"github.com/goliatone/go-htmlgen/pkg/parser"
	"github.com/goliatone/go-htmlgen/pkg/runtime"
	"github.com/goliatone/go-htmlgen/pkg/scope"
)

// Option configures Compile.
type Option func(*Template)

// WithName sets the template name used by Registry and in errors.
func WithName(name string) Option {
	return func(t *Template) {
		t.name = name
	}
}

// WithPolicy sets the escape policy for folded literals and slot values.
func WithPolicy(p escape.Policy) Option {
	return func(t *Template) {
		t.policy = p
	}
}

// WithBase offsets reported positions, for templates embedded in a larger
// file.
func WithBase(pos ast.Pos) Option {
	return func(t *Template) {
		t.base = pos
	}
}

// Template is a compiled template. It is immutable after Compile and safe for
// concurrent use.
type Template struct {
	name   string
	policy escape.Policy
	base   ast.Pos

	result   *generate.Result
	pieces   []piece
	static   string
	isStatic bool
	hint     *runtime.SizeHint
}

// Compile parses src, generates its Parts and compiles every slot expression.
func Compile(src string, opts ...Option) (*Template, error) {
	t := newTemplate(opts)
	nodes, err := parser.Parse(src, parser.WithBase(t.base))
	if err != nil {
		return nil, t.wrap("parse", err)
	}
	return t.build(nodes)
}

// FromNodes compiles an already parsed node list.
func FromNodes(nodes []ast.Node, opts ...Option) (*Template, error) {
	return newTemplate(opts).build(nodes)
}

func newTemplate(opts []Option) *Template {
	t := &Template{}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	return t
}

func (t *Template) build(nodes []ast.Node) (*Template, error) {
	res, err := generate.Generate(nodes, generate.WithPolicy(t.policy))
	if err != nil {
		return nil, t.wrap("generate", err)
	}
	pieces, err := compileParts(res.Parts)
	if err != nil {
		return nil, t.wrap("compile", err)
	}
	t.result = res
	t.pieces = pieces
	t.static, t.isStatic = res.Static()
	t.hint = runtime.NewSizeHint(res.SizeHint())
	return t, nil
}

func (t *Template) wrap(stage string, err error) error {
	if t.name != "" {
		return fmt.Errorf("template: %s %q: %w", stage, t.name, err)
	}
	return fmt.Errorf("template: %s: %w", stage, err)
}

// MustCompile is Compile that panics on error.
func MustCompile(src string, opts ...Option) *Template {
	t, err := Compile(src, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the template name, empty when unnamed.
func (t *Template) Name() string { return t.name }

// Policy returns the escape policy the template was compiled with.
func (t *Template) Policy() escape.Policy { return t.policy }

// Parts returns the generated parts. Callers must not modify them.
func (t *Template) Parts() []generate.Part { return t.result.Parts }

// Imports returns the element names used by the template, sorted.
func (t *Template) Imports() []string { return append([]string(nil), t.result.Imports...) }

// Static returns the full output when the template has no slots.
func (t *Template) Static() (string, bool) { return t.static, t.isStatic }

// Execute binds values and returns a Renderable that renders the template
// when asked. Nothing is evaluated until RenderTo.
func (t *Template) Execute(values map[string]any) runtime.Renderable {
	return t.ExecuteScope(scope.New(values))
}

// ExecuteScope is Execute with a prepared scope.
func (t *Template) ExecuteScope(s *scope.Scope) runtime.Renderable {
	if t.isStatic {
		if t.policy == escape.Default {
			return runtime.PreEscaped(t.static)
		}
		return runtime.WithPolicy(t.policy, runtime.PreEscaped(t.static))
	}
	return execution{t: t, scope: s}
}

// Render evaluates the template with values and returns the output.
func (t *Template) Render(values map[string]any) string {
	if t.isStatic {
		return t.static
	}
	return runtime.Render(t.Execute(values))
}

// WriteTo renders the template with values into w through a pooled buffer.
func (t *Template) WriteTo(w io.Writer, values map[string]any) (int64, error) {
	return runtime.WriteTo(w, t.Execute(values))
}

type execution struct {
	t     *Template
	scope *scope.Scope
}

func (e execution) RenderTo(buf *runtime.Buffer) {
	prev := buf.SetPolicy(e.t.policy)
	start := buf.Len()
	renderPieces(e.t.pieces, buf, e.scope)
	e.t.hint.Update(buf.Len() - start)
	buf.SetPolicy(prev)
}

func (e execution) SizeHint() int { return e.t.hint.Get() }
