package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	goparser "go/parser"
	"go/scanner"
	"go/token"
	"path"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/goliatone/go-htmlgen/pkg/ast"
	"github.com/goliatone/go-htmlgen/pkg/escape"
	"github.com/goliatone/go-htmlgen/pkg/generate"
	"github.com/goliatone/go-htmlgen/pkg/known"
	"github.com/goliatone/go-htmlgen/pkg/parser"
)

const (
	// DefaultRuntimeImport is the import path of the runtime package used
	// by generated code.
	DefaultRuntimeImport = "github.com/goliatone/go-htmlgen/pkg/runtime"
	// DefaultKnownImport is the import path of the known-tag table.
	DefaultKnownImport = "github.com/goliatone/go-htmlgen/pkg/known"
	// DefaultEscapeImport is the import path of the escape package.
	DefaultEscapeImport = "github.com/goliatone/go-htmlgen/pkg/escape"

	// Header marks generated files.
	Header = "// Code generated by htmlgen. DO NOT EDIT."
)

// Option configures Emit.
type Option func(*emitter)

// WithPolicy sets the escape policy of generated components.
func WithPolicy(p escape.Policy) Option {
	return func(e *emitter) {
		e.policy = p
	}
}

// WithRuntimeImport overrides the runtime import path.
func WithRuntimeImport(path string) Option {
	return func(e *emitter) {
		if path != "" {
			e.runtimeImport = path
		}
	}
}

// WithKnownImport overrides the known-tag table import path.
func WithKnownImport(path string) Option {
	return func(e *emitter) {
		if path != "" {
			e.knownImport = path
		}
	}
}

// WithEscapeImport overrides the escape package import path.
func WithEscapeImport(path string) Option {
	return func(e *emitter) {
		if path != "" {
			e.escapeImport = path
		}
	}
}

type emitter struct {
	policy        escape.Policy
	runtimeImport string
	knownImport   string
	escapeImport  string

	rt      string
	kn      string
	esc     string
	out     bytes.Buffer
	imports map[string]struct{}
}

// CompileFile parses and emits a component file in one step.
func CompileFile(path string, src []byte, opts ...Option) ([]byte, error) {
	f, err := ParseFile(path, src)
	if err != nil {
		return nil, err
	}
	return Emit(f, opts...)
}

// Emit renders f as a gofmt'd Go source file.
func Emit(f *File, opts ...Option) ([]byte, error) {
	e := &emitter{
		runtimeImport: DefaultRuntimeImport,
		knownImport:   DefaultKnownImport,
		escapeImport:  DefaultEscapeImport,
		imports:       make(map[string]struct{}),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	if f == nil || f.Package == "" {
		return nil, fmt.Errorf("codegen: package name is required")
	}

	type generated struct {
		c   *Component
		res *generate.Result
	}
	var comps []generated
	for _, c := range f.Components {
		res, err := generate.Generate(c.Body, generate.WithPolicy(e.policy))
		if err != nil {
			return nil, fmt.Errorf("codegen: %s: component %s: %w", f.Path, c.Name, err)
		}
		if err := validate(res.Parts); err != nil {
			return nil, fmt.Errorf("codegen: %s: component %s: %w", f.Path, c.Name, err)
		}
		for _, name := range res.Imports {
			e.imports[name] = struct{}{}
		}
		comps = append(comps, generated{c: c, res: res})
	}

	e.names(f.Imports)
	e.header(f)
	e.tagMarker()
	for _, g := range comps {
		e.component(g.c, g.res)
	}

	src, err := format.Source(e.out.Bytes())
	if err != nil {
		return nil, fmt.Errorf("codegen: %s: format: %w", f.Path, err)
	}
	return src, nil
}

// validate checks that every slot expression is a Go expression.
func validate(parts []generate.Part) error {
	check := func(e *ast.Expr) error {
		if e == nil {
			return nil
		}
		if _, err := goparser.ParseExpr(e.Src); err != nil {
			return parser.NewError(parser.ErrExpression, e.Pos, e.Src, err.Error())
		}
		return nil
	}
	for _, part := range parts {
		switch slot := part.Slot.(type) {
		case *generate.ExprSlot:
			if err := check(slot.Expr); err != nil {
				return err
			}
		case *generate.AttrSlot:
			if err := check(slot.Expr); err != nil {
				return err
			}
		case *generate.BranchSlot:
			for _, arm := range slot.Arms {
				if err := check(arm.Cond); err != nil {
					return err
				}
				if err := validate(arm.Parts); err != nil {
					return err
				}
			}
		case *generate.LoopSlot:
			if err := check(slot.Expr); err != nil {
				return err
			}
			if err := validate(slot.Parts); err != nil {
				return err
			}
		}
	}
	return nil
}

// names picks package names for the support imports that do not collide
// with the file's own imports.
func (e *emitter) names(imports []Import) {
	taken := make(map[string]bool)
	for _, imp := range imports {
		name := imp.Name
		if name == "" {
			name = path.Base(imp.Path)
		}
		taken[name] = true
	}
	pick := func(base string) string {
		name := base
		for i := 2; taken[name]; i++ {
			name = "htmlgen" + base
			if i > 2 {
				name += strconv.Itoa(i)
			}
		}
		taken[name] = true
		return name
	}
	e.rt = pick("runtime")
	if len(e.imports) > 0 {
		e.kn = pick("known")
	}
	if e.policy != escape.Default {
		e.esc = pick("escape")
	}
}

func (e *emitter) printf(format string, args ...any) {
	fmt.Fprintf(&e.out, format, args...)
}

func importLine(name, base, path string) string {
	if name == base {
		return strconv.Quote(path)
	}
	return name + " " + strconv.Quote(path)
}

func (e *emitter) header(f *File) {
	e.printf("%s\n", Header)
	if f.Path != "" {
		e.printf("// source: %s\n", filepath.ToSlash(filepath.Base(f.Path)))
	}
	e.printf("\npackage %s\n\nimport (\n", f.Package)
	for _, imp := range f.Imports {
		if imp.Name != "" {
			e.printf("\t%s %q\n", imp.Name, imp.Path)
		} else {
			e.printf("\t%q\n", imp.Path)
		}
	}
	e.printf("\n")
	if e.esc != "" {
		e.printf("\t%s\n", importLine(e.esc, path.Base(e.escapeImport), e.escapeImport))
	}
	if e.kn != "" {
		e.printf("\t%s\n", importLine(e.kn, path.Base(e.knownImport), e.knownImport))
	}
	e.printf("\t%s\n)\n\n", importLine(e.rt, path.Base(e.runtimeImport), e.runtimeImport))
}

// tagMarker references every element the file uses through the known
// package, so a misspelt tag cannot compile.
func (e *emitter) tagMarker() {
	if len(e.imports) == 0 {
		return
	}
	names := make([]string, 0, len(e.imports))
	for name := range e.imports {
		names = append(names, name)
	}
	slices.Sort(names)
	e.printf("var _ = [...]%s.Tag{", e.kn)
	for i, name := range names {
		if i > 0 {
			e.printf(", ")
		}
		e.printf("%s.%s", e.kn, known.Tag(name).GoName())
	}
	e.printf("}\n\n")
}

func (e *emitter) component(c *Component, res *generate.Result) {
	e.printf("func %s(%s) %s.Renderable {\n", c.Name, c.Params, e.rt)
	if text, ok := res.Static(); ok {
		e.printf("return %s.PreEscaped(%s)\n}\n\n", e.rt, strconv.Quote(text))
		return
	}
	e.printf("return ")
	if e.esc != "" {
		e.printf("%s.WithPolicy(%s.%s, ", e.rt, e.esc, policyName(e.policy))
	}
	e.printf("%s.Sized(%d, %s.FromFn(func(buf *%s.Buffer) {\n", e.rt, res.SizeHint(), e.rt, e.rt)
	e.printf("buf.Grow(%d)\n", res.SizeHint())
	e.parts(res.Parts)
	e.printf("}))")
	if e.esc != "" {
		e.printf(")")
	}
	e.printf("\n}\n\n")
}

func policyName(p escape.Policy) string {
	if p == escape.Strict {
		return "Strict"
	}
	return "Default"
}

func (e *emitter) parts(parts []generate.Part) {
	for _, part := range parts {
		switch slot := part.Slot.(type) {
		case nil:
			e.printf("buf.AppendString(%s)\n", strconv.Quote(part.Text))
		case *generate.ExprSlot:
			e.printf("%s.From(%s).RenderTo(buf)\n", e.rt, slot.Expr.Src)
		case *generate.AttrSlot:
			e.printf("%s.OptionalAttr(%s, %s).RenderTo(buf)\n", e.rt, strconv.Quote(slot.Name), slot.Expr.Src)
		case *generate.BranchSlot:
			e.branch(slot)
		case *generate.LoopSlot:
			e.loop(slot)
		}
	}
}

// branch emits an immediately invoked function returning an EitherN with one
// positional constructor per arm.
func (e *emitter) branch(slot *generate.BranchSlot) {
	n := slot.Arity()
	args := strings.TrimSuffix(strings.Repeat(e.rt+".Renderable, ", n), ", ")
	either := fmt.Sprintf("%s.Either%d[%s]", e.rt, n, args)

	e.printf("func() %s {\n", either)
	for i, arm := range slot.Arms {
		switch {
		case arm.Cond != nil && i == 0:
			e.printf("if %s {\n", arm.Cond.Src)
		case arm.Cond != nil:
			e.printf("} else if %s {\n", arm.Cond.Src)
		case i > 0:
			e.printf("}\n")
		}
		e.printf("return %s.Either%dOf%d[%s](", e.rt, n, i, args)
		if len(arm.Parts) == 0 {
			e.printf("%s.Empty", e.rt)
		} else if text, ok := staticText(arm.Parts); ok {
			e.printf("%s.PreEscaped(%s)", e.rt, strconv.Quote(text))
		} else {
			e.printf("%s.FromFn(func(buf *%s.Buffer) {\n", e.rt, e.rt)
			e.parts(arm.Parts)
			e.printf("})")
		}
		e.printf(")\n")
	}
	e.printf("}().RenderTo(buf)\n")
}

func staticText(parts []generate.Part) (string, bool) {
	if len(parts) == 1 && parts[0].IsStatic() {
		return parts[0].Text, true
	}
	return "", false
}

// loop emits a range statement. Variables the body never mentions are
// blanked, since Go rejects unused loop variables.
func (e *emitter) loop(slot *generate.LoopSlot) {
	key, value := slot.Key, slot.Value
	if key != "" && !uses(slot.Parts, key) {
		key = "_"
	}
	if value != "" && !uses(slot.Parts, value) {
		value = ""
	}
	switch {
	case value == "" && (key == "" || key == "_"):
		e.printf("for range %s {\n", slot.Expr.Src)
	case value == "":
		e.printf("for %s := range %s {\n", key, slot.Expr.Src)
	default:
		if key == "" {
			key = "_"
		}
		e.printf("for %s, %s := range %s {\n", key, value, slot.Expr.Src)
	}
	e.parts(slot.Parts)
	e.printf("}\n")
}

// uses reports whether any expression in parts mentions the identifier name.
func uses(parts []generate.Part, name string) bool {
	for _, part := range parts {
		switch slot := part.Slot.(type) {
		case *generate.ExprSlot:
			if mentions(slot.Expr.Src, name) {
				return true
			}
		case *generate.AttrSlot:
			if mentions(slot.Expr.Src, name) {
				return true
			}
		case *generate.BranchSlot:
			for _, arm := range slot.Arms {
				if arm.Cond != nil && mentions(arm.Cond.Src, name) || uses(arm.Parts, name) {
					return true
				}
			}
		case *generate.LoopSlot:
			if mentions(slot.Expr.Src, name) || uses(slot.Parts, name) {
				return true
			}
		}
	}
	return false
}

func mentions(src, name string) bool {
	fset := token.NewFileSet()
	file := fset.AddFile("", -1, len(src))
	var s scanner.Scanner
	s.Init(file, []byte(src), nil, 0)
	prev := token.ILLEGAL
	for {
		_, t, lit := s.Scan()
		switch {
		case t == token.EOF:
			return false
		case t == token.IDENT && lit == name && prev != token.PERIOD:
			return true
		}
		prev = t
	}
}
