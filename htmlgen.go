// Package htmlgen compiles a small HTML markup language into renderable
// values.
//
// Markup is written as nested element blocks:
//
//	div {
//	    class = "card", hidden? = isHidden,
//	    h1 { "Hello, " name }
//	    if admin { span { "admin" } } else { a { href = "/login", "Sign in" } }
//	    for _, item := range items { li { item.Title } }
//	}
//
// Compile interprets a template at runtime. cmd/htmlgen turns component files
// into Go functions ahead of time, with the same output.
package htmlgen

import (
	"github.com/goliatone/go-htmlgen/pkg/runtime"
	"github.com/goliatone/go-htmlgen/pkg/template"
)

// Doctype is the HTML5 document type declaration.
const Doctype = runtime.Doctype

// Template is a compiled template.
type Template = template.Template

// Renderable is anything that can write itself into a runtime Buffer.
type Renderable = runtime.Renderable

// Compile parses src and prepares it for rendering.
func Compile(src string, opts ...template.Option) (*Template, error) {
	return template.Compile(src, opts...)
}

// MustCompile is Compile that panics on error.
func MustCompile(src string, opts ...template.Option) *Template {
	return template.MustCompile(src, opts...)
}

// Render renders r to a string.
func Render(r Renderable) string {
	return runtime.Render(r)
}

// RenderString compiles src and renders it with values in one step.
func RenderString(src string, values map[string]any) (string, error) {
	t, err := template.Compile(src)
	if err != nil {
		return "", err
	}
	return t.Render(values), nil
}
