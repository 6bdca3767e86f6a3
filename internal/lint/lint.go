// Package lint reports suspicious attributes in component files: duplicates,
// misspelled aria-* and hx-* names and optional attributes whose value is a
// constant.
package lint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-htmlgen/pkg/ast"
	"github.com/goliatone/go-htmlgen/pkg/codegen"
	"github.com/goliatone/go-htmlgen/pkg/known"
)

// Violation is one finding.
type Violation struct {
	File      string
	Component string
	Pos       ast.Pos
	Message   string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s:%s: %s: %s", v.File, v.Pos, v.Component, v.Message)
}

// File checks every component of f.
func File(f *codegen.File) []Violation {
	var out []Violation
	for _, c := range f.Components {
		ast.Inspect(c.Body, func(n ast.Node) bool {
			el, ok := n.(*ast.Element)
			if !ok {
				return true
			}
			for _, msg := range element(el) {
				out = append(out, Violation{
					File:      f.Path,
					Component: c.Name,
					Pos:       msg.pos,
					Message:   msg.text,
				})
			}
			return true
		})
	}
	Sort(out)
	return out
}

// Sort orders violations by file, position and message.
func Sort(vs []Violation) {
	sort.Slice(vs, func(i, j int) bool {
		a, b := vs[i], vs[j]
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Pos.Offset != b.Pos.Offset {
			return a.Pos.Offset < b.Pos.Offset
		}
		return a.Message < b.Message
	})
}

type finding struct {
	pos  ast.Pos
	text string
}

func element(el *ast.Element) []finding {
	var out []finding
	seen := make(map[string]bool, len(el.Attrs))
	for _, attr := range el.Attrs {
		name := attr.Name
		if seen[name] {
			out = append(out, finding{attr.Pos, fmt.Sprintf("duplicate attribute %q on <%s>", name, el.Name)})
		}
		seen[name] = true

		if msg := checkName(name); msg != "" {
			out = append(out, finding{attr.Pos, msg})
		}
		if attr.Optional && attr.Value.IsLiteral() {
			out = append(out, finding{attr.Pos, fmt.Sprintf("optional attribute %q has constant value %s", name, attr.Value.Src)})
		}
	}
	return out
}

func checkName(name string) string {
	switch {
	case name == "data-":
		return "data attribute needs a name"
	case strings.HasPrefix(name, "hx-on"):
		return ""
	case strings.HasPrefix(name, "aria-"):
		if _, ok := known.AttributeSetOf(name); !ok {
			return fmt.Sprintf("unknown ARIA attribute %q (known: %s)", name, strings.Join(known.Attributes(known.AriaAttributes), ", "))
		}
	case strings.HasPrefix(name, "hx-"):
		if _, ok := known.AttributeSetOf(name); !ok {
			return fmt.Sprintf("unknown htmx attribute %q", name)
		}
	}
	return ""
}
