// Package scope evaluates template expressions against runtime values.
//
// Interpreted templates cannot compile their slot expressions, so this
// package supports the subset that templates typically need:
//
//   - identifiers with dot paths: `user.Name`, `page.meta.title`
//   - zero-argument method calls: `item.Label()`
//   - indexing: `items[0]`, `labels["en"]`, and the len builtin
//   - literals: strings, runes, numbers, true, false, nil
//   - comparisons: == != < <= > >=
//   - arithmetic: + - * / %, with + concatenating strings
//   - boolean composition: && || ! and parentheses
//
// Values are read from maps with string keys, exported struct fields and
// methods, through pointers and interfaces. Evaluation never fails: anything
// that cannot be resolved is nil.
package scope

import "strings"

// Scope holds the values visible to an expression. Child scopes add loop
// variables without copying their parent.
type Scope struct {
	values map[string]any
	parent *Scope
}

// New returns a root scope over values. The map is not copied.
func New(values map[string]any) *Scope {
	return &Scope{values: values}
}

// With returns a child scope binding name to v. Blank names are ignored.
func (s *Scope) With(name string, v any) *Scope {
	if name == "" || name == "_" {
		return s
	}
	return &Scope{values: map[string]any{name: v}, parent: s}
}

// Lookup resolves a top-level name, innermost scope first.
func (s *Scope) Lookup(name string) (any, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if v, ok := cur.values[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// lookupPath resolves root.path[0].path[1]... A key containing the dotted
// path itself wins over traversal, so flat maps such as
// {"cta.headline": "..."} work.
func (s *Scope) lookupPath(root string, path []string) (any, bool) {
	if len(path) > 0 {
		dotted := root + "." + strings.Join(path, ".")
		if v, ok := s.Lookup(dotted); ok {
			return v, true
		}
	}
	current, ok := s.Lookup(root)
	if !ok {
		return nil, false
	}
	for _, name := range path {
		current, ok = field(current, name)
		if !ok {
			return nil, false
		}
	}
	return current, true
}
