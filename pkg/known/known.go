// Package known lists the HTML elements and attributes the template parser
// accepts. The tables are sorted and never modified, so every lookup is safe
// for concurrent use.
package known

import (
	"slices"
	"strings"
)

// Tag is a known HTML element name.
type Tag string

// String returns the tag name.
func (t Tag) String() string { return string(t) }

// Void reports whether t is a void element.
func (t Tag) Void() bool { return IsVoidTag(string(t)) }

// GoName returns the identifier of the constant declaring t in this package.
func (t Tag) GoName() string {
	if t == HTML {
		return "HTML"
	}
	if t == "" {
		return ""
	}
	return strings.ToUpper(string(t[:1])) + string(t[1:])
}

// Lookup returns the Tag for name. Matching is case-sensitive.
func Lookup(name string) (Tag, bool) {
	if _, ok := slices.BinarySearch(elements[:], Tag(name)); !ok {
		return "", false
	}
	return Tag(name), true
}

// IsKnownTag reports whether name is a known element.
func IsKnownTag(name string) bool {
	_, ok := slices.BinarySearch(elements[:], Tag(name))
	return ok
}

// IsVoidTag reports whether name is a void element.
func IsVoidTag(name string) bool {
	_, ok := slices.BinarySearch(voidElements[:], Tag(name))
	return ok
}

// Elements returns a copy of the sorted element table.
func Elements() []Tag {
	return slices.Clone(elements[:])
}

// VoidElements returns a copy of the sorted void element table.
func VoidElements() []Tag {
	return slices.Clone(voidElements[:])
}
