package escape

import (
	"strings"
	"unicode/utf8"
)

// Policy selects which characters are replaced by HTML entities. The zero value
// is Default.
type Policy uint8

const (
	// Default escapes &, <, > and ".
	Default Policy = iota
	// Strict additionally escapes the single quote as &#39;.
	Strict
)

// String returns the policy name used in configuration files.
func (p Policy) String() string {
	switch p {
	case Strict:
		return "strict"
	default:
		return "default"
	}
}

// ParsePolicy maps a configuration value onto a Policy. Unknown values fall
// back to Default.
func ParsePolicy(raw string) Policy {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "strict", "quotes", "single-quote":
		return Strict
	default:
		return Default
	}
}

// Char returns the replacement entity for r, reporting false when r passes
// through unchanged.
func (p Policy) Char(r rune) (string, bool) {
	switch r {
	case '&':
		return "&amp;", true
	case '<':
		return "&lt;", true
	case '>':
		return "&gt;", true
	case '"':
		return "&quot;", true
	case '\'':
		if p == Strict {
			return "&#39;", true
		}
	}
	return "", false
}

// Into appends the escaped form of s to dst. Capacity for len(s) bytes is
// reserved up front; inputs with many special characters still grow dst.
func (p Policy) Into(dst []byte, s string) []byte {
	if cap(dst)-len(dst) < len(s) {
		grown := make([]byte, len(dst), len(dst)+len(s))
		copy(grown, dst)
		dst = grown
	}
	last := 0
	for i := 0; i < len(s); i++ {
		// every escaped character is ASCII, so a byte scan never splits a rune
		esc, ok := p.Char(rune(s[i]))
		if !ok {
			continue
		}
		dst = append(dst, s[last:i]...)
		dst = append(dst, esc...)
		last = i + 1
	}
	return append(dst, s[last:]...)
}

// Escape returns the escaped form of s, allocating only when s contains a
// character the policy replaces.
func (p Policy) Escape(s string) string {
	if !p.Needs(s) {
		return s
	}
	return string(p.Into(make([]byte, 0, len(s)), s))
}

// Needs reports whether s contains at least one character the policy escapes.
func (p Policy) Needs(s string) bool {
	for i := 0; i < len(s); i++ {
		if _, ok := p.Char(rune(s[i])); ok {
			return true
		}
	}
	return false
}

// RuneInto appends the escaped form of a single rune.
func (p Policy) RuneInto(dst []byte, r rune) []byte {
	if esc, ok := p.Char(r); ok {
		return append(dst, esc...)
	}
	return utf8.AppendRune(dst, r)
}

// Char is Default.Char.
func Char(r rune) (string, bool) {
	return Default.Char(r)
}

// Into is Default.Into.
func Into(dst []byte, s string) []byte {
	return Default.Into(dst, s)
}

// String escapes s with the Default policy.
func String(s string) string {
	return Default.Escape(s)
}

// Needs is Default.Needs.
func Needs(s string) bool {
	return Default.Needs(s)
}
