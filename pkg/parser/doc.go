// Package parser turns template source into an ast node tree.
//
// Templates use Go's token grammar. An element is a known tag name followed
// by a braced body of items separated by commas or simply juxtaposed:
//
//	div {
//		class = "card", hidden? = isHidden, "data-role" = "main"
//		h1 { "Hello, " name }
//		if admin { span { "admin" } } else { "guest" }
//		for _, item := range items { li { item.Title } }
//		Card{Title: title}
//	}
//
// Attributes (`name = value`, or `name? = value` for optional ones) must come
// before any child. A name followed by a brace is an element only when the
// name is a known tag; otherwise the tokens are reparsed as a Go composite
// literal. Every other item is an opaque Go expression, kept as source text.
package parser
