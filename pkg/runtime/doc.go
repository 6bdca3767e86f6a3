// Package runtime holds the types generated components render through.
//
// Every value placed in a template slot is a Renderable: it writes its HTML
// form into a Buffer and offers a size estimate used to pre-size that buffer.
// Strings are escaped, PreEscaped is written verbatim, and Option, Slice, Map,
// Seq, Group and the EitherN sum types compose other renderables.
package runtime

//go:generate go run ../../scripts/gen-either -out either_gen.go
