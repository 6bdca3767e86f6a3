// Package escape maps characters onto their HTML entity form. Escaping is total
// and context free: the same character always produces the same output, and it
// applies equally to text content and attribute values.
package escape
