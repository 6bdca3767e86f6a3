package sanitize

import (
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/goliatone/go-htmlgen/pkg/runtime"
)

// Markdown converts src to HTML and filters the result through the UGC
// policy, so raw HTML inside the source cannot smuggle in scripts.
func Markdown(src string) runtime.PreEscaped {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return UGC(string(markdown.ToHTML([]byte(src), p, renderer)))
}
