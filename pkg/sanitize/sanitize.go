// Package sanitize turns untrusted HTML into values templates can embed
// without escaping.
package sanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-htmlgen/pkg/runtime"
)

// Sanitizer filters markup through a bluemonday policy.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// New wraps a bluemonday policy.
func New(policy *bluemonday.Policy) *Sanitizer {
	if policy == nil {
		policy = bluemonday.StrictPolicy()
	}
	return &Sanitizer{policy: policy}
}

// String returns the sanitised markup.
func (s *Sanitizer) String(raw string) string {
	return strings.TrimSpace(s.policy.Sanitize(raw))
}

// HTML sanitises raw and returns it as pre-escaped output.
func (s *Sanitizer) HTML(raw string) runtime.PreEscaped {
	return runtime.PreEscaped(s.String(raw))
}

// Lazy returns a Renderable that sanitises raw when rendered.
func (s *Sanitizer) Lazy(raw string) runtime.Renderable {
	return lazy{s: s, raw: raw}
}

type lazy struct {
	s   *Sanitizer
	raw string
}

func (l lazy) RenderTo(buf *runtime.Buffer) {
	buf.AppendString(l.s.String(l.raw))
}

func (l lazy) SizeHint() int { return len(l.raw) }

var (
	ugcOnce    sync.Once
	ugc        *Sanitizer
	strictOnce sync.Once
	strict     *Sanitizer
	iconOnce   sync.Once
	icon       *Sanitizer
)

// UGC keeps the formatting markup common in user content (links, lists,
// emphasis, tables) and drops scripts, styles and event handlers.
func UGC(raw string) runtime.PreEscaped {
	ugcOnce.Do(func() {
		ugc = New(bluemonday.UGCPolicy())
	})
	return ugc.HTML(raw)
}

// Text strips every tag and leaves escaped text.
func Text(raw string) runtime.PreEscaped {
	strictOnce.Do(func() {
		strict = New(bluemonday.StrictPolicy())
	})
	return strict.HTML(raw)
}

// Icon keeps inline SVG icon markup only.
func Icon(raw string) runtime.PreEscaped {
	iconOnce.Do(func() {
		icon = New(iconPolicy())
	})
	return icon.HTML(raw)
}

func iconPolicy() *bluemonday.Policy {
	policy := bluemonday.StrictPolicy()
	policy.AllowElements(
		"svg", "g", "path", "circle", "rect", "line", "polyline", "polygon",
		"ellipse", "title", "desc", "defs", "use", "clipPath",
	)

	policy.AllowAttrs(
		"xmlns", "viewBox", "width", "height", "fill", "stroke",
		"stroke-width", "stroke-linecap", "stroke-linejoin", "aria-hidden",
		"role", "focusable", "class",
	).OnElements("svg")

	policy.AllowAttrs("href", "xlink:href", "clip-path").OnElements("use")

	for _, el := range []string{"path", "circle", "rect", "line", "polyline", "polygon", "ellipse"} {
		policy.AllowAttrs(
			"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
			"points", "rx", "ry", "fill", "stroke", "stroke-width",
			"stroke-linecap", "stroke-linejoin", "class",
		).OnElements(el)
	}
	policy.AllowAttrs("id").OnElements("clipPath", "defs", "g")
	return policy
}
