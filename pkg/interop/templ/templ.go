// Package templ adapts renderables to and from templ components.
package templ

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/goliatone/go-htmlgen/pkg/runtime"
)

// Component wraps r as a templ component. The output is written through a
// pooled buffer in one call.
func Component(r runtime.Renderable) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := runtime.WriteTo(w, r)
		return err
	})
}

// Render renders a templ component into a value that templates embed
// verbatim. templ escapes its own output, so nothing is escaped again.
func Render(ctx context.Context, c templ.Component) (runtime.PreEscaped, error) {
	if c == nil {
		return "", nil
	}
	buf := runtime.NewBuffer(256)
	if err := c.Render(ctx, buf); err != nil {
		return "", fmt.Errorf("templ: render component: %w", err)
	}
	return runtime.PreEscaped(buf.String()), nil
}

// Embed defers rendering c until the surrounding template renders. Errors
// are recorded and reported by Err after rendering; output the component
// wrote before failing is discarded.
func Embed(ctx context.Context, c templ.Component) *Embedded {
	return &Embedded{ctx: ctx, c: c}
}

// Embedded is a templ component inside a template.
type Embedded struct {
	ctx  context.Context
	c    templ.Component
	err  error
	size int
}

func (e *Embedded) RenderTo(buf *runtime.Buffer) {
	if e.c == nil {
		return
	}
	start := buf.Len()
	if err := e.c.Render(e.ctx, buf); err != nil {
		buf.Truncate(start)
		e.err = fmt.Errorf("templ: render component: %w", err)
	}
	e.size = buf.Len() - start
}

func (e *Embedded) SizeHint() int { return e.size }

// Err returns the error of the last render, if any.
func (e *Embedded) Err() error { return e.err }
