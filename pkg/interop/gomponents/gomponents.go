// Package gomponents adapts renderables to and from gomponents nodes.
package gomponents

import (
	"fmt"
	"io"

	g "maragu.dev/gomponents"

	"github.com/goliatone/go-htmlgen/pkg/runtime"
)

// Node wraps r as a gomponents node.
func Node(r runtime.Renderable) g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		_, err := runtime.WriteTo(w, r)
		return err
	})
}

// Render renders a gomponents node into a value that templates embed
// verbatim.
func Render(n g.Node) (runtime.PreEscaped, error) {
	if n == nil {
		return "", nil
	}
	buf := runtime.NewBuffer(256)
	if err := n.Render(buf); err != nil {
		return "", fmt.Errorf("gomponents: render node: %w", err)
	}
	return runtime.PreEscaped(buf.String()), nil
}

// MustRender is Render that panics on error.
func MustRender(n g.Node) runtime.PreEscaped {
	out, err := Render(n)
	if err != nil {
		panic(err)
	}
	return out
}
