package templ

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-htmlgen/pkg/runtime"
	"github.com/goliatone/go-htmlgen/pkg/template"
)

func staticComponent(html string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, html)
		return err
	})
}

func TestComponentWritesRenderable(t *testing.T) {
	t.Parallel()

	tpl := template.MustCompile(`p { "Hi " name }`)
	c := Component(tpl.Execute(map[string]any{"name": "<Ada>"}))

	var out bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &out))
	require.Equal(t, "<p>Hi &lt;Ada&gt;</p>", out.String())
}

func TestRenderEmbedsVerbatim(t *testing.T) {
	t.Parallel()

	html, err := Render(context.Background(), staticComponent(`<b class="x">bold</b>`))
	require.NoError(t, err)

	tpl := template.MustCompile(`div { inner }`)
	require.Equal(t, `<div><b class="x">bold</b></div>`, tpl.Render(map[string]any{"inner": html}))

	empty, err := Render(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, runtime.PreEscaped(""), empty)
}

func TestEmbedRecordsErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	failing := templ.ComponentFunc(func(context.Context, io.Writer) error { return boom })

	_, err := Render(context.Background(), failing)
	require.ErrorIs(t, err, boom)

	embedded := Embed(context.Background(), failing)
	runtime.Render(embedded)
	require.ErrorIs(t, embedded.Err(), boom)

	ok := Embed(context.Background(), staticComponent("<i>x</i>"))
	require.Equal(t, "<span><i>x</i></span>", template.MustCompile(`span { c }`).Render(map[string]any{"c": ok}))
	require.NoError(t, ok.Err())
	require.Equal(t, len("<i>x</i>"), ok.SizeHint())
}

func TestEmbedDiscardsPartialOutputOnError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	partial := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<ul><li>half"); err != nil {
			return err
		}
		return boom
	})

	embedded := Embed(context.Background(), partial)
	out := template.MustCompile(`div { "before" c "after" }`).Render(map[string]any{"c": embedded})
	require.Equal(t, "<div>beforeafter</div>", out)
	require.ErrorIs(t, embedded.Err(), boom)
	require.Zero(t, embedded.SizeHint())
}
