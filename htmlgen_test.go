package htmlgen

import (
	"testing"

	"github.com/goliatone/go-htmlgen/pkg/runtime"
)

func TestRenderString(t *testing.T) {
	t.Parallel()

	got, err := RenderString(`html { body { p { "Hi " name } } }`, map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("RenderString returned error: %v", err)
	}
	if got != "<html><body><p>Hi Ada</p></body></html>" {
		t.Fatalf("unexpected output %q", got)
	}

	if _, err := RenderString(`div {`, nil); err == nil {
		t.Fatalf("expected error for unterminated element")
	}
}

func TestDocumentWithDoctype(t *testing.T) {
	t.Parallel()

	page := MustCompile(`html { head { title { t } } }`)
	got := Render(runtime.Group{Doctype, page.Execute(map[string]any{"t": "x"})})
	if got != "<!DOCTYPE html><html><head><title>x</title></head></html>" {
		t.Fatalf("unexpected document %q", got)
	}
}
