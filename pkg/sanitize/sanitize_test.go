package sanitize

import (
	"strings"
	"testing"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-htmlgen/pkg/runtime"
	"github.com/goliatone/go-htmlgen/pkg/template"
)

func TestIconRemovesScripts(t *testing.T) {
	input := `  <svg viewBox="0 0 24 24"><script>alert('x')</script><path d="M0 0h24v24H0z" /></svg>`
	got := string(Icon(input))
	if got == "" {
		t.Fatalf("expected sanitized markup, got empty string")
	}
	if strings.Contains(got, "script") {
		t.Fatalf("expected script tag to be removed, got %q", got)
	}
	if !strings.Contains(got, "<svg") || !strings.Contains(got, "<path") {
		t.Fatalf("expected svg/path elements to remain, got %q", got)
	}
}

func TestUGCKeepsFormatting(t *testing.T) {
	got := string(UGC(`<p onclick="steal()"><b>bold</b><script>x()</script></p>`))
	if !strings.Contains(got, "<b>bold</b>") {
		t.Fatalf("expected formatting to remain, got %q", got)
	}
	if strings.Contains(got, "onclick") || strings.Contains(got, "script") {
		t.Fatalf("expected handlers and scripts to be removed, got %q", got)
	}
}

func TestTextStripsTags(t *testing.T) {
	got := string(Text("<b>x</b>"))
	if got != "x" {
		t.Fatalf("expected bare text, got %q", got)
	}
}

func TestSanitizedValuesRenderVerbatim(t *testing.T) {
	tpl := template.MustCompile(`article { body }`)
	s := New(bluemonday.UGCPolicy())

	got := tpl.Render(map[string]any{"body": s.Lazy("<em>hi</em><script></script>")})
	if got != "<article><em>hi</em></article>" {
		t.Fatalf("unexpected output %q", got)
	}

	got = tpl.Render(map[string]any{"body": "<em>hi</em>"})
	if got != "<article>&lt;em&gt;hi&lt;/em&gt;</article>" {
		t.Fatalf("plain strings must stay escaped, got %q", got)
	}

	if New(nil).HTML("<i>a</i>") != runtime.PreEscaped("a") {
		t.Fatalf("nil policy should strip all tags")
	}
}

func TestMarkdown(t *testing.T) {
	got := string(Markdown("# Title\n\nHello **world** <script>alert(1)</script>\n\n- one\n- two\n"))
	for _, want := range []string{"<h1", "Title</h1>", "<strong>world</strong>", "<li>one</li>"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in %q", want, got)
		}
	}
	if strings.Contains(got, "<script") {
		t.Fatalf("expected script to be removed, got %q", got)
	}
}
