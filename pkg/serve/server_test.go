package serve

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const cardFile = `package views

component Card(title string) {
	div { class = "card", h2 { title } }
}

component Broken(s string) {
	p { strings.ToUpper(s) }
}
`

func newServer(t *testing.T) (*Server, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "card.htmlg"), []byte(cardFile), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.htmlg"), []byte("component X() {}"), 0o644))

	s, err := New(dir)
	require.NoError(t, err)
	return s, dir
}

func get(t *testing.T, h http.Handler, target string, hx bool) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if hx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	return rec.Code, string(body)
}

func TestComponentsAreLoaded(t *testing.T) {
	t.Parallel()

	s, _ := newServer(t)
	entries := s.Components()
	require.Len(t, entries, 2)
	require.Equal(t, "Broken", entries[0].Name)
	require.Error(t, entries[0].Err)
	require.Equal(t, "Card", entries[1].Name)
	require.NoError(t, entries[1].Err)
	require.Equal(t, "card.htmlg", entries[1].File)
	require.Equal(t, "/components/Card", entries[1].URL())
}

func TestIndexPage(t *testing.T) {
	t.Parallel()

	s, _ := newServer(t)
	code, body := get(t, s.Handler(), "/", false)
	require.Equal(t, http.StatusOK, code)
	require.True(t, strings.HasPrefix(body, "<!DOCTYPE html><html lang=\"en\">"), body)
	require.Contains(t, body, `<a href="/components/Card" hx-get="/components/Card" hx-target="#output">Card</a> (card.htmlg)`)
	require.Contains(t, body, `<span class="error"> `)
	require.Contains(t, body, `<script src="https://unpkg.com/htmx.org@1.9.12"></script>`)
}

func TestComponentFragmentForHTMX(t *testing.T) {
	t.Parallel()

	s, _ := newServer(t)
	h := s.Handler()

	code, body := get(t, h, "/components/Card?title="+url.QueryEscape("<Hi>"), true)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, `<div class="card"><h2>&lt;Hi&gt;</h2></div>`, body)

	code, body = get(t, h, "/components/Card?title=x", false)
	require.Equal(t, http.StatusOK, code)
	require.Contains(t, body, `<main id="preview"><div class="card"><h2>x</h2></div></main>`)
}

func TestComponentErrors(t *testing.T) {
	t.Parallel()

	s, _ := newServer(t)
	h := s.Handler()

	code, body := get(t, h, "/components/Missing", true)
	require.Equal(t, http.StatusNotFound, code)
	require.Contains(t, body, `component &quot;Missing&quot; not found`)

	code, _ = get(t, h, "/components/Broken", true)
	require.Equal(t, http.StatusUnprocessableEntity, code)
}

func TestRenderEndpoint(t *testing.T) {
	t.Parallel()

	s, _ := newServer(t)
	h := s.Handler()

	form := url.Values{"src": {`p { "Hi " name }`}, "name": {"Ada"}}
	req := httptest.NewRequest(http.MethodPost, "/render", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "<p>Hi Ada</p>", rec.Body.String())

	form = url.Values{"src": {`blink {}`}}
	req = httptest.NewRequest(http.MethodPost, "/render", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.Contains(t, rec.Body.String(), "unknown tag")
}

func TestRefreshPicksUpNewFiles(t *testing.T) {
	t.Parallel()

	s, dir := newServer(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "extra.htmlg"),
		[]byte("package views\ncomponent Extra() { hr {} }\n"), 0o644))

	req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	code, body := get(t, s.Handler(), "/components/Extra", true)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "<hr>", body)
}
