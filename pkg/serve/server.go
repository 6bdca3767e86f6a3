// Package serve previews component files over HTTP. Components are rendered
// in interpreted mode with query or form values as their inputs; htmx
// requests receive the bare fragment and everything else a full page.
package serve

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/a-h/templ"
	htmx "github.com/angelofallars/htmx-go"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/goliatone/go-htmlgen/internal/discover"
	"github.com/goliatone/go-htmlgen/pkg/codegen"
	"github.com/goliatone/go-htmlgen/pkg/escape"
	interop "github.com/goliatone/go-htmlgen/pkg/interop/templ"
	"github.com/goliatone/go-htmlgen/pkg/runtime"
	"github.com/goliatone/go-htmlgen/pkg/template"
)

// DefaultHTMXSource is the script the preview page loads htmx from.
const DefaultHTMXSource = "https://unpkg.com/htmx.org@1.9.12"

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPolicy sets the escape policy components are compiled with.
func WithPolicy(p escape.Policy) Option {
	return func(s *Server) {
		s.policy = p
	}
}

// WithExtension sets the component file extension.
func WithExtension(ext string) Option {
	return func(s *Server) {
		if ext != "" {
			s.discover.Extension = ext
		}
	}
}

// WithSkip excludes directories by name.
func WithSkip(skip func(name string) bool) Option {
	return func(s *Server) {
		s.discover.Skip = skip
	}
}

// WithHTMXSource overrides the htmx script URL.
func WithHTMXSource(src string) Option {
	return func(s *Server) {
		s.htmxSrc = src
	}
}

// Server serves component previews from a directory.
type Server struct {
	dir      string
	discover discover.Options
	policy   escape.Policy
	logger   *slog.Logger
	htmxSrc  string

	mu  sync.RWMutex
	cat *catalog
}

// New loads the components below dir.
func New(dir string, opts ...Option) (*Server, error) {
	s := &Server{
		dir:      dir,
		discover: discover.Options{Extension: codegen.Extension},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		htmxSrc:  DefaultHTMXSource,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if err := s.Refresh(); err != nil {
		return nil, err
	}
	return s, nil
}

// Refresh reloads components from disk.
func (s *Server) Refresh() error {
	cat, err := loadCatalog(s.dir, s.discover, s.policy)
	if err != nil {
		return fmt.Errorf("serve: load components: %w", err)
	}
	for _, problem := range cat.problems {
		s.logger.Warn("component file skipped", "error", problem)
	}
	s.mu.Lock()
	s.cat = cat
	s.mu.Unlock()
	s.logger.Info("components loaded", "dir", s.dir, "count", len(cat.names))
	return nil
}

func (s *Server) catalog() *catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cat
}

// Components lists the loaded components, sorted by name.
func (s *Server) Components() []*Entry {
	return s.catalog().list()
}

// Handler returns the preview routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/", s.handleIndex)
	r.Get("/components/{name}", s.handleComponent)
	r.Post("/render", s.handleRender)
	r.Post("/refresh", s.handleRefresh)
	return r
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("preview server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("serve: shutdown: %w", err)
		}
		return nil
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"htmx", htmx.IsHTMX(r),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	fragment := indexView.Execute(map[string]any{
		"dir":     s.dir,
		"entries": s.Components(),
	})
	s.respond(w, r, http.StatusOK, "Components", fragment)
}

func (s *Server) handleComponent(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	entry, ok := s.catalog().entries[name]
	if !ok {
		s.fail(w, r, http.StatusNotFound, fmt.Errorf("component %q not found", name))
		return
	}
	if entry.Err != nil {
		s.fail(w, r, http.StatusUnprocessableEntity, entry.Err)
		return
	}
	values := make(map[string]any)
	for key, vals := range r.URL.Query() {
		if len(vals) > 0 {
			values[key] = vals[0]
		}
	}
	s.respond(w, r, http.StatusOK, entry.Name, entry.Template.Execute(values))
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.fail(w, r, http.StatusBadRequest, err)
		return
	}
	tpl, err := template.Compile(r.PostForm.Get("src"), template.WithPolicy(s.policy))
	if err != nil {
		s.fail(w, r, http.StatusUnprocessableEntity, err)
		return
	}
	values := make(map[string]any)
	for key := range r.PostForm {
		if key != "src" {
			values[key] = r.PostForm.Get(key)
		}
	}
	s.respond(w, r, http.StatusOK, "Render", tpl.Execute(values))
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	if err := s.Refresh(); err != nil {
		s.logger.Error("refresh failed", "error", err)
		s.fail(w, r, http.StatusInternalServerError, err)
		return
	}
	if htmx.IsHTMX(r) {
		s.handleIndex(w, r)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	s.logger.Warn("preview failed", "path", r.URL.Path, "status", status, "error", err)
	s.respond(w, r, status, http.StatusText(status), errorView.Execute(map[string]any{
		"status":  status,
		"message": err.Error(),
	}))
}

// respond writes fragment alone for htmx requests and inside the page
// layout otherwise.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, status int, title string, fragment runtime.Renderable) {
	if htmx.IsHTMX(r) {
		err := htmx.NewResponse().
			StatusCode(status).
			RenderTempl(r.Context(), w, interop.Component(fragment))
		if err != nil {
			s.logger.Error("write fragment", "error", err)
		}
		return
	}
	page := layoutView.Execute(map[string]any{
		"title":   title,
		"htmx":    s.htmxSrc,
		"content": fragment,
	})
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	templ.Handler(interop.Component(runtime.Group{runtime.Doctype, page}), templ.WithStatus(status)).ServeHTTP(w, r)
}
