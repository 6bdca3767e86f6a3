package template

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
)

var (
	// ErrNotFound is returned by Registry lookups for unknown names.
	ErrNotFound = errors.New("template: not found")
	// ErrDuplicate is returned when a name is registered twice.
	ErrDuplicate = errors.New("template: already registered")
)

// Registry stores compiled templates by name with duplicate detection. It is
// safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	templates map[string]*Template
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		templates: make(map[string]*Template),
	}
}

// Register adds a template by its Name(). Duplicate names return an error.
func (r *Registry) Register(t *Template) error {
	if t == nil {
		return fmt.Errorf("template: template is required")
	}
	name := t.Name()
	if name == "" {
		return fmt.Errorf("template: template name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.templates[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicate, name)
	}
	r.templates[name] = t
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(t *Template) {
	if err := r.Register(t); err != nil {
		panic(err)
	}
}

// Add compiles src under name and registers the result.
func (r *Registry) Add(name, src string, opts ...Option) (*Template, error) {
	t, err := Compile(src, append(opts, WithName(name))...)
	if err != nil {
		return nil, err
	}
	if err := r.Register(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Get retrieves a template by name.
func (r *Registry) Get(name string) (*Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.templates[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return t, nil
}

// MustGet panics if the template is missing.
func (r *Registry) MustGet(name string) *Template {
	t, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return t
}

// List returns the registered names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a template is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.templates[name]
	return ok
}

// Render renders the named template with values.
func (r *Registry) Render(name string, values map[string]any) (string, error) {
	t, err := r.Get(name)
	if err != nil {
		return "", err
	}
	return t.Render(values), nil
}

// Execute writes the named template to w.
func (r *Registry) Execute(w io.Writer, name string, values map[string]any) error {
	t, err := r.Get(name)
	if err != nil {
		return err
	}
	if _, err := t.WriteTo(w, values); err != nil {
		return fmt.Errorf("template: write %q: %w", name, err)
	}
	return nil
}
