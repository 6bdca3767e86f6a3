package serve

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/goliatone/go-htmlgen/internal/discover"
	"github.com/goliatone/go-htmlgen/pkg/codegen"
	"github.com/goliatone/go-htmlgen/pkg/escape"
	"github.com/goliatone/go-htmlgen/pkg/template"
)

// Entry is one previewable component.
type Entry struct {
	Name   string
	File   string
	Params string
	// Template is nil when Err is set.
	Template *template.Template
	Err      error
}

// URL is the preview path of the component.
func (e *Entry) URL() string {
	return "/components/" + e.Name
}

// catalog is an immutable snapshot of the components found on disk.
type catalog struct {
	entries map[string]*Entry
	names   []string
	// problems are files that could not be parsed at all.
	problems []error
}

func loadCatalog(dir string, opts discover.Options, policy escape.Policy) (*catalog, error) {
	paths, err := discover.Collect(dir, nil, opts)
	if err != nil {
		return nil, err
	}

	c := &catalog{entries: make(map[string]*Entry)}
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("serve: read %s: %w", path, err)
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			rel = path
		}
		file, err := codegen.ParseFile(filepath.ToSlash(rel), src)
		if err != nil {
			c.problems = append(c.problems, err)
			continue
		}
		for _, comp := range file.Components {
			if prev, exists := c.entries[comp.Name]; exists {
				c.problems = append(c.problems,
					fmt.Errorf("serve: component %s in %s shadows %s", comp.Name, file.Path, prev.File))
				continue
			}
			entry := &Entry{Name: comp.Name, File: file.Path, Params: comp.Params}
			entry.Template, entry.Err = template.FromNodes(comp.Body,
				template.WithName(comp.Name), template.WithPolicy(policy))
			c.entries[comp.Name] = entry
			c.names = append(c.names, comp.Name)
		}
	}
	sort.Strings(c.names)
	return c, nil
}

func (c *catalog) list() []*Entry {
	out := make([]*Entry, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.entries[name])
	}
	return out
}
