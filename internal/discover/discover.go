// Package discover finds component files from Go-style path patterns and
// writes generated output next to them.
package discover

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/natefinch/atomic"
)

// Options controls which files are collected.
type Options struct {
	// Extension of component files, including the dot.
	Extension string
	// Skip reports whether a directory name is excluded from recursive
	// walks. Hidden directories are always skipped.
	Skip func(name string) bool
}

func (o Options) skip(name string) bool {
	if strings.HasPrefix(name, ".") && name != "." && name != ".." {
		return true
	}
	return o.Skip != nil && o.Skip(name)
}

// FindModuleRoot returns the closest directory at or above start holding a
// go.mod file.
func FindModuleRoot(start string) (string, error) {
	d := start
	for {
		if _, err := os.Stat(filepath.Join(d, "go.mod")); err == nil {
			return d, nil
		}
		parent := filepath.Dir(d)
		if parent == d {
			return "", fmt.Errorf("discover: could not find go.mod above %s", start)
		}
		d = parent
	}
}

// Collect resolves patterns relative to cwd into absolute, sorted, distinct
// component file paths. Patterns behave like Go package patterns:
//
//	./...       every component below cwd
//	./dir       components directly in dir
//	./dir/...   every component below dir
//	./file.ext  that file only
//
// No patterns means ./...
func Collect(cwd string, patterns []string, opts Options) ([]string, error) {
	if opts.Extension == "" {
		return nil, errors.New("discover: extension is required")
	}
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}

	seen := map[string]bool{}
	var out []string
	add := func(p string) error {
		abs, err := absolute(cwd, p)
		if err != nil {
			return err
		}
		if !seen[abs] {
			seen[abs] = true
			out = append(out, abs)
		}
		return nil
	}

	for _, raw := range patterns {
		pat := strings.TrimSpace(raw)
		if pat == "" {
			continue
		}

		if strings.HasSuffix(pat, "/...") || pat == "..." {
			base := strings.TrimSuffix(strings.TrimSuffix(pat, "..."), "/")
			if base == "" {
				base = "."
			}
			dir, err := absolute(cwd, base)
			if err != nil {
				return nil, err
			}
			if err := walk(dir, opts, add); err != nil {
				return nil, err
			}
			continue
		}

		target, err := absolute(cwd, pat)
		if err != nil {
			return nil, err
		}
		st, err := os.Stat(target)
		if err != nil {
			return nil, fmt.Errorf("discover: %w", err)
		}
		if st.IsDir() {
			paths, err := Dir(target, opts)
			if err != nil {
				return nil, err
			}
			for _, p := range paths {
				if err := add(p); err != nil {
					return nil, err
				}
			}
			continue
		}
		if !strings.HasSuffix(target, opts.Extension) {
			return nil, fmt.Errorf("discover: not a %s file: %s", opts.Extension, target)
		}
		if err := add(target); err != nil {
			return nil, err
		}
	}

	sort.Strings(out)
	return out, nil
}

// Dir lists the component files directly in dir, sorted.
func Dir(dir string, opts Options) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("discover: %w", err)
	}
	var out []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), opts.Extension) {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(out)
	return out, nil
}

func walk(root string, opts Options, add func(string) error) error {
	return filepath.WalkDir(root, func(path string, de fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if de.IsDir() {
			if path != root && opts.skip(de.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(de.Name(), opts.Extension) {
			return add(path)
		}
		return nil
	})
}

func absolute(cwd, p string) (string, error) {
	if !filepath.IsAbs(p) {
		p = filepath.Join(cwd, p)
	}
	return filepath.Abs(p)
}

// OutputPath returns the generated file path for a component file.
func OutputPath(src string) string {
	return src + ".go"
}

// WriteGenerated atomically replaces path with src unless it already holds
// exactly src. It reports whether the file changed.
func WriteGenerated(path string, src []byte) (bool, error) {
	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, src) {
		return false, nil
	}
	if err := atomic.WriteFile(path, bytes.NewReader(src)); err != nil {
		return false, fmt.Errorf("discover: write %s: %w", path, err)
	}
	return true, nil
}

// Stamps records modification times for paths. Missing files are left out.
func Stamps(paths []string) map[string]time.Time {
	out := make(map[string]time.Time, len(paths))
	for _, p := range paths {
		if st, err := os.Stat(p); err == nil {
			out[p] = st.ModTime()
		}
	}
	return out
}

// Changed returns the paths in next that are new or modified since prev,
// sorted.
func Changed(prev, next map[string]time.Time) []string {
	var out []string
	for p, t := range next {
		if old, ok := prev[p]; !ok || !old.Equal(t) {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}
