// Package testsupport holds fixture and golden-file helpers shared by tests.
// Set UPDATE_GOLDENS=1 to rewrite goldens from the current output.
package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Updating reports whether goldens should be rewritten.
func Updating() bool {
	return os.Getenv("UPDATE_GOLDENS") != ""
}

// Cases returns the base names of the files in dir with extension ext,
// sorted. A missing directory yields no cases.
func Cases(t *testing.T, dir, ext string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		t.Fatalf("read fixture dir: %v", err)
	}
	var out []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ext {
			continue
		}
		out = append(out, strings.TrimSuffix(entry.Name(), ext))
	}
	sort.Strings(out)
	return out
}

// MustReadFile reads a fixture.
func MustReadFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read fixture: %v", err)
	}
	return data
}

// LoadValues reads a JSON object of template values. A missing file yields
// nil so fixtures without inputs need no values file.
func LoadValues(path string) (map[string]any, error) {
	if path == "" {
		return nil, errors.New("testsupport: values path is required")
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("testsupport: read values: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("testsupport: unmarshal values: %w", err)
	}
	return out, nil
}

// MustLoadValues is LoadValues failing the test on error.
func MustLoadValues(t *testing.T, path string) map[string]any {
	t.Helper()
	values, err := LoadValues(path)
	if err != nil {
		t.Fatalf("load values: %v", err)
	}
	return values
}

// Golden compares got with the golden file at path, or rewrites the file
// when UPDATE_GOLDENS is set. Golden files end with a newline that is not
// part of the output.
func Golden(t *testing.T, path string, got []byte) {
	t.Helper()

	payload := append(append([]byte(nil), got...), '\n')
	if WriteMaybeGolden(t, path, payload) {
		return
	}
	want := MustReadFile(t, path)
	if diff := cmp.Diff(string(want), string(payload)); diff != "" {
		t.Fatalf("golden %s mismatch (-want +got):\n%s", path, diff)
	}
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written.
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if !Updating() {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureOutput runs a render function that both returns and writes its
// output, returning the two so tests can assert they agree.
func CaptureOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return out, buf.String()
}
