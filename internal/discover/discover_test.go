package discover

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, f)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("package x\n"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
}

func rel(t *testing.T, root string, paths []string) []string {
	t.Helper()
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		r, err := filepath.Rel(root, p)
		if err != nil {
			t.Fatalf("rel: %v", err)
		}
		out = append(out, filepath.ToSlash(r))
	}
	return out
}

func TestCollect(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root,
		"a.htmlg",
		"notes.txt",
		"views/b.htmlg",
		"views/deep/c.htmlg",
		"vendor/skip.htmlg",
		".hidden/skip.htmlg",
	)
	opts := Options{Extension: ".htmlg", Skip: func(name string) bool { return name == "vendor" }}

	cases := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{name: "default recursive", patterns: nil, want: []string{"a.htmlg", "views/b.htmlg", "views/deep/c.htmlg"}},
		{name: "directory only", patterns: []string{"./views"}, want: []string{"views/b.htmlg"}},
		{name: "directory recursive", patterns: []string{"./views/..."}, want: []string{"views/b.htmlg", "views/deep/c.htmlg"}},
		{name: "single file deduplicated", patterns: []string{"a.htmlg", "./a.htmlg"}, want: []string{"a.htmlg"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Collect(root, tc.patterns, opts)
			if err != nil {
				t.Fatalf("Collect returned error: %v", err)
			}
			if diff := cmp.Diff(tc.want, rel(t, root, got)); diff != "" {
				t.Fatalf("paths mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if _, err := Collect(root, []string{"notes.txt"}, opts); err == nil {
		t.Fatalf("expected error for a file with the wrong extension")
	}
	if _, err := Collect(root, []string{"missing"}, opts); err == nil {
		t.Fatalf("expected error for a missing path")
	}
	if _, err := Collect(root, nil, Options{}); err == nil {
		t.Fatalf("expected error without an extension")
	}
}

func TestFindModuleRoot(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, "go.mod", "a/b/c.htmlg")
	got, err := FindModuleRoot(filepath.Join(root, "a", "b"))
	if err != nil {
		t.Fatalf("FindModuleRoot returned error: %v", err)
	}
	if got != root {
		t.Fatalf("want %s, got %s", root, got)
	}
}

func TestWriteGenerated(t *testing.T) {
	t.Parallel()

	path := OutputPath(filepath.Join(t.TempDir(), "a.htmlg"))
	if filepath.Base(path) != "a.htmlg.go" {
		t.Fatalf("unexpected output path %s", path)
	}

	changed, err := WriteGenerated(path, []byte("one"))
	if err != nil || !changed {
		t.Fatalf("first write: changed=%v err=%v", changed, err)
	}
	changed, err = WriteGenerated(path, []byte("one"))
	if err != nil || changed {
		t.Fatalf("identical write should be skipped: changed=%v err=%v", changed, err)
	}
	changed, err = WriteGenerated(path, []byte("two"))
	if err != nil || !changed {
		t.Fatalf("second write: changed=%v err=%v", changed, err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "two" {
		t.Fatalf("unexpected content %q", data)
	}
}

func TestChanged(t *testing.T) {
	t.Parallel()

	t0 := time.Unix(100, 0)
	prev := map[string]time.Time{"a": t0, "b": t0}
	next := map[string]time.Time{"a": t0, "b": t0.Add(time.Second), "c": t0}
	if diff := cmp.Diff([]string{"b", "c"}, Changed(prev, next)); diff != "" {
		t.Fatalf("changed mismatch (-want +got):\n%s", diff)
	}
	if len(Stamps([]string{"/definitely/missing"})) != 0 {
		t.Fatalf("missing files should be left out")
	}
}
