package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// MakeEntries creates the named entries under root. Names ending in "/" are
// created as directories, anything else as a small file; intermediate
// directories are created as needed.
func MakeEntries(t testing.TB, root string, names ...string) {
	t.Helper()

	for _, name := range names {
		target := filepath.Join(root, filepath.FromSlash(strings.TrimSuffix(name, "/")))
		if strings.HasSuffix(name, "/") {
			if err := os.MkdirAll(target, 0o755); err != nil {
				t.Fatalf("mkdir %s: %v", target, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			t.Fatalf("mkdir for %s: %v", target, err)
		}
		if err := os.WriteFile(target, []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", target, err)
		}
	}
}

// ReadFile returns the content of path or fails the test.
func ReadFile(t testing.TB, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// RequireDir fails the test unless path is an existing directory.
func RequireDir(t testing.TB, path string) {
	t.Helper()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected directory %q to exist: %v", path, err)
	}
	if !info.IsDir() {
		t.Fatalf("expected %q to be directory", path)
	}
}

// ConfigLine returns the first line of content that starts with key followed
// by sep, or fails the test.
func ConfigLine(t testing.TB, content, key, sep string) string {
	t.Helper()

	prefix := key + sep
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, prefix) {
			return strings.TrimPrefix(line, prefix)
		}
	}
	t.Fatalf("line %q not found in:\n%s", key, content)
	return ""
}
