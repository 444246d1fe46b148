package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"srvmaker/internal/testsupport"
)

// setupWorkdir creates a working directory with a shared resource directory
// and the given topology, isolates HOME, and changes into it.
func setupWorkdir(t *testing.T, opts ...testsupport.TopologyOption) string {
	t.Helper()

	base := t.TempDir()
	home := filepath.Join(base, "home")
	root := filepath.Join(base, "work")
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", home)
	testsupport.MakeEntries(t, root, "share/")
	if opts != nil {
		testsupport.WriteTopology(t, root, testsupport.NewTopology(t, opts...))
	}
	t.Chdir(root)
	return root
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
