package faults_test

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"srvmaker/internal/faults"
)

func TestWrapIncludesPath(t *testing.T) {
	base := errors.New("boom")
	err := faults.Wrap(faults.ErrDirectoryCreation, "auth/1/log", base)
	if !errors.Is(err, faults.ErrDirectoryCreation) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	if !strings.Contains(err.Error(), "auth/1/log") {
		t.Fatalf("expected path in error string %q", err.Error())
	}
}

func TestWrapWithoutCause(t *testing.T) {
	err := faults.Wrap(faults.ErrConfigMissing, "config.json", nil)
	if !errors.Is(err, faults.ErrConfigMissing) {
		t.Fatalf("expected marker, got %v", err)
	}
	if got := faults.Wrap(faults.ErrConfigMissing, "", nil); got != faults.ErrConfigMissing {
		t.Fatalf("expected bare marker, got %v", got)
	}
}

func TestNotEmptyErrorListsEntries(t *testing.T) {
	err := error(&faults.NotEmptyError{Entries: []string{"notes.txt", "old"}})
	if !errors.Is(err, faults.ErrDirectoryNotEmpty) {
		t.Fatalf("expected ErrDirectoryNotEmpty, got %v", err)
	}
	for _, name := range []string{"notes.txt", "old", "--force"} {
		if !strings.Contains(err.Error(), name) {
			t.Fatalf("expected %q in %q", name, err.Error())
		}
	}
	var notEmpty *faults.NotEmptyError
	if !errors.As(err, &notEmpty) || len(notEmpty.Entries) != 2 {
		t.Fatalf("expected entries via errors.As, got %v", notEmpty)
	}
}

func TestSymlinkErrorUnwraps(t *testing.T) {
	err := error(&faults.SymlinkError{Original: "../../share/data", Link: "auth/1/data", Err: fs.ErrExist})
	if !errors.Is(err, faults.ErrSymlinkCreation) || !errors.Is(err, fs.ErrExist) {
		t.Fatalf("expected both marker and cause, got %v", err)
	}
}

func TestKind(t *testing.T) {
	cases := map[string]error{
		"config_missing":            faults.Wrap(faults.ErrConfigMissing, "config.json", nil),
		"directory_not_empty":       &faults.NotEmptyError{Entries: []string{"x"}},
		"symlink_creation_failed":   &faults.SymlinkError{Err: fs.ErrExist},
		"file_write_failed":         faults.Wrap(faults.ErrFileWrite, "start.sh", fs.ErrPermission),
		"entry_removal_failed":      faults.Wrap(faults.ErrEntryRemoval, "old", fs.ErrExist),
		"directory_creation_failed": faults.Wrap(faults.ErrDirectoryCreation, "db", fs.ErrExist),
		"unknown":                   errors.New("other"),
	}
	for want, err := range cases {
		if got := faults.Kind(err); got != want {
			t.Fatalf("Kind(%v) = %q, want %q", err, got, want)
		}
	}
	if faults.Kind(nil) != "" {
		t.Fatal("expected empty kind for nil")
	}
}
