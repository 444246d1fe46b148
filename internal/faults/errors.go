package faults

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrConfigMissing        = errors.New("topology file not found")
	ErrConfigMalformed      = errors.New("topology file is malformed")
	ErrDirectoryEnumeration = errors.New("cannot read working directory")
	ErrDirectoryNotEmpty    = errors.New("working directory is not empty")
	ErrEntryRemoval         = errors.New("cannot remove entry")
	ErrDirectoryCreation    = errors.New("cannot create directory")
	ErrSymlinkCreation      = errors.New("cannot create symlink")
	ErrFileWrite            = errors.New("cannot write file")
)

// Wrap tags err with marker and the path that produced it. The marker should
// be one of the exported sentinel errors above.
func Wrap(marker error, path string, err error) error {
	if marker == nil {
		marker = ErrFileWrite
	}
	path = strings.TrimSpace(path)
	switch {
	case path == "" && err == nil:
		return marker
	case path == "":
		return fmt.Errorf("%w: %w", marker, err)
	case err == nil:
		return fmt.Errorf("%w %q", marker, path)
	default:
		return fmt.Errorf("%w %q: %w", marker, path, err)
	}
}

// NotEmptyError lists every working-directory entry that is not on the
// allow-list.
type NotEmptyError struct {
	Entries []string
}

func (e *NotEmptyError) Error() string {
	return fmt.Sprintf("%s; delete these entries or rerun with --force: %s",
		ErrDirectoryNotEmpty, strings.Join(e.Entries, ", "))
}

func (e *NotEmptyError) Is(target error) bool {
	return target == ErrDirectoryNotEmpty
}

// SymlinkError reports a failed link creation together with both ends of the
// link.
type SymlinkError struct {
	Original string
	Link     string
	Err      error
}

func (e *SymlinkError) Error() string {
	return fmt.Sprintf("%s %q -> %q: %v", ErrSymlinkCreation, e.Link, e.Original, e.Err)
}

func (e *SymlinkError) Is(target error) bool {
	return target == ErrSymlinkCreation
}

func (e *SymlinkError) Unwrap() error {
	return e.Err
}

// Kind returns a short label for err's taxonomy member, suitable for a
// structured log field.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrConfigMissing):
		return "config_missing"
	case errors.Is(err, ErrConfigMalformed):
		return "config_malformed"
	case errors.Is(err, ErrDirectoryEnumeration):
		return "directory_enumeration_failed"
	case errors.Is(err, ErrDirectoryNotEmpty):
		return "directory_not_empty"
	case errors.Is(err, ErrEntryRemoval):
		return "entry_removal_failed"
	case errors.Is(err, ErrDirectoryCreation):
		return "directory_creation_failed"
	case errors.Is(err, ErrSymlinkCreation):
		return "symlink_creation_failed"
	case errors.Is(err, ErrFileWrite):
		return "file_write_failed"
	default:
		return "unknown"
	}
}
