package guard

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"srvmaker/internal/faults"
	"srvmaker/internal/logging"
)

// Class is the allow-list classification of a working-directory entry.
type Class int

const (
	Foreign Class = iota
	AllowedDirectory
	AllowedFile
)

func (c Class) String() string {
	switch c {
	case AllowedDirectory:
		return "allowed_directory"
	case AllowedFile:
		return "allowed_file"
	default:
		return "foreign"
	}
}

// Options describes the working directory and its allow-list inputs.
type Options struct {
	// Root is the working directory.
	Root string
	// SharedDir is the shared-resource directory name under Root.
	SharedDir string
	// TopologyFile is the topology file name under Root.
	TopologyFile string
	// Executable overrides the running binary's path; empty resolves it
	// through the OS.
	Executable string
	Logger     *slog.Logger
}

// Entry is one direct child of the working directory.
type Entry struct {
	Name string
	Path string
	// Dir reports whether the entry is, or links to, a directory.
	Dir bool
	// Symlink reports whether the entry itself is a symbolic link.
	Symlink bool
	Class   Class
}

// Inventory is the classified snapshot of the working directory. It is
// captured once and never refreshed.
type Inventory struct {
	Root    string
	Entries []Entry
}

// Foreign returns the entries not on the allow-list, in directory order.
func (inv Inventory) Foreign() []Entry {
	var out []Entry
	for _, entry := range inv.Entries {
		if entry.Class == Foreign {
			out = append(out, entry)
		}
	}
	return out
}

// ForeignNames returns the names of the foreign entries.
func (inv Inventory) ForeignNames() []string {
	foreign := inv.Foreign()
	names := make([]string, 0, len(foreign))
	for _, entry := range foreign {
		names = append(names, entry.Name)
	}
	return names
}

// Scan enumerates and classifies the direct children of opts.Root.
func Scan(opts Options) (Inventory, error) {
	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return Inventory{}, faults.Wrap(faults.ErrDirectoryEnumeration, opts.Root, err)
	}
	allowed, err := newAllowList(root, opts)
	if err != nil {
		return Inventory{}, err
	}

	dirEntries, err := os.ReadDir(root)
	if err != nil {
		return Inventory{}, faults.Wrap(faults.ErrDirectoryEnumeration, root, err)
	}

	inv := Inventory{Root: root, Entries: make([]Entry, 0, len(dirEntries))}
	for _, de := range dirEntries {
		entry := Entry{
			Name:    de.Name(),
			Path:    filepath.Join(root, de.Name()),
			Symlink: de.Type()&os.ModeSymlink != 0,
		}
		// Follows links; a dangling link counts as a file.
		if info, err := os.Stat(entry.Path); err == nil {
			entry.Dir = info.IsDir()
		}
		entry.Class = allowed.classify(entry)
		inv.Entries = append(inv.Entries, entry)
	}
	return inv, nil
}

// Check scans opts.Root and fails with a faults.NotEmptyError naming every
// foreign entry. With force set, the foreign entries are removed instead.
func Check(opts Options, force bool) error {
	logger := logging.NewComponentLogger(opts.Logger, "guard")

	inv, err := Scan(opts)
	if err != nil {
		return err
	}
	foreign := inv.Foreign()
	if len(foreign) == 0 {
		logger.Debug("working directory clean", logging.String("root", inv.Root))
		return nil
	}
	if !force {
		return &faults.NotEmptyError{Entries: inv.ForeignNames()}
	}
	for _, entry := range foreign {
		if err := remove(entry); err != nil {
			return err
		}
		logger.Info("removed foreign entry",
			logging.String("path", entry.Path),
			logging.Bool("directory", entry.Dir && !entry.Symlink),
		)
	}
	return nil
}

func remove(entry Entry) error {
	var err error
	if entry.Dir && !entry.Symlink {
		err = unix.Rmdir(entry.Path)
	} else {
		err = unix.Unlink(entry.Path)
	}
	if err != nil {
		return faults.Wrap(faults.ErrEntryRemoval, entry.Path, &os.PathError{Op: "remove", Path: entry.Path, Err: err})
	}
	return nil
}

type allowList struct {
	dirs        map[string]struct{}
	files       map[string]struct{}
	executables map[string]struct{}
	roots       []string
}

func newAllowList(root string, opts Options) (*allowList, error) {
	exe := opts.Executable
	if exe == "" {
		resolved, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("%w: resolve executable: %w", faults.ErrDirectoryEnumeration, err)
		}
		exe = resolved
	}

	list := &allowList{
		dirs:        map[string]struct{}{},
		files:       map[string]struct{}{},
		executables: map[string]struct{}{},
		roots:       []string{root},
	}
	if resolved, err := filepath.EvalSymlinks(root); err == nil && resolved != root {
		list.roots = append(list.roots, resolved)
	}
	for _, r := range list.roots {
		if opts.SharedDir != "" {
			list.dirs[filepath.Join(r, opts.SharedDir)] = struct{}{}
		}
		if opts.TopologyFile != "" {
			list.files[filepath.Join(r, opts.TopologyFile)] = struct{}{}
		}
	}
	for _, candidate := range executablePaths(exe) {
		list.executables[candidate] = struct{}{}
	}
	return list, nil
}

func executablePaths(exe string) []string {
	abs, err := filepath.Abs(exe)
	if err != nil {
		return []string{filepath.Clean(exe)}
	}
	paths := []string{abs}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil && resolved != abs {
		paths = append(paths, resolved)
	}
	return paths
}

func (l *allowList) classify(entry Entry) Class {
	for _, r := range l.roots {
		candidate := filepath.Join(r, entry.Name)
		if entry.Dir {
			if _, ok := l.dirs[candidate]; ok {
				return AllowedDirectory
			}
			continue
		}
		if _, ok := l.files[candidate]; ok {
			return AllowedFile
		}
		if _, ok := l.executables[candidate]; ok {
			return AllowedFile
		}
	}
	// The binary may be invoked through a link placed in the working
	// directory.
	if entry.Symlink && !entry.Dir {
		if resolved, err := filepath.EvalSymlinks(entry.Path); err == nil {
			if _, ok := l.executables[resolved]; ok {
				return AllowedFile
			}
		}
	}
	return Foreign
}
