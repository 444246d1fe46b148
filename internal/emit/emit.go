package emit

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"srvmaker/internal/expand"
	"srvmaker/internal/faults"
	"srvmaker/internal/logging"
	"srvmaker/internal/topology"
)

// Options configures an Emitter.
type Options struct {
	// Root is the working directory every unit path is relative to.
	Root string
	// SharedDir is the shared-resource directory name under Root.
	SharedDir string
	Model     *topology.Model
	Logger    *slog.Logger
}

// Emitter creates unit directories, links, and config files under Root.
type Emitter struct {
	root      string
	sharedDir string
	model     *topology.Model
	logger    *slog.Logger
}

// New constructs an Emitter.
func New(opts Options) *Emitter {
	return &Emitter{
		root:      opts.Root,
		sharedDir: opts.SharedDir,
		model:     opts.Model,
		logger:    logging.NewComponentLogger(opts.Logger, "emit"),
	}
}

// EmitPlan emits every unit of plan: the auth parent and its instances, each
// channel directory and its parts, then the db role.
func (e *Emitter) EmitPlan(ctx context.Context, plan expand.Plan) error {
	if err := e.mkdir(expand.AuthDir); err != nil {
		return err
	}
	for _, unit := range plan.Auth {
		if err := e.Emit(ctx, unit); err != nil {
			return err
		}
	}
	for _, group := range plan.Channels {
		if err := e.mkdir(group.Dir); err != nil {
			return err
		}
		for _, unit := range group.Parts {
			if err := e.Emit(ctx, unit); err != nil {
				return err
			}
		}
	}
	return e.Emit(ctx, plan.DB)
}

// Emit creates a single unit. The unit's parent directory must already
// exist.
func (e *Emitter) Emit(ctx context.Context, unit expand.Unit) error {
	logger := logging.WithContext(ctx, e.logger).With(
		logging.String(logging.FieldUnit, unit.Kind.String()),
		logging.String(logging.FieldPath, unit.Dir),
	)

	if err := e.mkdir(unit.Dir); err != nil {
		return err
	}
	for _, sub := range subdirsFor(unit.Kind) {
		if err := e.mkdir(filepath.Join(unit.Dir, sub)); err != nil {
			return err
		}
	}
	for _, l := range linksFor(unit, e.model) {
		if err := e.symlink(unit.Dir, l); err != nil {
			return err
		}
	}

	configPath := filepath.Join(unit.Dir, configFileFor(unit.Kind))
	if err := e.writeFile(configPath, Render(unit, e.model), 0o644); err != nil {
		return err
	}
	logger.Debug("unit emitted", logging.String("config", configPath))
	return nil
}

// WriteFile writes content to rel under Root.
func (e *Emitter) WriteFile(rel, content string, mode os.FileMode) error {
	return e.writeFile(rel, content, mode)
}

func (e *Emitter) mkdir(rel string) error {
	if err := os.Mkdir(e.abs(rel), 0o755); err != nil {
		return faults.Wrap(faults.ErrDirectoryCreation, rel, err)
	}
	return nil
}

func (e *Emitter) symlink(unitDir string, l link) error {
	linkPath := filepath.Join(unitDir, l.name)
	rel, err := filepath.Rel(e.abs(unitDir), e.abs(e.sharedDir))
	if err != nil {
		return &faults.SymlinkError{Original: l.target, Link: linkPath, Err: err}
	}
	original := filepath.Join(rel, l.target)
	if err := os.Symlink(original, e.abs(linkPath)); err != nil {
		return &faults.SymlinkError{Original: original, Link: linkPath, Err: err}
	}
	return nil
}

func (e *Emitter) writeFile(rel, content string, mode os.FileMode) error {
	if err := os.WriteFile(e.abs(rel), []byte(content), mode); err != nil {
		return faults.Wrap(faults.ErrFileWrite, rel, err)
	}
	return nil
}

func (e *Emitter) abs(rel string) string {
	return filepath.Join(e.root, rel)
}
