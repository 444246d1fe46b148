package scaffold

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"srvmaker/internal/config"
	"srvmaker/internal/emit"
	"srvmaker/internal/expand"
	"srvmaker/internal/faults"
	"srvmaker/internal/guard"
	"srvmaker/internal/logging"
	"srvmaker/internal/startscript"
	"srvmaker/internal/topology"
)

// Options configures a generation run.
type Options struct {
	// Root is the working directory.
	Root     string
	Settings *config.Config
	// Force removes foreign working-directory entries instead of failing.
	Force bool
	// Executable overrides the running binary's path for the guard.
	Executable string
	Logger     *slog.Logger
}

// Result summarizes a completed run.
type Result struct {
	Plan       expand.Plan
	ScriptPath string
}

func (o Options) settings() *config.Config {
	if o.Settings != nil {
		return o.Settings
	}
	cfg := config.Default()
	return &cfg
}

func (o Options) guardOptions() guard.Options {
	cfg := o.settings()
	return guard.Options{
		Root:         o.Root,
		SharedDir:    cfg.Paths.SharedDir,
		TopologyFile: cfg.Paths.TopologyFile,
		Executable:   o.Executable,
		Logger:       o.Logger,
	}
}

// LoadTopology reads the topology file named by the settings from Root.
func LoadTopology(opts Options) (*topology.Model, error) {
	return topology.Load(filepath.Join(opts.Root, opts.settings().Paths.TopologyFile))
}

// Check runs the directory guard without generating anything. The topology
// must load first so a missing or malformed file never leads to removals.
func Check(ctx context.Context, opts Options) error {
	logger := logging.WithContext(ctx, logging.NewComponentLogger(opts.Logger, "scaffold"))
	if _, err := LoadTopology(opts); err != nil {
		logFailure(logger, "topology load failed", err)
		return err
	}
	if err := guard.Check(opts.guardOptions(), opts.Force); err != nil {
		logFailure(logger, "directory check failed", err)
		return err
	}
	return nil
}

// Run performs a full generation in Root.
func Run(ctx context.Context, opts Options) (Result, error) {
	logger := logging.WithContext(ctx, logging.NewComponentLogger(opts.Logger, "scaffold"))
	cfg := opts.settings()
	started := time.Now()

	model, err := LoadTopology(opts)
	if err != nil {
		logFailure(logger, "topology load failed", err)
		return Result{}, err
	}
	if err := guard.Check(opts.guardOptions(), opts.Force); err != nil {
		logFailure(logger, "directory check failed", err)
		return Result{}, err
	}

	plan := expand.Expand(model)
	logger.Info("topology expanded",
		logging.String("server", model.ServerName),
		logging.Int("auth_instances", len(plan.Auth)),
		logging.Int("channels", len(plan.Channels)),
		logging.Int("parts", plan.PartCount()),
	)

	emitter := emit.New(emit.Options{
		Root:      opts.Root,
		SharedDir: cfg.Paths.SharedDir,
		Model:     model,
		Logger:    opts.Logger,
	})
	if err := emitter.EmitPlan(ctx, plan); err != nil {
		logFailure(logger, "unit emission failed", err)
		return Result{}, err
	}

	script := startscript.Build(plan, startscript.Options{
		ServerRoot:    cfg.ServerRoot(model.ServerName),
		SettleSeconds: cfg.Script.SettleSeconds,
	})
	if err := emitter.WriteFile(cfg.Script.FileName, script, startscript.DefaultFileMode); err != nil {
		logFailure(logger, "start script write failed", err)
		return Result{}, err
	}

	logger.Info("generation complete",
		logging.String("script", cfg.Script.FileName),
		logging.String("duration", time.Since(started).Round(time.Millisecond).String()),
	)
	return Result{Plan: plan, ScriptPath: filepath.Join(opts.Root, cfg.Script.FileName)}, nil
}

func logFailure(logger *slog.Logger, msg string, err error) {
	logger.Debug(msg,
		logging.String(logging.FieldErrorKind, faults.Kind(err)),
		logging.Error(err),
	)
}
