package application

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/eugenenazirov/vbp-optim/internal/config"
	"github.com/eugenenazirov/vbp-optim/internal/report"
	"github.com/eugenenazirov/vbp-optim/internal/solver"
	"github.com/eugenenazirov/vbp-optim/internal/tree"
)

// App encapsulates the application dependencies.
type App struct {
	reporter *report.Reporter
	walker   *tree.Walker
	logger   *zap.Logger
}

// Option customises New.
type Option func(*appConfig)

// WithOptimizer replaces the default solver (primarily for tests).
func WithOptimizer(optimizer solver.Optimizer) Option {
	return func(cfg *appConfig) {
		cfg.optimizer = optimizer
	}
}

type appConfig struct {
	optimizer solver.Optimizer
}

// New initializes the application with all dependencies from the provided
// configuration. Report lines are written to out.
func New(cfg config.Config, out io.Writer, logger *zap.Logger, opts ...Option) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	settings := appConfig{optimizer: solver.New()}
	for _, opt := range opts {
		opt(&settings)
	}

	reporter := report.New(settings.optimizer, cfg.SolverOptions(), out, logger)
	return &App{
		reporter: reporter,
		walker:   tree.NewWalker(reporter, logger),
		logger:   logger,
	}
}

// Run executes one mode against path. The first failure aborts the run.
func (a *App) Run(mode Mode, path string) error {
	a.logger.Info("run started", zap.Stringer("mode", mode), zap.String("path", path))

	var err error
	switch mode {
	case ModeFile:
		err = a.reporter.File(path, 0)
	case ModeDir:
		err = a.walker.WalkDir(path)
	case ModeTree:
		err = a.walker.WalkTree(path)
	default:
		err = fmt.Errorf("unknown mode %d", mode)
	}
	if err != nil {
		return err
	}

	a.logger.Info("run finished", zap.Stringer("mode", mode))
	return nil
}
