package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/vbp-optim/internal/application"
	"github.com/eugenenazirov/vbp-optim/internal/config"
	"github.com/eugenenazirov/vbp-optim/internal/logging"
)

type flags struct {
	file       *string
	dir        *string
	recursive  *bool
	dotProduct *bool
	seed       *int64
	configFile *string
	logLevel   *string

	dotProductSet bool
	seedSet       bool
}

func newApp() (*kingpin.Application, *flags) {
	app := kingpin.New("vbp-optim", "Run vector bin-packing heuristics on instance files")
	f := &flags{}
	f.file = app.Flag("file", "Path to a file containing the bin packing problem to optimize").
		Short('f').ExistingFile()
	f.dir = app.Flag("dir", "Directory of instance files; optimize every file in it").
		Short('d').ExistingDir()
	f.recursive = app.Flag("recursive", "With -d, optimize all files in all final (leaf) subdirectories; "+
		"files beside subdirectories are skipped").Short('r').Bool()
	f.dotProduct = app.Flag("dot-product", "Use the dot product heuristic").
		Short('u').IsSetByUser(&f.dotProductSet).Bool()
	f.seed = app.Flag("seed", "Seed for the solver").
		Short('s').IsSetByUser(&f.seedSet).Int64()
	f.configFile = app.Flag("config", "Path to YAML configuration file").String()
	f.logLevel = app.Flag("log-level", "Log level (debug, info, warn, error)").String()
	return app, f
}

func main() {
	kingpinApp, f := newApp()
	kingpin.MustParse(kingpinApp.Parse(os.Args[1:]))

	target := application.Target{
		File:      *f.file,
		Dir:       *f.dir,
		Recursive: *f.recursive,
	}
	mode, path, err := target.Resolve()
	if err != nil {
		kingpinApp.FatalUsage("%s", err)
	}

	cfg, err := config.Load(buildOverrides(f))
	if err != nil {
		kingpinApp.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogEncoding)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()
	if cfg.Source != "" {
		logger.Debug("configuration loaded", zap.String("file", cfg.Source))
	}

	out := bufio.NewWriter(os.Stdout)
	if err := run(cfg, mode, path, out, logger); err != nil {
		_ = out.Flush()
		logger.Fatal("run failed", zap.Error(err))
	}
}

func run(cfg config.Config, mode application.Mode, path string, out io.Writer, logger *zap.Logger) error {
	return application.New(cfg, out, logger).Run(mode, path)
}

// buildOverrides keeps only the flags the user actually set, so YAML and
// environment values are not clobbered by flag defaults.
func buildOverrides(f *flags) *config.CLIOverrides {
	overrides := &config.CLIOverrides{
		ConfigFile: *f.configFile,
	}
	if f.dotProductSet {
		overrides.UseDotProduct = f.dotProduct
	}
	if f.seedSet {
		overrides.Seed = f.seed
	}
	if *f.logLevel != "" {
		overrides.LogLevel = f.logLevel
	}
	return overrides
}
