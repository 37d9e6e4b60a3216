package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

// isolate clears every variable Load reads and points XDG at an empty directory.
func isolate(t *testing.T) string {
	t.Helper()

	t.Cleanup(xdg.Reload)
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(home, "system"))
	for _, key := range []string{"VBP_CONFIG", "VBP_DOT_PRODUCT", "VBP_SEED", "VBP_LOG_LEVEL", "VBP_LOG_ENCODING"} {
		t.Setenv(key, "")
	}
	xdg.Reload()
	return home
}

func writeYAML(t *testing.T, path, body string) string {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.LogLevel != defaultLogLevel {
		t.Fatalf("expected default log level %s, got %s", defaultLogLevel, cfg.LogLevel)
	}
	if cfg.UseDotProduct {
		t.Fatalf("expected dot product disabled by default")
	}
	if cfg.Seed != nil {
		t.Fatalf("expected no seed by default, got %d", *cfg.Seed)
	}
	if cfg.Source != "" {
		t.Fatalf("expected no config source, got %s", cfg.Source)
	}
}

func TestLoadEnv(t *testing.T) {
	isolate(t)
	t.Setenv("VBP_DOT_PRODUCT", "true")
	t.Setenv("VBP_SEED", "17")
	t.Setenv("VBP_LOG_LEVEL", "DEBUG")

	cfg, err := Load(&CLIOverrides{})
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if !cfg.UseDotProduct {
		t.Fatalf("expected dot product from env")
	}
	if cfg.Seed == nil || *cfg.Seed != 17 {
		t.Fatalf("expected seed 17, got %v", cfg.Seed)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected normalized log level, got %s", cfg.LogLevel)
	}
}

func TestLoadInvalidEnv(t *testing.T) {
	isolate(t)
	t.Setenv("VBP_SEED", "abc")

	if _, err := Load(nil); err == nil {
		t.Fatalf("expected error for invalid seed")
	}
}

func TestLoadPrecedence(t *testing.T) {
	home := isolate(t)
	path := writeYAML(t, filepath.Join(home, "custom.yaml"), `
dot_product: true
seed: 5
logging:
  level: info
  encoding: json
`)
	t.Setenv("VBP_SEED", "9")
	t.Setenv("VBP_LOG_LEVEL", "error")

	t.Run("yaml over env", func(t *testing.T) {
		cfg, err := Load(&CLIOverrides{ConfigFile: path})
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}
		if cfg.Seed == nil || *cfg.Seed != 5 {
			t.Fatalf("expected YAML seed 5, got %v", cfg.Seed)
		}
		if cfg.LogLevel != "info" || cfg.LogEncoding != "json" {
			t.Fatalf("unexpected logging config: %s/%s", cfg.LogLevel, cfg.LogEncoding)
		}
		if !cfg.UseDotProduct {
			t.Fatalf("expected dot product from YAML")
		}
		if cfg.Source != path {
			t.Fatalf("expected source %s, got %s", path, cfg.Source)
		}
	})

	t.Run("cli over yaml", func(t *testing.T) {
		seed := int64(1)
		dp := false
		level := "warn"
		cfg, err := Load(&CLIOverrides{ConfigFile: path, Seed: &seed, UseDotProduct: &dp, LogLevel: &level})
		if err != nil {
			t.Fatalf("Load returned error: %v", err)
		}
		if cfg.Seed == nil || *cfg.Seed != 1 {
			t.Fatalf("expected CLI seed 1, got %v", cfg.Seed)
		}
		if cfg.UseDotProduct {
			t.Fatalf("expected CLI to disable dot product")
		}
		if cfg.LogLevel != "warn" {
			t.Fatalf("expected CLI log level, got %s", cfg.LogLevel)
		}
	})
}

func TestLoadXDGDefaultFile(t *testing.T) {
	home := isolate(t)
	path := writeYAML(t, filepath.Join(home, DefaultConfigFile), "seed: 99\n")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Seed == nil || *cfg.Seed != 99 {
		t.Fatalf("expected seed from XDG config, got %v", cfg.Seed)
	}
	if cfg.Source != path {
		t.Fatalf("expected source %s, got %s", path, cfg.Source)
	}
}

func TestLoadErrors(t *testing.T) {
	home := isolate(t)

	t.Run("missing explicit file", func(t *testing.T) {
		if _, err := Load(&CLIOverrides{ConfigFile: filepath.Join(home, "nope.yaml")}); err == nil {
			t.Fatalf("expected error for missing config file")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeYAML(t, filepath.Join(home, "bad.yaml"), "seed: [1,\n")
		if _, err := Load(&CLIOverrides{ConfigFile: path}); err == nil {
			t.Fatalf("expected error for malformed YAML")
		}
	})

	t.Run("unknown log level", func(t *testing.T) {
		level := "loud"
		if _, err := Load(&CLIOverrides{LogLevel: &level}); err == nil {
			t.Fatalf("expected error for unknown log level")
		}
	})

	t.Run("unknown encoding", func(t *testing.T) {
		path := writeYAML(t, filepath.Join(home, "enc.yaml"), "logging:\n  encoding: xml\n")
		if _, err := Load(&CLIOverrides{ConfigFile: path}); err == nil {
			t.Fatalf("expected error for unknown encoding")
		}
	})
}

func TestSolverOptions(t *testing.T) {
	seed := int64(4)
	cfg := Config{UseDotProduct: true, Seed: &seed}

	opts := cfg.SolverOptions()
	if !opts.UseDotProduct || opts.Seed == nil || *opts.Seed != 4 {
		t.Fatalf("unexpected options: %+v", opts)
	}

	seed = 8
	if *opts.Seed != 4 {
		t.Fatalf("options share the config's seed pointer")
	}
}
