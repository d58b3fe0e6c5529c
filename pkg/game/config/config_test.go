package config

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load(nil) error: %v", err)
	}
	if cfg.Width != 15 || cfg.Height != 15 {
		t.Errorf("size = %dx%d, want 15x15", cfg.Width, cfg.Height)
	}
	if cfg.TimeLimit != 3*time.Minute {
		t.Errorf("TimeLimit = %v, want 3m", cfg.TimeLimit)
	}
	if cfg.Renderer != RendererEbiten {
		t.Errorf("Renderer = %q, want %q", cfg.Renderer, RendererEbiten)
	}
}

func TestLoad_EnvThenFlags(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv(EnvWidth, "21")
	t.Setenv(EnvHeight, "11")
	t.Setenv(EnvTimeLimit, "90")
	t.Setenv(EnvSeed, "1234")

	cfg, err := Load([]string{"-height", "13", "-renderer", "tui"})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Width != 21 {
		t.Errorf("Width = %d, want 21 from env", cfg.Width)
	}
	if cfg.Height != 13 {
		t.Errorf("Height = %d, want 13 from flag", cfg.Height)
	}
	if cfg.TimeLimit != 90*time.Second {
		t.Errorf("TimeLimit = %v, want 1m30s", cfg.TimeLimit)
	}
	if cfg.MasterSeed() != 1234 {
		t.Errorf("MasterSeed = %d, want 1234", cfg.MasterSeed())
	}
	if cfg.Renderer != RendererTUI {
		t.Errorf("Renderer = %q, want tui", cfg.Renderer)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	content := "MAZE_WIDTH=25\nMAZE_TIME_LIMIT=2m\n"
	if err := os.WriteFile(filepath.Join(dir, DefaultEnvFile), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	// Unset so the file value applies; t.Setenv restores the original afterwards.
	t.Setenv(EnvWidth, "")
	os.Unsetenv(EnvWidth)
	t.Setenv(EnvTimeLimit, "")
	os.Unsetenv(EnvTimeLimit)

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Width != 25 {
		t.Errorf("Width = %d, want 25 from .env", cfg.Width)
	}
	if cfg.TimeLimit != 2*time.Minute {
		t.Errorf("TimeLimit = %v, want 2m from .env", cfg.TimeLimit)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"tiny width", nil, []string{"-width", "2"}},
		{"zero region", nil, []string{"-min-region", "0"}},
		{"bad renderer", nil, []string{"-renderer", "opengl"}},
		{"short time", nil, []string{"-time-limit", "10ms"}},
		{"cell size", nil, []string{"-cell-size", "1"}},
		{"env not int", map[string]string{EnvHeight: "tall"}, nil},
		{"env seed", map[string]string{EnvSeed: "x"}, nil},
		{"env time", map[string]string{EnvTimeLimit: "soon"}, nil},
		{"unknown flag", nil, []string{"-nope"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(tt.args)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Load error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestParams(t *testing.T) {
	cfg := Defaults()
	p := cfg.Params()
	if p.Width != cfg.Width || p.Height != cfg.Height || p.MinRegionSize != cfg.MinRegionSize || p.MaxSplitDepth != cfg.SplitDepth {
		t.Errorf("Params() = %+v does not mirror %+v", p, cfg)
	}
}

func TestLoad_Help(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := Load([]string{"-h"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("Load(-h) error = %v, want flag.ErrHelp", err)
	}
}
