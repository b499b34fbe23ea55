package config

import (
	"testing"
	"time"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Home != "" {
		t.Fatalf("expected empty home default, got %q", cfg.App.Home)
	}
	if cfg.App.SearchRoot != "." {
		t.Fatalf("expected search root '.', got %q", cfg.App.SearchRoot)
	}
	if cfg.App.SearchDepth != 3 {
		t.Fatalf("expected search depth 3, got %d", cfg.App.SearchDepth)
	}
	if cfg.App.Tick != 250*time.Millisecond {
		t.Fatalf("expected 250ms tick, got %v", cfg.App.Tick)
	}
	if cfg.App.ShowFooter {
		t.Fatalf("expected footer disabled by default")
	}
	if cfg.Logging.Trace {
		t.Fatalf("expected trace disabled by default")
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	env := []string{
		"DIRPANES_HOME=/env/home",
		"DIRPANES_SEARCH_DEPTH=5",
		"DIRPANES_TICK_MS=100",
		"DIRPANES_TRACE=true",
	}
	args := []string{"-home", "/flag/home", "-search-depth", "2"}
	cfg, err := LoadArgs(args, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Home != "/flag/home" {
		t.Fatalf("expected flag to win, got %q", cfg.App.Home)
	}
	if cfg.App.SearchDepth != 2 {
		t.Fatalf("expected flag depth 2, got %d", cfg.App.SearchDepth)
	}
	if cfg.App.Tick != 100*time.Millisecond {
		t.Fatalf("expected env tick 100ms, got %v", cfg.App.Tick)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("expected env trace enabled")
	}
}

func TestLoadArgsRejectsInvalidValues(t *testing.T) {
	cases := [][]string{
		{"-width", "-1"},
		{"-height", "-2"},
		{"-search-depth", "0"},
		{"-tick-ms", "0"},
	}
	for _, args := range cases {
		if _, err := LoadArgs(args, nil); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}

func TestLoadArgsMalformedEnvFallsBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"DIRPANES_SEARCH_DEPTH=lots", "DIRPANES_FOOTER=maybe"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.SearchDepth != 3 {
		t.Fatalf("expected fallback depth 3, got %d", cfg.App.SearchDepth)
	}
	if cfg.App.ShowFooter {
		t.Fatalf("expected fallback footer false")
	}
}

func TestLoadArgsRecordsFlagsAndArgs(t *testing.T) {
	args := []string{"-trace", "-log-file", "out.log"}
	cfg, err := LoadArgs(args, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Flags["logFile"] != "out.log" {
		t.Fatalf("expected recorded log file, got %q", cfg.Flags["logFile"])
	}
	if cfg.Flags["trace"] != "true" {
		t.Fatalf("expected recorded trace flag, got %q", cfg.Flags["trace"])
	}
	if len(cfg.Args) != len(args) {
		t.Fatalf("expected args preserved, got %v", cfg.Args)
	}
}
