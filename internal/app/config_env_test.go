package app

import (
	"testing"
	"time"
)

func TestApplyEnvToConfig(t *testing.T) {
	t.Setenv("GOPLAINTEXT_FORMAT", "json")
	t.Setenv("GOPLAINTEXT_CACHE_DIR", "/env/cache")
	t.Setenv("GOPLAINTEXT_CACHE_MAX_AGE", "48h")
	t.Setenv("GOPLAINTEXT_VERBOSE", "true")
	t.Setenv("GOPLAINTEXT_NO_LINKS", "1")

	cfg := Config{CacheDir: CacheDirDefault}
	ApplyEnvToConfig(&cfg)

	if cfg.Format != "json" {
		t.Fatalf("format = %q", cfg.Format)
	}
	if cfg.CacheDir != "/env/cache" {
		t.Fatalf("cache dir = %q", cfg.CacheDir)
	}
	if cfg.CacheMaxAge != 48*time.Hour {
		t.Fatalf("cache max age = %v", cfg.CacheMaxAge)
	}
	if !cfg.Verbose || !cfg.DisableLinks {
		t.Fatalf("booleans not applied: %+v", cfg)
	}
}

func TestApplyEnvToConfig_ExplicitWins(t *testing.T) {
	t.Setenv("GOPLAINTEXT_FORMAT", "json")
	cfg := Config{Format: "pdf"}
	ApplyEnvToConfig(&cfg)
	if cfg.Format != "pdf" {
		t.Fatalf("explicit format overridden: %q", cfg.Format)
	}
}
