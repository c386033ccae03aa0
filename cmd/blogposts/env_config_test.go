package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alnah/go-blogposts/internal/config"
)

func fakeGetenv(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

// ---------------------------------------------------------------------------
// TestLoadEnvConfig - Recognized variables
// ---------------------------------------------------------------------------

func TestLoadEnvConfig(t *testing.T) {
	t.Parallel()

	env := loadEnvConfig(fakeGetenv(map[string]string{
		"BLOGPOSTS_CONFIG":         "site",
		"BLOGPOSTS_DIR":            "content",
		"BLOGPOSTS_ASSET_BASE_URL": "/static",
		"BLOGPOSTS_LOG_LEVEL":      "DEBUG",
		"BLOGPOSTS_LOG_FORMAT":     "json",
	}))

	want := envConfig{
		ConfigPath:   "site",
		ContentDir:   "content",
		AssetBaseURL: "/static",
		LogLevel:     "DEBUG",
		LogFormat:    "json",
	}
	if *env != want {
		t.Errorf("loadEnvConfig() = %+v, want %+v", *env, want)
	}
}

// ---------------------------------------------------------------------------
// TestApplyEnvConfig - Env overrides file values, unset leaves them
// ---------------------------------------------------------------------------

func TestApplyEnvConfig(t *testing.T) {
	t.Parallel()

	t.Run("set values override", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		applyEnvConfig(&envConfig{ContentDir: "content", AssetBaseURL: "/s", LogLevel: "DEBUG", LogFormat: "JSON"}, cfg)

		if cfg.Content.Dir != "content" || cfg.Assets.BaseURL != "/s" {
			t.Errorf("cfg = %+v", cfg)
		}
		if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
			t.Errorf("Log = %+v, want lowercased values", cfg.Log)
		}
	})

	t.Run("unset values keep config", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		applyEnvConfig(&envConfig{}, cfg)

		if *cfg != *config.DefaultConfig() {
			t.Errorf("cfg = %+v, want defaults", cfg)
		}
	})
}

// ---------------------------------------------------------------------------
// TestWarnUnknownEnvVars - Typo detection
// ---------------------------------------------------------------------------

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf, []string{
		"HOME=/root",
		"BLOGPOSTS_DIR=posts",
		"BLOGPOSTS_DIRECTORY=posts",
	})

	out := buf.String()
	if !strings.Contains(out, "BLOGPOSTS_DIRECTORY") {
		t.Errorf("output = %q, want warning for BLOGPOSTS_DIRECTORY", out)
	}
	if strings.Count(out, "warning:") != 1 {
		t.Errorf("output = %q, want exactly one warning", out)
	}
}
