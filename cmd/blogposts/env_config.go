package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alnah/go-blogposts/internal/config"
)

// envPrefix marks the environment variables read by the CLI.
const envPrefix = "BLOGPOSTS_"

// envConfig holds configuration from environment variables.
// Lets a build pipeline steer the CLI without a YAML file.
type envConfig struct {
	ConfigPath   string // BLOGPOSTS_CONFIG: config file name or path
	ContentDir   string // BLOGPOSTS_DIR: content directory
	AssetBaseURL string // BLOGPOSTS_ASSET_BASE_URL: prefix for relative media URLs
	LogLevel     string // BLOGPOSTS_LOG_LEVEL: trace, debug, info, warn, error
	LogFormat    string // BLOGPOSTS_LOG_FORMAT: console, json, pretty
}

// knownEnvVars lists valid BLOGPOSTS_* environment variables.
var knownEnvVars = map[string]bool{
	"BLOGPOSTS_CONFIG":         true,
	"BLOGPOSTS_DIR":            true,
	"BLOGPOSTS_ASSET_BASE_URL": true,
	"BLOGPOSTS_LOG_LEVEL":      true,
	"BLOGPOSTS_LOG_FORMAT":     true,
}

// loadEnvConfig reads the recognized BLOGPOSTS_* values through getenv.
func loadEnvConfig(getenv func(string) string) *envConfig {
	if getenv == nil {
		getenv = os.Getenv
	}
	return &envConfig{
		ConfigPath:   getenv("BLOGPOSTS_CONFIG"),
		ContentDir:   getenv("BLOGPOSTS_DIR"),
		AssetBaseURL: getenv("BLOGPOSTS_ASSET_BASE_URL"),
		LogLevel:     getenv("BLOGPOSTS_LOG_LEVEL"),
		LogFormat:    getenv("BLOGPOSTS_LOG_FORMAT"),
	}
}

// warnUnknownEnvVars warns about unrecognized BLOGPOSTS_* variables in
// environ, catching typos like BLOGPOSTS_DIRECTORY.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig overrides config values with set environment variables.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.ContentDir != "" {
		cfg.Content.Dir = env.ContentDir
	}
	if env.AssetBaseURL != "" {
		cfg.Assets.BaseURL = env.AssetBaseURL
	}
	if env.LogLevel != "" {
		cfg.Log.Level = strings.ToLower(env.LogLevel)
	}
	if env.LogFormat != "" {
		cfg.Log.Format = strings.ToLower(env.LogFormat)
	}
}
