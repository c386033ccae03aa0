package main

import (
	"errors"
	"fmt"

	blogposts "github.com/alnah/go-blogposts"
	"github.com/alnah/go-blogposts/internal/config"
	"github.com/alnah/go-blogposts/internal/fileutil"
	"github.com/alnah/go-blogposts/internal/hints"
	"github.com/alnah/go-blogposts/internal/logging"
)

// session bundles what a command needs after flags and config are resolved.
type session struct {
	cfg    *config.Config
	logger *logging.Logger
	loader *blogposts.Loader
}

// newSession resolves configuration (flags > env > file > defaults), builds
// the logger and the loader.
func newSession(common commonFlags, env *Environment) (*session, error) {
	if env.Environ != nil {
		warnUnknownEnvVars(env.Stderr, env.Environ())
	}
	envCfg := loadEnvConfig(env.Getenv)

	cfg, source, err := resolveConfig(common.config, envCfg.ConfigPath, env.Config)
	if err != nil {
		return nil, err
	}

	applyEnvConfig(envCfg, cfg)
	mergeCommonFlags(common, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrInvalidConfig, err)
	}
	logger = logger.Named("blogposts")
	logger.Debug("configuration resolved", "source", source, "dir", cfg.Content.Dir)

	loader, err := blogposts.NewLoader(cfg.Content.Dir,
		blogposts.WithLogger(logger.Named("loader")),
		blogposts.WithAssetBaseURL(cfg.Assets.BaseURL),
		blogposts.WithMarkdownOptions(blogposts.MarkdownOptions{
			HeadingIDs:       cfg.Markdown.HeadingIDs,
			HardWraps:        cfg.Markdown.HardWraps,
			DisableHighlight: !cfg.Markdown.Highlight,
		}),
	)
	if err != nil {
		return nil, err
	}

	return &session{cfg: cfg, logger: logger, loader: loader}, nil
}

// resolveConfig loads the config named by the flag, else by the env var.
// With neither set, the default name is tried and a missing file falls back
// to a copy of defaults. An explicitly named config must exist.
// Returns the config and a description of where it came from.
func resolveConfig(flagName, envName string, defaults *config.Config) (*config.Config, string, error) {
	name := flagName
	if name == "" {
		name = envName
	}
	if name != "" {
		cfg, err := config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
				return nil, "", withHint(err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, "", err
		}
		return cfg, name, nil
	}

	cfg, err := config.LoadConfig(config.DefaultName)
	if err == nil {
		return cfg, config.DefaultName, nil
	}
	if !errors.Is(err, config.ErrConfigNotFound) {
		return nil, "", err
	}

	if defaults == nil {
		return config.DefaultConfig(), "defaults", nil
	}
	copied := *defaults
	return &copied, "defaults", nil
}

// mergeCommonFlags applies flags that override config values.
func mergeCommonFlags(f commonFlags, cfg *config.Config) {
	if f.dir != "" {
		cfg.Content.Dir = f.dir
	}
	switch {
	case f.verbose:
		cfg.Log.Level = "debug"
	case f.quiet:
		cfg.Log.Level = "error"
	}
}
