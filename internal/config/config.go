// Package config loads and validates the blogposts YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"

	"github.com/alnah/go-blogposts/internal/dateutil"
	"github.com/alnah/go-blogposts/internal/fileutil"
	"github.com/alnah/go-blogposts/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidConfig   = errors.New("invalid config")
)

// DefaultName is the config name looked up when none is given.
const DefaultName = "blogposts"

// userConfigSubdir is the directory under os.UserConfigDir searched for named configs.
const userConfigSubdir = "go-blogposts"

// Listing sort keys.
const (
	SortDate = "date"
	SortName = "name"
)

// Field length limits.
const (
	MaxPathLength = 4096
	MaxURLLength  = 2048
)

var noWhitespace = regexp.MustCompile(`^\S+$`)

// Config holds all configuration for loading and presenting posts.
type Config struct {
	Content  ContentConfig  `yaml:"content"`
	Markdown MarkdownConfig `yaml:"markdown"`
	Assets   AssetsConfig   `yaml:"assets"`
	Listing  ListingConfig  `yaml:"listing"`
	Log      LogConfig      `yaml:"log"`
}

// ContentConfig locates the posts.
type ContentConfig struct {
	Dir string `yaml:"dir"` // Directory holding <id>.md files
}

// MarkdownConfig tunes body rendering.
type MarkdownConfig struct {
	HeadingIDs bool `yaml:"headingIDs"` // id attributes on headings
	HardWraps  bool `yaml:"hardWraps"`  // newlines become <br>
	Highlight  bool `yaml:"highlight"`  // chroma code highlighting (default: true)
}

// AssetsConfig controls media URL rewriting in rendered posts.
type AssetsConfig struct {
	BaseURL string `yaml:"baseURL"` // Empty = leave relative URLs alone
}

// ListingConfig controls how the post listing is presented.
type ListingConfig struct {
	Sort       string `yaml:"sort"`       // "date" (newest first) or "name" (default: "date")
	DateFormat string `yaml:"dateFormat"` // Tokens or preset; empty = date as written
}

// LogConfig configures the CLI logger.
type LogConfig struct {
	Level  string `yaml:"level"`  // trace, debug, info, warn, error (default: "warn")
	Format string `yaml:"format"` // console, json, pretty (default: "console")
}

// Validate checks every section. Called automatically by LoadConfig, but
// available for configs built in code. Field failures are reported as
// go-errors validation errors keyed by "Section.Field".
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.Content),
		validation.Field(&c.Assets),
		validation.Field(&c.Listing),
		validation.Field(&c.Log),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, goerrors.FromOzzoValidation(err, "config validation failed"))
	}
	return nil
}

// Validate implements validation.Validatable.
func (c ContentConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Dir, validation.Required, validation.Length(1, MaxPathLength)),
	)
}

// Validate implements validation.Validatable.
func (c AssetsConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.BaseURL, validation.Length(0, MaxURLLength), validation.Match(noWhitespace)),
	)
}

// Validate implements validation.Validatable.
func (c ListingConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Sort, validation.In(SortDate, SortName)),
		validation.Field(&c.DateFormat, validation.By(checkDateFormat)),
	)
}

// Validate implements validation.Validatable.
func (c LogConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Level, validation.In("trace", "debug", "info", "warn", "error")),
		validation.Field(&c.Format, validation.In("console", "json", "pretty")),
	)
}

func checkDateFormat(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := dateutil.ParseDateFormat(s); err != nil {
		return validation.NewError("validation_date_format", err.Error())
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Content:  ContentConfig{Dir: "posts"},
		Markdown: MarkdownConfig{Highlight: true},
		Assets:   AssetsConfig{BaseURL: ""},
		Listing:  ListingConfig{Sort: SortDate},
		Log:      LogConfig{Level: "warn", Format: "console"},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys absent from the file keep their DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists, in lookup order, the files tried for a config name:
// the current directory first, then the user config directory, each with
// .yaml then .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, userConfigSubdir, name+ext))
		}
	}
	return paths
}

func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
