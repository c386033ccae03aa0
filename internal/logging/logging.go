// Package logging backs the loader's Logger with go-logger.
package logging

import (
	"context"
	"fmt"
	"strings"

	glog "github.com/goliatone/go-logger/glog"
)

// Config selects the level and output format of the root logger.
type Config struct {
	Level     string // trace, debug, info, warn, error; empty keeps the go-logger default
	Format    string // console, json, pretty; empty means console
	AddSource bool
}

// Logger adapts a go-logger logger to the Debug/Info/Warn/Error contract.
type Logger struct {
	inner glog.Logger
	root  *glog.BaseLogger
}

// New builds a root logger from cfg.
func New(cfg Config) (*Logger, error) {
	options := []glog.Option{}

	if level := normalizeLevel(cfg.Level); level != "" {
		options = append(options, glog.WithLevel(level))
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "console":
		options = append(options, glog.WithLoggerTypeConsole())
	case "json":
		options = append(options, glog.WithLoggerTypeJSON())
	case "pretty":
		options = append(options, glog.WithLoggerTypePretty())
	default:
		return nil, fmt.Errorf("logging: unsupported format %q", cfg.Format)
	}

	if cfg.AddSource {
		options = append(options, glog.WithAddSource(true))
	}

	root := glog.NewLogger(options...)
	return &Logger{inner: root, root: root}, nil
}

// Named returns a child logger tagged with name. An empty name returns l.
func (l *Logger) Named(name string) *Logger {
	name = strings.TrimSpace(name)
	if l == nil || l.root == nil || name == "" {
		return l
	}
	return &Logger{inner: l.root.GetLogger(name), root: l.root}
}

// WithContext returns a logger carrying ctx.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	if l == nil || ctx == nil {
		return l
	}
	return &Logger{inner: l.inner.WithContext(ctx), root: l.root}
}

func (l *Logger) Debug(msg string, args ...any) {
	if l != nil {
		l.inner.Debug(msg, args...)
	}
}

func (l *Logger) Info(msg string, args ...any) {
	if l != nil {
		l.inner.Info(msg, args...)
	}
}

func (l *Logger) Warn(msg string, args ...any) {
	if l != nil {
		l.inner.Warn(msg, args...)
	}
}

func (l *Logger) Error(msg string, args ...any) {
	if l != nil {
		l.inner.Error(msg, args...)
	}
}

func normalizeLevel(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return glog.Trace
	case "debug":
		return glog.Debug
	case "info":
		return glog.Info
	case "warn", "warning":
		return glog.Warn
	case "error":
		return glog.Error
	default:
		return ""
	}
}
