package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
	formatHTML = "html"
)

// ErrUsage wraps flag and argument errors.
var ErrUsage = errors.New("usage error")

// ErrUnknownFormat is returned for a --format value a command does not support.
var ErrUnknownFormat = errors.New("unknown output format")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	dir     string
	quiet   bool
	verbose bool
}

// listFlags holds flags for the list command.
type listFlags struct {
	common commonFlags
	sort   string
	format string
}

// idsFlags holds flags for the ids command.
type idsFlags struct {
	common commonFlags
	format string
}

// showFlags holds flags for the show command.
type showFlags struct {
	common commonFlags
	format string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.dir, "dir", "d", "", "content directory (overrides config)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only log errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log debug events")
}

// newFlagSet creates a silent FlagSet; usage is printed by the help command.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func parseListFlags(args []string) (*listFlags, []string, error) {
	fs := newFlagSet("list")
	f := &listFlags{}

	fs.StringVarP(&f.sort, "sort", "s", "", "order: date (newest first) or name")
	fs.StringVarP(&f.format, "format", "f", formatText, "output format: text, json, yaml")
	addCommonFlags(fs, &f.common)

	rest, err := parse(fs, args)
	if err != nil {
		return nil, nil, err
	}
	if err := checkFormat(f.format, formatText, formatJSON, formatYAML); err != nil {
		return nil, nil, err
	}
	return f, rest, nil
}

func parseIDsFlags(args []string) (*idsFlags, []string, error) {
	fs := newFlagSet("ids")
	f := &idsFlags{}

	fs.StringVarP(&f.format, "format", "f", formatText, "output format: text, json, yaml")
	addCommonFlags(fs, &f.common)

	rest, err := parse(fs, args)
	if err != nil {
		return nil, nil, err
	}
	if err := checkFormat(f.format, formatText, formatJSON, formatYAML); err != nil {
		return nil, nil, err
	}
	return f, rest, nil
}

func parseShowFlags(args []string) (*showFlags, []string, error) {
	fs := newFlagSet("show")
	f := &showFlags{}

	fs.StringVarP(&f.format, "format", "f", formatHTML, "output format: html, json, yaml")
	addCommonFlags(fs, &f.common)

	rest, err := parse(fs, args)
	if err != nil {
		return nil, nil, err
	}
	if err := checkFormat(f.format, formatHTML, formatJSON, formatYAML); err != nil {
		return nil, nil, err
	}
	return f, rest, nil
}

// parse runs fs and tags failures as usage errors. flag.ErrHelp passes
// through so -h prints help and exits 0.
func parse(fs *flag.FlagSet, args []string) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return fs.Args(), nil
}

func checkFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return fmt.Errorf("%w: %q (want one of %v)", ErrUnknownFormat, format, allowed)
}
