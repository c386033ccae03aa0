package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: blogposts <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  list       List post metadata")
	fmt.Fprintln(w, "  ids        List post ids as route parameters")
	fmt.Fprintln(w, "  show       Render a single post")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'blogposts help <command>' for details on a specific command.")
}

// printCommonUsage prints the flags every data command accepts.
func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "Common:")
	fmt.Fprintln(w, "  -d, --dir <path>          Content directory (default from config: posts)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only log errors")
	fmt.Fprintln(w, "  -v, --verbose             Log debug events")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  BLOGPOSTS_CONFIG, BLOGPOSTS_DIR, BLOGPOSTS_ASSET_BASE_URL,")
	fmt.Fprintln(w, "  BLOGPOSTS_LOG_LEVEL, BLOGPOSTS_LOG_FORMAT")
	fmt.Fprintln(w, "  Flags override environment, environment overrides the config file.")
}

// printListUsage prints usage for the list command.
func printListUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: blogposts list [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List the front-matter of every post.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -s, --sort <s>            Order: date (newest first), name")
	fmt.Fprintln(w, "  -f, --format <s>          Output: text, json, yaml (default: text)")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printIDsUsage prints usage for the ids command.
func printIDsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: blogposts ids [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List post ids, one route parameter set per post.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -f, --format <s>          Output: text, json, yaml (default: text)")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printShowUsage prints usage for the show command.
func printShowUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: blogposts show <id> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render the post stored in <dir>/<id>.md.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -f, --format <s>          Output: html, json, yaml (default: html)")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// runHelp prints help for a specific command and returns the exit code.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "list":
		printListUsage(env.Stdout)
	case "ids":
		printIDsUsage(env.Stdout)
	case "show":
		printShowUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: blogposts version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: blogposts help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
