// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForContentDirNotFound returns hints when the posts directory is missing.
func ForContentDirNotFound(dir string) string {
	var hints []string
	if dir != "" {
		hints = append(hints, "create "+dir+" and add <id>.md files")
	}
	hints = append(hints, "or point elsewhere with --dir or content.dir in the config")
	return formatHints(hints)
}

// ForPostNotFound returns a hint when a post id has no matching file.
func ForPostNotFound() string {
	return format("run 'blogposts ids' to see available post ids")
}

// ForInvalidID returns a hint describing what a post id may contain.
func ForInvalidID() string {
	return format("ids are file names without .md and cannot contain '/', '\\' or be '..'")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating the first user-level path searched.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForFrontMatter returns a hint for malformed front-matter blocks.
func ForFrontMatter() string {
	return format("front-matter must be a YAML mapping between '---' lines or TOML between '+++' lines")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
