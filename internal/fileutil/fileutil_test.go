package fileutil_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-blogposts/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestValidateBaseName - Names safe to join onto the content directory
// ---------------------------------------------------------------------------

func TestValidateBaseName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "simple id", input: "hello-world"},
		{name: "underscores and digits", input: "post_2024_01"},
		{name: "single dot inside", input: "v1.2-release"},
		{name: "dots not a segment", input: "wait..what"},
		{name: "unicode", input: "日本語"},
		{name: "empty", input: "", wantErr: fileutil.ErrNameEmpty},
		{name: "forward slash", input: "a/b", wantErr: fileutil.ErrNameTraversal},
		{name: "backslash", input: `a\b`, wantErr: fileutil.ErrNameTraversal},
		{name: "null byte", input: "a\x00b", wantErr: fileutil.ErrNameTraversal},
		{name: "dot", input: ".", wantErr: fileutil.ErrNameTraversal},
		{name: "dot dot", input: "..", wantErr: fileutil.ErrNameTraversal},
		{name: "parent traversal", input: "../etc/passwd", wantErr: fileutil.ErrNameTraversal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fileutil.ValidateBaseName(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateBaseName(%q) = %v, want nil", tt.input, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateBaseName(%q) = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestTrimMarkdownExt
// ---------------------------------------------------------------------------

func TestTrimMarkdownExt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"hello-world.md", "hello-world", true},
		{"notes.md.md", "notes.md", true},
		{"README.MD", "README.MD", false},
		{"image.png", "image.png", false},
		{".md", "", true},
		{"md", "md", false},
	}

	for _, tt := range tests {
		got, ok := fileutil.TrimMarkdownExt(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("TrimMarkdownExt(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

// ---------------------------------------------------------------------------
// TestFileExists
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "blogposts.yaml")
	if err := os.WriteFile(file, []byte("content:\n  dir: posts\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if !fileutil.FileExists(file) {
		t.Errorf("FileExists(%q) = false, want true", file)
	}
	if fileutil.FileExists(dir) {
		t.Errorf("FileExists(%q) = true for directory, want false", dir)
	}
	if fileutil.FileExists(filepath.Join(dir, "missing.yaml")) {
		t.Error("FileExists(missing) = true, want false")
	}
}

// ---------------------------------------------------------------------------
// TestDirExists
// ---------------------------------------------------------------------------

func TestDirExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "post.md")
	if err := os.WriteFile(file, []byte("# Hi"), 0o600); err != nil {
		t.Fatal(err)
	}

	if !fileutil.DirExists(dir) {
		t.Errorf("DirExists(%q) = false, want true", dir)
	}
	if fileutil.DirExists(file) {
		t.Errorf("DirExists(%q) = true for file, want false", file)
	}
	if fileutil.DirExists(filepath.Join(dir, "missing")) {
		t.Error("DirExists(missing) = true, want false")
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"blogposts", false},
		{"my-config", false},
		{"./blogposts.yaml", true},
		{"/etc/blogposts.yaml", true},
		{`C:\cfg\blogposts.yaml`, true},
	}

	for _, tt := range tests {
		if got := fileutil.IsFilePath(tt.in); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
