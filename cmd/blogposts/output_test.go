package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	blogposts "github.com/alnah/go-blogposts"
	"github.com/alnah/go-blogposts/internal/dateutil"
)

// ---------------------------------------------------------------------------
// TestWriteListText - Table layout and date formatting
// ---------------------------------------------------------------------------

func TestWriteListText(t *testing.T) {
	t.Parallel()

	posts := []blogposts.Metadata{
		{ID: "hello-world", Title: "Hello World", Date: "2024-01-05"},
		{ID: "untitled-draft"},
		{ID: "someday", Date: "coming soon"},
	}

	tests := []struct {
		name       string
		dateFormat string
		wantRows   []string
		wantErr    error
	}{
		{
			name:     "dates as written",
			wantRows: []string{"2024-01-05", "-", "coming soon"},
		},
		{
			name:       "long preset",
			dateFormat: "long",
			wantRows:   []string{"January 5, 2024", "-", "coming soon"},
		},
		{
			name:       "invalid format",
			dateFormat: "[YYYY",
			wantErr:    dateutil.ErrInvalidDateFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			err := writeListText(&buf, posts, tt.dateFormat)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
			if len(lines) != len(posts)+1 {
				t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(posts)+1, buf.String())
			}
			for i, want := range tt.wantRows {
				if !strings.HasPrefix(lines[i+1], want) {
					t.Errorf("row %d = %q, want prefix %q", i, lines[i+1], want)
				}
			}
			if !strings.Contains(lines[2], "Untitled Draft") {
				t.Errorf("row = %q, want title derived from id", lines[2])
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWriteJSON - HTML stays readable
// ---------------------------------------------------------------------------

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	post := blogposts.Post{Metadata: blogposts.Metadata{ID: "p"}, Content: "<p>a & b</p>"}
	if err := writeJSON(&buf, post); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"content": "<p>a & b</p>"`) {
		t.Errorf("json = %s", buf.String())
	}
}

func TestWriteIDsText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	paths := []blogposts.PathDescriptor{{Params: blogposts.PathParams{ID: "x"}}, {Params: blogposts.PathParams{ID: "y"}}}
	if err := writeIDsText(&buf, paths); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "x\ny\n" {
		t.Errorf("output = %q", buf.String())
	}
}
