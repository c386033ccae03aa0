package dateutil

import (
	"errors"
	"testing"
	"time"
)

// ---------------------------------------------------------------------------
// TestParseDateFormat - Token, preset and bracket handling
// ---------------------------------------------------------------------------

func TestParseDateFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  string
		want    string
		wantErr error
	}{
		{name: "iso tokens", format: "YYYY-MM-DD", want: "2006-01-02"},
		{name: "european tokens", format: "DD/MM/YYYY", want: "02/01/2006"},
		{name: "long month", format: "MMMM D, YYYY", want: "January 2, 2006"},
		{name: "short month", format: "MMM YYYY", want: "Jan 2006"},
		{name: "short year", format: "YY", want: "06"},
		{name: "non-padded", format: "M/D", want: "1/2"},
		{name: "iso preset", format: "iso", want: "2006-01-02"},
		{name: "preset is case insensitive", format: "LONG", want: "January 2, 2006"},
		{name: "us preset", format: "us", want: "01/02/2006"},
		{name: "brackets keep literal text", format: "[Posted] MMM D", want: "Posted Jan 2"},
		{name: "brackets keep tokens literal", format: "[YYYY]-MM", want: "YYYY-01"},
		{name: "literal characters", format: "(YYYY)", want: "(2006)"},
		{name: "unclosed bracket", format: "[Posted YYYY", wantErr: ErrInvalidDateFormat},
		{name: "empty format", format: "", wantErr: ErrInvalidDateFormat},
		{name: "too long", format: string(make([]byte, MaxDateFormatLength+1)), wantErr: ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseDateFormat(tt.format)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ParseDateFormat(%q) error = %v, want %v", tt.format, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDateFormat(%q) unexpected error: %v", tt.format, err)
			}
			if got != tt.want {
				t.Errorf("ParseDateFormat(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestParseDate - Front-matter values to time.Time
// ---------------------------------------------------------------------------

func TestParseDate(t *testing.T) {
	t.Parallel()

	jan1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		value  any
		want   time.Time
		wantOK bool
	}{
		{name: "iso date", value: "2024-01-01", want: jan1, wantOK: true},
		{name: "slash date", value: "2024/01/01", want: jan1, wantOK: true},
		{name: "long form", value: "January 1, 2024", want: jan1, wantOK: true},
		{name: "surrounding spaces", value: "  2024-01-01 ", want: jan1, wantOK: true},
		{name: "time value", value: jan1, want: jan1, wantOK: true},
		{name: "time pointer", value: &jan1, want: jan1, wantOK: true},
		{name: "zero time", value: time.Time{}, wantOK: false},
		{name: "empty string", value: "", wantOK: false},
		{name: "free text", value: "someday", wantOK: false},
		{name: "nil", value: nil, wantOK: false},
		{name: "number", value: 42, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ParseDate(tt.value)
			if ok != tt.wantOK {
				t.Fatalf("ParseDate(%v) ok = %v, want %v", tt.value, ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("ParseDate(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestFormatDate
// ---------------------------------------------------------------------------

func TestFormatDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   any
		format  string
		want    string
		wantErr error
	}{
		{name: "iso to long", value: "2024-03-15", format: "long", want: "March 15, 2024"},
		{name: "iso to european", value: "2024-03-15", format: "DD/MM/YYYY", want: "15/03/2024"},
		{name: "free text passes through", value: "coming soon", format: "iso", want: "coming soon"},
		{name: "missing value", value: nil, format: "iso", want: ""},
		{name: "bad format", value: "2024-03-15", format: "[oops", wantErr: ErrInvalidDateFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := FormatDate(tt.value, tt.format)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("FormatDate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("FormatDate() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("FormatDate(%v, %q) = %q, want %q", tt.value, tt.format, got, tt.want)
			}
		})
	}
}
