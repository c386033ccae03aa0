package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	blogposts "github.com/alnah/go-blogposts"
	"github.com/alnah/go-blogposts/internal/dateutil"
	"github.com/alnah/go-blogposts/internal/yamlutil"
)

// writeJSON writes v as indented JSON. Rendered HTML is not escaped.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeYAML writes v as a YAML document.
func writeYAML(w io.Writer, v any) error {
	data, err := yamlutil.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// writeListText writes an aligned DATE/ID/TITLE table.
// An empty dateFormat prints dates as written in the front-matter.
func writeListText(w io.Writer, posts []blogposts.Metadata, dateFormat string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tID\tTITLE")
	for _, p := range posts {
		date := p.Date
		if dateFormat != "" && p.Date != "" {
			formatted, err := dateutil.FormatDate(p.Date, dateFormat)
			if err != nil {
				return err
			}
			date = formatted
		}
		if date == "" {
			date = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", date, p.ID, p.DisplayTitle())
	}
	return tw.Flush()
}

// writeIDsText writes one id per line.
func writeIDsText(w io.Writer, paths []blogposts.PathDescriptor) error {
	for _, p := range paths {
		if _, err := fmt.Fprintln(w, p.Params.ID); err != nil {
			return err
		}
	}
	return nil
}
