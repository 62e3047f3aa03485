package domain

import (
	"fmt"
	"io"
	"strings"
)

// WriteReport writes the human-readable run report to w
func WriteReport(w io.Writer, s RunSummary) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Created: %d\n", s.Created)
	fmt.Fprintf(&b, "Skipped (already exist): %d\n", s.Skipped)
	fmt.Fprintf(&b, "Errors: %d\n", s.Errored)
	for _, e := range s.Errors {
		fmt.Fprintf(&b, "  - %s: %s\n", e.Key(), e.Err)
	}
	b.WriteString("Sample URLs:\n")
	for _, u := range s.SampleURLs {
		fmt.Fprintf(&b, "  %s\n", u)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderReport returns the report as a string
func RenderReport(s RunSummary) string {
	var b strings.Builder
	_ = WriteReport(&b, s)
	return b.String()
}
