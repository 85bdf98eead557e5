package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"model-compare/core/reconcile"
)

// ErrOutputWrite reports a report that could not be written to its destination.
var ErrOutputWrite = errors.New("failed to write report")

// Format selects the report encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown report format %q (expected text or json)", name)
	}
}

// Extension returns the file extension used for the format.
func (f Format) Extension() string {
	if f == FormatJSON {
		return ".json"
	}
	return ".txt"
}

// DefaultOutputName derives the report file name from the two input sources:
// compare_<stem1>_vs_<stem2>_results.txt.
func DefaultOutputName(first, second string) string {
	return OutputName(first, second, FormatText)
}

// OutputName derives the report file name for the given format.
func OutputName(first, second string, format Format) string {
	return fmt.Sprintf("compare_%s_vs_%s_results%s", stem(first), stem(second), format.Extension())
}

// stem strips the directory and the last extension of a path or object reference.
func stem(src string) string {
	base := filepath.Base(src)
	if s := strings.TrimSuffix(base, filepath.Ext(base)); s != "" {
		return s
	}
	return base
}

// Render writes the result in the given format.
func Render(w io.Writer, format Format, res *reconcile.ComparisonResult) error {
	if format == FormatJSON {
		return RenderJSON(w, res)
	}
	return RenderText(w, res)
}

// RenderText writes the human-readable report: a summary block followed by one
// section per category, each listing its nodes in id order.
func RenderText(w io.Writer, res *reconcile.ComparisonResult) error {
	s := res.Summary

	var b strings.Builder
	b.WriteString("Model JSON Node Comparison\n\n")
	b.WriteString("Summary:\n--------\n")
	fmt.Fprintf(&b, "Total nodes in file 1: %d\n", s.TotalFirst)
	fmt.Fprintf(&b, "Total nodes in file 2: %d\n", s.TotalSecond)
	fmt.Fprintf(&b, "Nodes only in file 1: %d\n", s.OnlyInFirst)
	fmt.Fprintf(&b, "Nodes only in file 2: %d\n", s.OnlyInSecond)
	fmt.Fprintf(&b, "Nodes in both files: %d\n", s.Common)

	writeSection(&b, "Nodes only in first file:", res.OnlyInFirst)
	writeSection(&b, "Nodes only in second file:", res.OnlyInSecond)
	writeSection(&b, "Nodes present in both files:", res.Common)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeSection(b *strings.Builder, title string, entries []reconcile.Entry) {
	fmt.Fprintf(b, "\n%s\n%s\n", title, strings.Repeat("-", len(title)-1))
	for _, e := range entries {
		b.WriteString(FormatEntry(e))
		b.WriteByte('\n')
	}
}

// FormatEntry renders one node line of the text report.
func FormatEntry(e reconcile.Entry) string {
	return fmt.Sprintf("Node ID - %s - Node name - %s - [NODE_GROUP_ID: %s]", e.NodeID, e.Name, e.NodegroupID)
}

// RenderJSON writes the result as indented JSON.
func RenderJSON(w io.Writer, res *reconcile.ComparisonResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(res); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// WriteFile renders the result and writes it to path. Nothing is written when
// rendering fails.
func WriteFile(path string, format Format, res *reconcile.ComparisonResult) error {
	var buf bytes.Buffer
	if err := Render(&buf, format, res); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutputWrite, path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutputWrite, path, err)
	}
	return nil
}
