package linter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Format selects how diagnostics are written.
type Format string

// Output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text or json)", s)
	}
}

// WriteOptions controls diagnostic output.
type WriteOptions struct {
	Format Format
	Color  bool
}

// Write serializes diagnostics to w.
//
// The text format emits one "path:line:col: severity: message (rule)" line
// per diagnostic. The JSON format emits a single array, "[]" when empty.
func Write(w io.Writer, diags []Diagnostic, opts WriteOptions) error {
	if opts.Format == FormatJSON {
		return writeJSON(w, diags)
	}

	errColor := severityColor(color.FgRed, opts.Color)
	warnColor := severityColor(color.FgYellow, opts.Color)

	for _, d := range diags {
		sev := warnColor.Sprint(string(d.Severity))
		if d.Severity == SeverityError {
			sev = errColor.Sprint(string(d.Severity))
		}
		if _, err := fmt.Fprintf(w, "%s:%d:%d: %s: %s (%s)\n",
			d.File, d.Line, d.Column, sev, d.Message, d.Rule); err != nil {
			return err
		}
	}
	return nil
}

// WriteSummary writes the closing problem count. Nothing is written when
// there are no diagnostics.
func WriteSummary(w io.Writer, diags []Diagnostic, useColor bool) error {
	if len(diags) == 0 {
		return nil
	}

	errs, warns := Count(diags)
	c := severityColor(color.FgYellow, useColor)
	if errs > 0 {
		c = severityColor(color.FgRed, useColor)
	}

	_, err := fmt.Fprintln(w, c.Sprintf("%d %s (%d %s, %d %s)",
		len(diags), plural(len(diags), "problem"),
		errs, plural(errs, "error"),
		warns, plural(warns, "warning")))
	return err
}

func writeJSON(w io.Writer, diags []Diagnostic) error {
	if diags == nil {
		diags = []Diagnostic{}
	}
	data, err := json.MarshalIndent(diags, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding diagnostics: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// severityColor returns a bold color whose output is forced on or off,
// independent of the package-level terminal detection.
func severityColor(attr color.Attribute, enabled bool) *color.Color {
	c := color.New(attr, color.Bold)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
