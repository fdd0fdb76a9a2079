package treefmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"reshape/internal/diag"
)

// Options controls diagnostic rendering.
type Options struct {
	Color bool
}

var (
	infoColor    = color.New(color.FgCyan, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
)

func severityLabel(sev diag.Severity, colorize bool) string {
	label := strings.ToLower(sev.String())
	if !colorize {
		return label
	}
	switch sev {
	case diag.SevInfo:
		return infoColor.Sprint(label)
	case diag.SevWarning:
		return warningColor.Sprint(label)
	case diag.SevError:
		return errorColor.Sprint(label)
	}
	return label
}

// excerpt returns the first source line of the diagnostic's anchor node,
// trimmed of surrounding whitespace.
func excerpt(d diag.Diagnostic) string {
	if d.Anchor == nil {
		return ""
	}
	text := strings.TrimSpace(d.Anchor.Text())
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	return text
}

// DiagnosticsPretty writes one line per diagnostic:
//
//	warning[RS1001]: split variable binding into multiple declarations
//	  --> main.rtree: var a, b: Int
func DiagnosticsPretty(w io.Writer, path string, items []diag.Diagnostic, opts Options) error {
	for _, d := range items {
		if _, err := fmt.Fprintf(w, "%s[%s]: %s\n", severityLabel(d.Severity, opts.Color), d.Code.ID(), d.Message); err != nil {
			return err
		}
		location := path
		if ex := excerpt(d); ex != "" {
			location = fmt.Sprintf("%s: %s", path, ex)
		}
		if _, err := fmt.Fprintf(w, "  --> %s\n", location); err != nil {
			return err
		}
	}
	return nil
}

// DiagnosticOutput is the JSON shape of one diagnostic.
type DiagnosticOutput struct {
	Path     string `json:"path"`
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Excerpt  string `json:"excerpt,omitempty"`
}

// DiagnosticsJSON writes diagnostics as a JSON array in arrival order.
func DiagnosticsJSON(w io.Writer, path string, items []diag.Diagnostic) error {
	out := make([]DiagnosticOutput, 0, len(items))
	for _, d := range items {
		out = append(out, DiagnosticOutput{
			Path:     path,
			Severity: strings.ToLower(d.Severity.String()),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Excerpt:  excerpt(d),
		})
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
