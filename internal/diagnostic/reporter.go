package diagnostic

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/thoreinstein/tagwm/internal/errors"
)

// Format specifies the output format for reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// Reporter formats and writes compilation results.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{
		out:    out,
		format: format,
	}
}

// Report writes the result to the output.
func (r *Reporter) Report(path string, result *Result) error {
	if result == nil {
		result = &Result{}
	}

	switch r.format {
	case FormatJSON:
		return r.reportJSON(path, result)
	default:
		return r.reportText(path, result)
	}
}

type jsonReport struct {
	Path   string  `json:"path"`
	OK     bool    `json:"ok"`
	Issues []Issue `json:"issues"`
}

func (r *Reporter) reportJSON(path string, result *Result) error {
	issues := result.Issues
	if issues == nil {
		issues = []Issue{}
	}
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	return errors.Wrap(encoder.Encode(jsonReport{
		Path:   path,
		OK:     !result.HasFatal(),
		Issues: issues,
	}), "encoding JSON report")
}

func (r *Reporter) reportText(path string, result *Result) error {
	fatal := result.Fatal()
	warnings := result.Warnings()

	if len(fatal) == 0 && len(warnings) == 0 {
		fmt.Fprintf(r.out, "%s %s\n", color.GreenString("✓"), path)
		return nil
	}

	summary := []string{}
	if len(fatal) > 0 {
		summary = append(summary, color.RedString("%d fatal", len(fatal)))
	}
	if len(warnings) > 0 {
		summary = append(summary, color.YellowString("%d warning(s)", len(warnings)))
	}
	fmt.Fprintf(r.out, "%s: %s\n\n", path, strings.Join(summary, ", "))

	if len(fatal) > 0 {
		fmt.Fprintln(r.out, "Fatal:")
		for _, i := range fatal {
			r.printIssue(i, color.FgRed)
		}
		fmt.Fprintln(r.out)
	}

	if len(warnings) > 0 {
		fmt.Fprintln(r.out, "Warnings:")
		for _, i := range warnings {
			r.printIssue(i, color.FgYellow)
		}
		fmt.Fprintln(r.out)
	}

	return nil
}

func (r *Reporter) printIssue(i Issue, c color.Attribute) {
	printer := color.New(c).SprintFunc()
	faint := color.New(color.FgHiBlack)

	// Format:  • section: message [value] (context) hint

	var sb strings.Builder
	sb.WriteString("  • ")

	if i.Section != "" {
		sb.WriteString(printer(i.Section))
		sb.WriteString(": ")
	}

	sb.WriteString(i.Message)

	if i.Value != nil {
		valStr := fmt.Sprintf("%v", i.Value)
		if len(valStr) > 50 {
			valStr = valStr[:47] + "..."
		}
		sb.WriteString(faint.Sprintf(" [%s]", valStr))
	}

	if len(i.Context) > 0 {
		var ctxParts []string
		for k, v := range i.Context {
			ctxParts = append(ctxParts, fmt.Sprintf("%s=%s", k, v))
		}
		sort.Strings(ctxParts)

		sb.WriteString(" ")
		sb.WriteString(faint.Sprintf("(%s)", strings.Join(ctxParts, ", ")))
	}

	if i.Hint != "" {
		sb.WriteString(" ")
		sb.WriteString(color.CyanString(i.Hint))
	}

	fmt.Fprintln(r.out, sb.String())
}
