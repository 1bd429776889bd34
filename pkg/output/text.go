package output

import (
	"context"
	"fmt"
	"io"
	"time"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	for _, r := range report.Results {
		if r.Failed() {
			continue
		}
		if _, err := fmt.Fprintln(w, r.Answer); err != nil {
			return err
		}
	}
	return nil
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	day := 0
	for _, r := range report.Results {
		if r.Day != day {
			if day != 0 {
				fmt.Fprintln(w)
			}
			day = r.Day
			fmt.Fprintf(w, "--- Day %d: %s ---\n", r.Day, r.Title)
		}
		f.formatResult(r, w)
	}

	if len(report.Results) > 1 || f.opts.Verbose {
		fmt.Fprintln(w, "---")
		fmt.Fprintf(w, "Summary: %d days, %d parts solved, %d failed\n",
			report.Summary.DaysRun,
			report.Summary.PartsSolved,
			report.Summary.PartsFailed)
	}

	if f.opts.Verbose {
		if report.Metadata.InputDir != "" {
			fmt.Fprintf(w, "Inputs: %s\n", report.Metadata.InputDir)
		}
		fmt.Fprintf(w, "Duration: %s\n", report.Metadata.Duration.Round(time.Microsecond))
	}

	return nil
}

func (f *TextFormatter) formatResult(r *Result, w io.Writer) {
	if r.Failed() {
		fmt.Fprintf(w, "Part %d: error: %s\n", r.Part, r.Error)
		return
	}

	if f.opts.Verbose {
		fmt.Fprintf(w, "Part %d: %d (%s)\n", r.Part, r.Answer, r.Duration.Round(time.Microsecond))
		fmt.Fprintf(w, "  Input: %s\n", r.Input)
		return
	}
	fmt.Fprintf(w, "Part %d: %d\n", r.Part, r.Answer)
}
