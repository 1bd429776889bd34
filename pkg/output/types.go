// Package output provides formatting for solve results.
package output

import (
	"sort"
	"time"
)

// Report is the complete output of a solve run.
type Report struct {
	// Summary provides aggregate statistics.
	Summary Summary `json:"summary"`

	// Results holds one entry per solved part, ordered by day then part.
	Results []*Result `json:"results"`

	// Metadata provides context about the run.
	Metadata Metadata `json:"metadata"`
}

// Result is the outcome of running one part of one day.
type Result struct {
	Day      int           `json:"day"`
	Title    string        `json:"title"`
	Part     int           `json:"part"`
	Input    string        `json:"input"`
	Answer   int64         `json:"answer"`
	Duration time.Duration `json:"duration"`

	// Error is set instead of Answer when the part failed.
	Error string `json:"error,omitempty"`
}

// Failed reports whether the part returned an error.
func (r *Result) Failed() bool {
	return r.Error != ""
}

// Summary provides aggregate statistics.
type Summary struct {
	// DaysRun is the number of distinct days that were run.
	DaysRun int `json:"days_run"`

	// PartsSolved is the number of parts that produced an answer.
	PartsSolved int `json:"parts_solved"`

	// PartsFailed is the number of parts that returned an error.
	PartsFailed int `json:"parts_failed"`
}

// Metadata provides context about the run.
type Metadata struct {
	// InputDir is the directory inputs were resolved against, if any.
	InputDir string `json:"input_dir,omitempty"`

	// SolvedAt is when the run finished.
	SolvedAt time.Time `json:"solved_at"`

	// Duration is the wall time of the whole run.
	Duration time.Duration `json:"duration"`
}

// NewReport builds a Report from results, sorting them and computing the summary.
func NewReport(results []*Result, inputDir string, start, end time.Time) *Report {
	sorted := make([]*Result, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Day != sorted[j].Day {
			return sorted[i].Day < sorted[j].Day
		}
		return sorted[i].Part < sorted[j].Part
	})

	report := &Report{
		Results: sorted,
		Metadata: Metadata{
			InputDir: inputDir,
			SolvedAt: end,
			Duration: end.Sub(start),
		},
	}

	days := make(map[int]struct{})
	for _, r := range sorted {
		days[r.Day] = struct{}{}
		if r.Failed() {
			report.Summary.PartsFailed++
		} else {
			report.Summary.PartsSolved++
		}
	}
	report.Summary.DaysRun = len(days)

	return report
}

// HasFailures returns true if any part failed.
func (r *Report) HasFailures() bool {
	return r.Summary.PartsFailed > 0
}
