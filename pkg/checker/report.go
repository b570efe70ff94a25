package checker

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteText renders the report in its console form: one status line per
// file, the individual error messages indented beneath failing files, and
// a trailing summary line.
func (r *Report) WriteText(w io.Writer) error {
	for _, res := range r.Results {
		switch {
		case !res.Found:
			if _, err := fmt.Fprintf(w, "❌ %s: File not found\n", res.Name); err != nil {
				return err
			}
		case res.OK():
			if _, err := fmt.Fprintf(w, "✅ %s: OK\n", res.Name); err != nil {
				return err
			}
		default:
			if _, err := fmt.Fprintf(w, "❌ %s:\n", res.Name); err != nil {
				return err
			}
			for _, msg := range res.Errors {
				if _, err := fmt.Fprintf(w, "   - %s\n", msg); err != nil {
					return err
				}
			}
		}
	}

	summary := "\nAll files are correctly formatted ✅\n"
	if !r.OK() {
		summary = "\nFormatting issues detected ❗\n"
	}
	_, err := fmt.Fprint(w, summary)
	return err
}

// jsonFileResult mirrors FileResult with the derived status included.
type jsonFileResult struct {
	Name   string   `json:"name"`
	Path   string   `json:"path,omitempty"`
	Found  bool     `json:"found"`
	Status string   `json:"status"`
	Errors []string `json:"errors"`
}

// jsonReport is the JSON rendering of a Report.
type jsonReport struct {
	Dir         string           `json:"dir"`
	OK          bool             `json:"ok"`
	ErrorCount  int              `json:"error_count"`
	Results     []jsonFileResult `json:"results"`
	StartedAt   string           `json:"started_at"`
	CompletedAt string           `json:"completed_at"`
}

// WriteJSON renders the report as indented JSON for tooling.
func (r *Report) WriteJSON(w io.Writer) error {
	out := jsonReport{
		Dir:         r.Dir,
		OK:          r.OK(),
		ErrorCount:  r.ErrorCount(),
		StartedAt:   r.StartedAt.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		CompletedAt: r.CompletedAt.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}
	for _, res := range r.Results {
		out.Results = append(out.Results, jsonFileResult{
			Name:   res.Name,
			Path:   res.Path,
			Found:  res.Found,
			Status: res.Status(),
			Errors: res.Errors,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
