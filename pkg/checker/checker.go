package checker

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/peftcheck/peftcheck/pkg/assign"
	"github.com/peftcheck/peftcheck/pkg/schema"
)

// ConfigFileCandidates are the accepted names for the config file, probed
// in order; the first existing one wins.
var ConfigFileCandidates = []string{"peft config.txt", "peft_config.txt"}

// DataFileName is the required name of the data file.
const DataFileName = "peft.txt"

// FileResult is the outcome of checking a single submission file.
type FileResult struct {
	// Name is the display name of the file.
	Name string `json:"name"`

	// Path is the resolved path of the file, empty if it was not found.
	Path string `json:"path,omitempty"`

	// Found indicates whether the file existed.
	Found bool `json:"found"`

	// Errors lists the format errors, in check order. A parse failure
	// appears as the single entry. Empty means the file passed.
	Errors []string `json:"errors"`
}

// OK reports whether the file was found and passed every check.
func (r FileResult) OK() bool {
	return r.Found && len(r.Errors) == 0
}

// Status is "ok", "failed", or "not_found".
func (r FileResult) Status() string {
	switch {
	case !r.Found:
		return "not_found"
	case len(r.Errors) > 0:
		return "failed"
	}
	return "ok"
}

// Report is the outcome of checking one submission directory.
type Report struct {
	// Dir is the directory that was checked.
	Dir string `json:"dir"`

	// Results holds one entry per submission file, config first.
	Results []FileResult `json:"results"`

	// StartedAt is when the check began.
	StartedAt time.Time `json:"started_at"`

	// CompletedAt is when the check finished.
	CompletedAt time.Time `json:"completed_at"`
}

// OK reports whether every file was found and passed.
func (r *Report) OK() bool {
	for _, res := range r.Results {
		if !res.OK() {
			return false
		}
	}
	return true
}

// ErrorCount is the total number of errors across all files. A missing
// file counts as one error.
func (r *Report) ErrorCount() int {
	n := 0
	for _, res := range r.Results {
		n += len(res.Errors)
	}
	return n
}

// CheckDir checks the submission files in dir and returns the report.
// The config and data checks are independent and both always run.
func CheckDir(dir string) *Report {
	rep := &Report{Dir: dir, StartedAt: time.Now()}
	rep.Results = append(rep.Results, checkConfigFile(dir), checkDataFile(dir))
	rep.CompletedAt = time.Now()
	return rep
}

func checkConfigFile(dir string) FileResult {
	for _, cand := range ConfigFileCandidates {
		path := filepath.Join(dir, cand)
		if _, err := os.Stat(path); err == nil {
			return checkFile(cand, path, schema.ValidateConfig)
		}
	}
	return FileResult{
		Name:   strings.Join(ConfigFileCandidates, " / "),
		Found:  false,
		Errors: []string{"File not found"},
	}
}

func checkDataFile(dir string) FileResult {
	path := filepath.Join(dir, DataFileName)
	if _, err := os.Stat(path); err != nil {
		return FileResult{
			Name:   DataFileName,
			Found:  false,
			Errors: []string{"File not found"},
		}
	}
	return checkFile(DataFileName, path, schema.ValidateData)
}

// checkFile parses one file and applies its validator. Parse failures are
// recovered here and become the file's single error message.
func checkFile(name, path string, validate func(assign.Assignments) []string) FileResult {
	res := FileResult{Name: name, Path: path, Found: true}

	vars, err := assign.ParseFile(path)
	if err != nil {
		res.Errors = []string{err.Error()}
		return res
	}

	res.Errors = validate(vars)
	return res
}
