package history

import "time"

// RunStatus is the overall outcome of a recorded check run.
type RunStatus string

const (
	RunStatusPassed RunStatus = "passed"
	RunStatusFailed RunStatus = "failed"
)

// CheckRun is one recorded invocation of the checker.
type CheckRun struct {
	ID          string    `json:"id"`
	Directory   string    `json:"directory"`
	Status      RunStatus `json:"status"`
	ErrorCount  int       `json:"error_count"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// FileRecord is the stored outcome for one submission file within a run.
type FileRecord struct {
	ID     int64  `json:"id"`
	RunID  string `json:"run_id"`
	File   string `json:"file"`
	Found  bool   `json:"found"`
	Status string `json:"status"` // ok, failed, not_found
	Errors string `json:"errors"` // JSON array of messages
}
