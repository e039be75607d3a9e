// Package report implements the engine's output: a deterministic
// verdict over a completed TaskQueue (spec.md §6.2).
package report

import (
	"fmt"
	"strings"

	"github.com/mgylling/badgecheck/internal/task"
)

// maxValueLength is the abbreviation threshold spec.md §7 specifies:
// "strings over 50 chars are truncated with an ellipsis."
const maxValueLength = 50

// Abbreviate renders v for inclusion in a human-readable message,
// truncating long string representations with an ellipsis.
func Abbreviate(v any) string {
	s := fmt.Sprintf("%v", v)
	if len(s) <= maxValueLength {
		return s
	}
	return s[:maxValueLength] + "..."
}

// Entry is one per-task record in the Report (spec.md §6.2).
type Entry struct {
	TaskID   int    `json:"task_id"`
	Name     string `json:"name"`
	NodeID   string `json:"node_id,omitempty"`
	PropName string `json:"prop_name,omitempty"`
	Success  bool   `json:"success"`
	Message  string `json:"message"`
}

// Report is the engine's deterministic verdict over a completed run.
type Report struct {
	Valid   bool    `json:"valid"`
	Entries []Entry `json:"entries"`
}

// FromQueue builds a Report from a fully-drained task queue: valid iff
// every completed task resolved with success=true (spec.md §6.2, §7).
func FromQueue(q task.Queue) Report {
	r := Report{Valid: true}
	for _, t := range q {
		if !t.Complete {
			continue
		}
		if !t.Success {
			r.Valid = false
		}
		r.Entries = append(r.Entries, Entry{
			TaskID:   t.TaskID,
			Name:     string(t.Kind),
			NodeID:   t.Params.NodeID,
			PropName: t.Params.PropName,
			Success:  t.Success,
			Message:  t.Result,
		})
	}
	return r
}

// String renders a human-readable rendition of the report, one line
// per task entry, for CLI output.
func (r Report) String() string {
	var sb strings.Builder
	verdict := "VALID"
	if !r.Valid {
		verdict = "INVALID"
	}
	fmt.Fprintf(&sb, "%s\n", verdict)
	for _, e := range r.Entries {
		status := "ok"
		if !e.Success {
			status = "FAIL"
		}
		fmt.Fprintf(&sb, "[%d] %-5s %-36s %s\n", e.TaskID, status, e.Name, e.Message)
	}
	return sb.String()
}
