package extension

import "github.com/mgylling/badgecheck/internal/task"

// Outcome mirrors internal/validate's handler result shape (spec.md
// §4.10): success flag, human-readable message, follow-up actions.
type Outcome struct {
	Success bool
	Result  string
	Actions []task.Action
}

// PrereqError is the TaskPrerequisitesError outcome of spec.md §7.
type PrereqError struct {
	Reason string
}

func (e *PrereqError) Error() string {
	if e.Reason == "" {
		return "task prerequisites not met"
	}
	return e.Reason
}

func ok(result string, actions ...task.Action) (Outcome, error) {
	return Outcome{Success: true, Result: result, Actions: actions}, nil
}

func fail(result string) (Outcome, error) {
	return Outcome{Success: false, Result: result}, nil
}

func prereq(reason string) (Outcome, error) {
	return Outcome{}, &PrereqError{Reason: reason}
}
