// Package validate implements the property validation tasks (spec.md
// §4.4–§4.7) and the class dependency tasks (spec.md §4.8): the
// handlers the driver dispatches VALIDATE_PROPERTY,
// VALIDATE_RDF_TYPE_PROPERTY, DETECT_AND_VALIDATE_NODE_CLASS,
// VALIDATE_EXPECTED_NODE_CLASS, and the five class-dependency task
// kinds to.
package validate

import "github.com/mgylling/badgecheck/internal/task"

// Outcome is a handler's result: whether the task succeeded, a
// human-readable explanation, and any follow-up actions to apply
// (spec.md §4.10, "Handler returns (success, message, follow_up_actions?)").
type Outcome struct {
	Success bool
	Result  string
	Actions []task.Action
}

// PrereqError is the TaskPrerequisitesError outcome of spec.md §7: the
// task could not run because data it needs (a node, a required
// property) is absent. It is never fatal — the driver records the task
// as failed and continues.
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
