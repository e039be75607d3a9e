package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mgylling/badgecheck/internal/extension"
	"github.com/mgylling/badgecheck/internal/fetch"
	"github.com/mgylling/badgecheck/internal/task"
	"github.com/mgylling/badgecheck/internal/validate"
)

// Driver runs the reducer loop of spec.md §4.10 to completion, wiring
// the task handlers across internal/validate, internal/extension, and
// internal/fetch — the three packages spec.md §2 lists as the engine's
// leaf-to-root component stack, minus the pure reducer itself.
type Driver struct {
	Extensions extension.Registry
	Fetcher    *fetch.Client
	Logger     *slog.Logger
}

// handlerOutcome is the common shape every synchronous task handler's
// result is adapted to before the driver applies it (spec.md §4.10
// step 4: "Handler returns (success, message, follow_up_actions?)").
type handlerOutcome struct {
	success bool
	result  string
	actions []task.Action
}

// Run repeatedly selects the lowest-task_id active task, dispatches it,
// and applies the resulting RESOLVE_TASK plus any follow-up actions,
// terminating when no active task remains (spec.md §4.10). A
// TaskPrerequisitesError resolves the task as failed and continues; any
// other error is an InternalError (spec.md §7) and halts the loop.
func (d *Driver) Run(ctx context.Context, state State) (State, error) {
	for {
		next, hasActive := state.Queue.NextActive()
		if !hasActive {
			return state, nil
		}

		outcome, err := d.dispatch(ctx, state, next)
		if err != nil {
			if reason, isPrereq := prereqReason(err); isPrereq {
				state = Apply(state, task.Resolve(next.TaskID, false, reason))
				continue
			}
			return state, fmt.Errorf("task %d (%s) on node %s: %w", next.TaskID, next.Kind, next.Params.NodeID, err)
		}

		if d.Logger != nil {
			d.Logger.Debug("task resolved",
				slog.Int("task_id", next.TaskID), slog.String("kind", string(next.Kind)),
				slog.Bool("success", outcome.success))
		}

		state = Apply(state, task.Resolve(next.TaskID, outcome.success, outcome.result))
		state = ApplyAll(state, outcome.actions)
	}
}

// prereqReason reports whether err is one of the two packages'
// TaskPrerequisitesError outcomes, and if so its human-readable reason.
func prereqReason(err error) (string, bool) {
	var vErr *validate.PrereqError
	if errors.As(err, &vErr) {
		return vErr.Error(), true
	}
	var eErr *extension.PrereqError
	if errors.As(err, &eErr) {
		return eErr.Error(), true
	}
	return "", false
}

func (d *Driver) dispatch(ctx context.Context, state State, t task.Task) (handlerOutcome, error) {
	switch t.Kind {
	case task.DetectAndValidateNodeClass:
		return adapt(validate.DetectAndValidateNodeClass(state.Store, t))
	case task.ValidateExpectedNodeClass:
		return adapt(validate.ValidateExpectedNodeClass(state.Store, t))
	case task.ValidateProperty:
		return adapt(validate.ValidateProperty(state.Store, t))
	case task.ValidateRDFTypeProperty:
		return adapt(validate.ValidateRDFTypeProperty(state.Store, t))
	case task.IdentityObjectPropertyDependencies:
		return adapt(validate.IdentityObjectPropertyDependencies(state.Store, t))
	case task.CriteriaPropertyDependencies:
		return adapt(validate.CriteriaPropertyDependencies(state.Store, t))
	case task.AssertionVerificationDependencies:
		return adapt(validate.AssertionVerificationDependencies(state.Store, t))
	case task.AssertionTimestampChecks:
		return adapt(validate.AssertionTimestampChecks(state.Store, t))
	case task.IssuerPropertyDependencies:
		return adapt(validate.IssuerPropertyDependencies(state.Store, t))
	case task.HostedIDInVerificationScope:
		return adapt(validate.HostedIDInVerificationScope(state.Store, t))
	case task.ValidateExtensionNode:
		outcome, err := extension.ValidateExtensionNode(d.Extensions, state.Store, t)
		return handlerOutcome{outcome.Success, outcome.Result, outcome.Actions}, err
	case task.FetchHTTPNode:
		result := d.Fetcher.FetchHTTPNode(ctx, t)
		return handlerOutcome{result.Success, result.Message, result.Actions}, nil
	default:
		return handlerOutcome{}, fmt.Errorf("no handler registered for task kind %s", t.Kind)
	}
}

func adapt(outcome validate.Outcome, err error) (handlerOutcome, error) {
	return handlerOutcome{outcome.Success, outcome.Result, outcome.Actions}, err
}
