// Package engine implements the driver (spec.md §4.10): the loop that
// repeatedly selects the next active task, dispatches it to its
// handler, and applies the resulting actions — terminating when no
// active task remains.
package engine

import (
	"github.com/mgylling/badgecheck/internal/graph"
	"github.com/mgylling/badgecheck/internal/task"
)

// State is the engine's full substate triple, minus Report: the
// NodeStore and the TaskQueue. Report is derived from Queue on demand
// (internal/report.FromQueue) rather than carried alongside it, since
// it holds no information the queue doesn't already have.
type State struct {
	Store graph.Store
	Queue task.Queue
}

// Apply applies a single action to State, routing PATCH_NODE and
// ADD_NODE to the Store and every other action kind to the Queue
// reducer (spec.md §3: "State transitions are functional").
func Apply(state State, action task.Action) State {
	switch action.Type {
	case task.PatchNode:
		return State{Store: state.Store.PatchNode(action.NodeID, action.Patch), Queue: state.Queue}
	case task.AddNode:
		return State{Store: state.Store.AddNode(graph.Node(action.Patch)), Queue: state.Queue}
	default:
		return State{Store: state.Store, Queue: task.Reduce(state.Queue, action)}
	}
}

// ApplyAll folds Apply over a sequence of actions, in order (spec.md
// §5, "Actions returned by a handler are applied in the order returned").
func ApplyAll(state State, actions []task.Action) State {
	for _, a := range actions {
		state = Apply(state, a)
	}
	return state
}
