package task

// ActionType is one of the reducer's action tags (spec.md §3).
type ActionType string

const (
	AddTask     ActionType = "ADD_TASK"
	ResolveTask ActionType = "RESOLVE_TASK"
	UpdateTask  ActionType = "UPDATE_TASK"
	PatchNode   ActionType = "PATCH_NODE"
	AddNode     ActionType = "ADD_NODE"
)

// Action is the sole mutator of State: every reducer transition applies
// exactly one Action (spec.md §3, "Actions are the sole mutators of
// state").
type Action struct {
	Type ActionType

	// ADD_TASK
	Kind   Kind
	Params Params

	// RESOLVE_TASK / UPDATE_TASK
	TaskID  int
	Success bool
	Result  string

	// PATCH_NODE
	NodeID string
	Patch  map[string]any
}

// Add builds an ADD_TASK action for the given kind and parameters.
func Add(kind Kind, params Params) Action {
	return Action{Type: AddTask, Kind: kind, Params: params}
}

// Resolve builds a RESOLVE_TASK action.
func Resolve(taskID int, success bool, result string) Action {
	return Action{Type: ResolveTask, TaskID: taskID, Success: success, Result: result}
}

// Update builds an UPDATE_TASK action that replaces the named task's
// Params and Kind.
func Update(taskID int, kind Kind, params Params) Action {
	return Action{Type: UpdateTask, TaskID: taskID, Kind: kind, Params: params}
}

// Patch builds a PATCH_NODE action.
func Patch(nodeID string, patch map[string]any) Action {
	return Action{Type: PatchNode, NodeID: nodeID, Patch: patch}
}

// InsertNode builds an ADD_NODE action: the FETCH_HTTP_NODE
// collaborator's re-entry point once a remote node has been retrieved
// (spec.md §5, "re-enters the engine via an UPDATE_TASK / ADD_TASK(ADD_NODE)
// sequence"). fields must include "id".
func InsertNode(fields map[string]any) Action {
	nodeID, _ := fields["id"].(string)
	return Action{Type: AddNode, NodeID: nodeID, Patch: fields}
}
