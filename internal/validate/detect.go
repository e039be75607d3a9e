package validate

import (
	"fmt"

	"github.com/mgylling/badgecheck/internal/graph"
	"github.com/mgylling/badgecheck/internal/obtypes"
	"github.com/mgylling/badgecheck/internal/task"
)

// DetectAndValidateNodeClass reads the node's declared type, matches it
// against the closed OBClasses set, and queues that class's validation
// actions (spec.md §4.6).
func DetectAndValidateNodeClass(store graph.Store, t task.Task) (Outcome, error) {
	nodeID := t.Params.NodeID
	node, found := store.NodeByID(nodeID)
	if !found {
		return prereq(fmt.Sprintf("node %s not found", nodeID))
	}

	declaredType, _ := node["type"].(string)
	class := obtypes.DetectClass(declaredType)

	actions := obtypes.ValidationActions(nodeID, class)
	return ok(fmt.Sprintf("Declared type on node %s is %s", nodeID, declaredType), actions...)
}

// ValidateExpectedNodeClass looks up the node and queues the validation
// actions for the caller-supplied expected class (spec.md §4.7).
func ValidateExpectedNodeClass(store graph.Store, t task.Task) (Outcome, error) {
	nodeID := t.Params.NodeID
	if _, found := store.NodeByID(nodeID); !found {
		return prereq(fmt.Sprintf("node %s not found", nodeID))
	}
	class := t.Params.ExpectedClass

	actions := obtypes.ValidationActions(nodeID, primitiveOBClass(class))
	return ok(fmt.Sprintf("Queued property validations for node %s of class %s", nodeID, class), actions...)
}
