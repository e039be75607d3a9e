package engine

import (
	"fmt"

	"github.com/mgylling/badgecheck/internal/graph"
	"github.com/mgylling/badgecheck/internal/task"
)

// LoadDocument flattens an input JSON-LD document into a Store and
// seeds the initial task (spec.md §4.10, "Initial seed"): every
// distinct, identified node reachable from the top-level document is
// registered by id; the top-level node itself is the root, and a
// DETECT_AND_VALIDATE_NODE_CLASS task is queued against it.
func LoadDocument(doc map[string]any) (State, error) {
	rootID, _ := doc["id"].(string)
	if rootID == "" {
		return State{}, fmt.Errorf("input document has no top-level id")
	}

	var nodes []graph.Node
	flatten(doc, &nodes)

	store := graph.NewStore(nodes)
	queue := task.Reduce(nil, task.Add(task.DetectAndValidateNodeClass, task.Params{NodeID: rootID}))

	return State{Store: store, Queue: queue}, nil
}

// flatten walks v, collecting every map-shaped value that carries an
// "id" into nodes. Non-identified nested objects are left embedded in
// their parent (addressed, when needed, through NodePath rather than
// the Store's by-id index).
func flatten(v any, nodes *[]graph.Node) {
	switch t := v.(type) {
	case map[string]any:
		if id, ok := t["id"].(string); ok && id != "" {
			*nodes = append(*nodes, graph.Node(t))
		}
		for _, child := range t {
			flatten(child, nodes)
		}
	case []any:
		for _, child := range t {
			flatten(child, nodes)
		}
	}
}
