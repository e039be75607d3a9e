package graph

import "fmt"

// Store is the NodeStore: the graph of JSON-LD nodes keyed by id (IRI
// or blank node identifier). Store is a value type; PatchNode and
// AddNode return a new Store rather than mutating the receiver, so the
// reducer's "state transitions are functional" invariant holds all the
// way down to the graph layer.
type Store struct {
	nodes map[string]Node
}

// NewStore builds a Store from a flat list of nodes, keyed by their id.
// A node without an id is dropped; the engine only addresses nodes that
// declare one (nodes reachable only via NodePath are addressed through
// their parent, not registered here).
func NewStore(nodes []Node) Store {
	m := make(map[string]Node, len(nodes))
	for _, n := range nodes {
		if id := n.ID(); id != "" {
			m[id] = n
		}
	}
	return Store{nodes: m}
}

// NodeByID looks up a node by id. The bool result is false if no such
// node exists; callers needing TaskPrerequisitesError semantics treat a
// false result as a missing prerequisite.
func (s Store) NodeByID(id string) (Node, bool) {
	n, ok := s.nodes[id]
	return n, ok
}

// NodeByPath resolves a NodePath rooted at rootID and returns the
// resulting Node. It errors if the root is unknown or the path does
// not terminate at a node-shaped value.
func (s Store) NodeByPath(rootID, path string) (Node, error) {
	root, ok := s.nodes[rootID]
	if !ok {
		return nil, fmt.Errorf("node %s not found", rootID)
	}
	v, err := ResolvePath(root, path)
	if err != nil {
		return nil, err
	}
	switch t := v.(type) {
	case Node:
		return t, nil
	case map[string]any:
		return Node(t), nil
	default:
		return nil, fmt.Errorf("node path %s on %s does not resolve to a node", path, rootID)
	}
}

// AddNode inserts a new node (or wholesale-replaces an existing one
// with the same id), returning a new Store. Used when a FETCH_HTTP_NODE
// collaborator retrieves a remote node that isn't in the store yet.
func (s Store) AddNode(n Node) Store {
	next := make(map[string]Node, len(s.nodes)+1)
	for k, v := range s.nodes {
		next[k] = v
	}
	next[n.ID()] = n
	return Store{nodes: next}
}

// PatchNode merges patch into the named node's properties, returning a
// new Store. It never creates a node: patching an unknown id is a no-op
// matching spec.md's "does not create nodes" invariant.
func (s Store) PatchNode(id string, patch map[string]any) Store {
	existing, ok := s.nodes[id]
	if !ok {
		return s
	}
	updated := existing.Clone()
	for k, v := range patch {
		updated[k] = v
	}
	next := make(map[string]Node, len(s.nodes))
	for k, v := range s.nodes {
		next[k] = v
	}
	next[id] = updated
	return Store{nodes: next}
}
