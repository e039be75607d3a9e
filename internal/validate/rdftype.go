package validate

import (
	"fmt"

	"github.com/mgylling/badgecheck/internal/graph"
	"github.com/mgylling/badgecheck/internal/report"
	"github.com/mgylling/badgecheck/internal/task"
)

// ValidateRDFTypeProperty runs ValidateProperty first, then applies the
// 'type' defaulting and must-contain-one checks of spec.md §4.5.
func ValidateRDFTypeProperty(store graph.Store, t task.Task) (Outcome, error) {
	propOutcome, err := ValidateProperty(store, t)
	if err != nil || !propOutcome.Success {
		return propOutcome, err
	}

	p := t.Params
	node, found := store.NodeByID(p.NodeID)
	if !found {
		return prereq(fmt.Sprintf("node %s not found", p.NodeID))
	}

	rawType, present := node["type"]
	if !present && p.Default != "" {
		return ok(propOutcome.Result, task.Patch(p.NodeID, map[string]any{"type": p.Default}))
	}

	if p.MustContainOne != nil {
		values := graph.ListOfStrings(rawType)
		if !intersects(values, p.MustContainOne) {
			return fail(fmt.Sprintf("Node %s of type %s does not have type among allowed values (%s)",
				p.NodeID, report.Abbreviate(rawType), report.Abbreviate(p.MustContainOne)))
		}
	}

	return propOutcome, nil
}

func intersects(values, allowed []string) bool {
	set := make(map[string]bool, len(allowed))
	for _, a := range allowed {
		set[a] = true
	}
	for _, v := range values {
		if set[v] {
			return true
		}
	}
	return false
}
