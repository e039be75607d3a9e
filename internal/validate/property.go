package validate

import (
	"fmt"

	"github.com/mgylling/badgecheck/internal/graph"
	"github.com/mgylling/badgecheck/internal/primitive"
	"github.com/mgylling/badgecheck/internal/report"
	"github.com/mgylling/badgecheck/internal/task"
)

func nodeClassLabel(p task.Params) string {
	if p.NodeClass != "" {
		return p.NodeClass
	}
	return "unknown type node"
}

// ValidateProperty checks presence and data type of a single property
// expected to be a primitive Open Badges type or an ID (spec.md §4.4).
func ValidateProperty(store graph.Store, t task.Task) (Outcome, error) {
	p := t.Params
	node, found := store.NodeByID(p.NodeID)
	if !found {
		return prereq(fmt.Sprintf("node %s not found", p.NodeID))
	}
	class := nodeClassLabel(p)

	rawValue, present := node[p.PropName]
	if !present {
		if p.Required {
			return fail(fmt.Sprintf("Required property %s not present in %s %s", p.PropName, class, p.NodeID))
		}
		return ok(fmt.Sprintf("Optional property %s not present in %s %s", p.PropName, class, p.NodeID))
	}

	values := graph.ListOf(rawValue)
	if isEmptyOrNullList(values) {
		if p.Required {
			return fail(fmt.Sprintf("Required property %s value %s is not acceptable in %s %s",
				p.PropName, report.Abbreviate(rawValue), class, p.NodeID))
		}
		return ok(fmt.Sprintf("Optional property %s is null in %s %s", p.PropName, class, p.NodeID))
	}
	if !p.Many && len(values) > 1 {
		return fail(fmt.Sprintf("Property %s in %s %s has more than the single allowed value.", p.PropName, class, p.NodeID))
	}

	var actions []task.Action
	if p.PropType != primitive.ID {
		for _, v := range values {
			if !primitive.IsValid(p.PropType, v) {
				return fail(fmt.Sprintf("%s property %s value %s not valid in %s %s",
					p.PropType, p.PropName, report.Abbreviate(v), class, p.NodeID))
			}
		}
	} else {
		for _, v := range values {
			if !primitive.IsValid(primitive.IRI, v) {
				return fail(fmt.Sprintf("ID-type property %s had value `%s` not in IRI format in %s.",
					p.PropName, report.Abbreviate(v), p.NodeID))
			}
			s, _ := v.(string)

			if p.Fetch {
				actions = append(actions, task.Add(task.FetchHTTPNode, task.Params{URL: s, ExpectedClass: p.ExpectedClass}))
				continue
			}

			if _, targetFound := store.NodeByID(s); targetFound {
				actions = append(actions, task.Add(task.ValidateExpectedNodeClass, task.Params{
					NodeID: s, ExpectedClass: p.ExpectedClass,
				}))
				continue
			}
			if p.AllowRemoteURL && primitive.IsValid(primitive.URL, v) {
				continue
			}
			return fail(fmt.Sprintf(
				"Node %s has %s property value `%s` that appears not to be in URI format or did not correspond to a known local node.",
				p.NodeID, p.PropName, report.Abbreviate(v)))
		}
	}

	return ok(fmt.Sprintf("%s property %s value %s valid in %s %s",
		p.PropType, p.PropName, report.Abbreviate(rawValue), class, p.NodeID), actions...)
}

func isEmptyOrNullList(values []any) bool {
	if len(values) == 0 {
		return true
	}
	for _, v := range values {
		if v != nil {
			return false
		}
	}
	return true
}
