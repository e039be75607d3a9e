package extension

import (
	"encoding/json"
	"fmt"

	"github.com/mgylling/badgecheck/internal/graph"
	"github.com/mgylling/badgecheck/internal/task"
	ld "github.com/piprate/json-gold/ld"
	"github.com/xeipuuv/gojsonschema"
)

// openBadgesContextV2 is the same minimal context internal/primitive
// uses for RDF_TYPE expansion, needed here so an extension's own
// context compacts against the full Open Badges vocabulary rather than
// just its own terms (extensions.py compacts against
// [OPENBADGES_CONTEXT_V2_DICT, context], not context alone).
var openBadgesContextV2 = map[string]any{
	"id":         "@id",
	"type":       "@type",
	"obi":        "https://w3id.org/openbadges#",
	"extensions": "https://w3id.org/openbadges/extensions#",
	"schema":     "http://schema.org/",
}

// ValidateExtensionNode is the VALIDATE_EXTENSION_NODE handler (spec.md
// §4.9). It resolves the target node by NodeID, or, when NodePath is
// set, by walking NodePath from the NodeID root node; it then determines
// which registered extension type(s) apply, and either fans out one
// task per type (when more than one applies) or validates directly.
func ValidateExtensionNode(reg Registry, store graph.Store, t task.Task) (Outcome, error) {
	p := t.Params

	var node graph.Node
	var nodeID string
	switch {
	case p.NodePath != "":
		n, err := store.NodeByPath(p.NodeID, p.NodePath)
		if err != nil {
			return prereq(err.Error())
		}
		node, nodeID = n, n.ID()
	case p.NodeID != "":
		n, found := store.NodeByID(p.NodeID)
		if !found {
			return prereq(fmt.Sprintf("node %s not found", p.NodeID))
		}
		node, nodeID = n, p.NodeID
	default:
		return prereq("extension task has neither node_id nor node_path")
	}

	nodeType := node.Types()

	var typesToTest []string
	if p.TypeToTest != "" {
		typesToTest = []string{p.TypeToTest}
	} else {
		typesToTest = reg.matchingTypes(nodeType)
	}

	switch {
	case len(typesToTest) == 0:
		return fail("Could not determine extension type to test")
	case len(typesToTest) > 1:
		actions := make([]task.Action, 0, len(typesToTest))
		for _, typ := range typesToTest {
			actions = append(actions, task.Add(task.ValidateExtensionNode, task.Params{
				NodeID: p.NodeID, NodePath: p.NodePath, NodeJSON: p.NodeJSON, TypeToTest: typ,
			}))
		}
		return ok(fmt.Sprintf("Multiple extension types %s discovered in node %s",
			abbreviate(typesToTest), nodeID), actions...)
	default:
		return validateSingleExtension(reg, node, typesToTest[0], p.NodeJSON)
	}
}

func validateSingleExtension(reg Registry, node graph.Node, extType, nodeJSON string) (Outcome, error) {
	def, found := reg.Lookup(extType)
	if !found {
		return prereq(fmt.Sprintf("extension type %s is not registered", extType))
	}

	var nodeData map[string]any
	if nodeJSON != "" {
		if err := json.Unmarshal([]byte(nodeJSON), &nodeData); err != nil {
			return prereq(fmt.Sprintf("node_json override is not valid JSON: %v", err))
		}
	} else {
		nodeData = map[string]any(node.Clone())
	}
	nodeData["@context"] = openBadgesContextV2

	compacted, err := compact(nodeData, def.Context)
	if err != nil {
		return prereq(fmt.Sprintf("extension %s context compaction failed: %v", extType, err))
	}

	result := gojsonschema.NewGoLoader(compacted)
	schema := gojsonschema.NewGoLoader(def.Schema)
	schemaResult, err := gojsonschema.Validate(schema, result)
	if err != nil {
		return prereq(fmt.Sprintf("extension %s schema could not be evaluated: %v", extType, err))
	}

	if !schemaResult.Valid() {
		return fail(fmt.Sprintf("Extension %s did not validate on node %s: %s",
			extType, node.ID(), firstValidationError(schemaResult)))
	}
	return ok(fmt.Sprintf("Extension %s validated on node %s", extType, node.ID()))
}

func firstValidationError(result *gojsonschema.Result) string {
	errs := result.Errors()
	if len(errs) == 0 {
		return "schema validation failed"
	}
	return errs[0].String()
}

func compact(nodeData map[string]any, extContext map[string]any) (map[string]any, error) {
	proc := ld.NewJsonLdProcessor()
	opts := ld.NewJsonLdOptions("")
	combinedContext := []any{openBadgesContextV2, extContext}
	return proc.Compact(nodeData, combinedContext, opts)
}
