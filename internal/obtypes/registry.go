// Package obtypes implements the declarative class validator registry
// (spec.md §4.3): the per-class list of property and task-dependency
// specs that drives task generation, and the canonical tables of §6.3,
// reproduced verbatim.
package obtypes

import (
	"github.com/mgylling/badgecheck/internal/primitive"
	"github.com/mgylling/badgecheck/internal/task"
)

// ValidatorSpec is either a property spec (PropName set) or a task spec
// (TaskType set), matching the two literal shapes spec.md §4.3 uses in
// the ClassValidators tables.
type ValidatorSpec struct {
	PropName       string
	PropType       primitive.ValueType
	Required       bool
	Many           bool
	MustContainOne []string
	Default        string
	ExpectedClass  primitive.OBClass
	Fetch          bool
	AllowRemoteURL bool

	TaskType      task.Kind
	Prerequisites task.Kind
}

func (v ValidatorSpec) isTaskSpec() bool {
	return v.TaskType != ""
}

// registry is the canonical per-class validator table of spec.md §6.3,
// reproduced bit for bit.
var registry = map[primitive.OBClass][]ValidatorSpec{
	primitive.Assertion: {
		{PropName: "id", PropType: primitive.IRI, Required: true},
		{PropName: "type", PropType: primitive.RDFType, Required: true, Many: true, MustContainOne: []string{"Assertion"}},
		{PropName: "recipient", PropType: primitive.ID, ExpectedClass: primitive.IdentityObject, Required: true},
		{PropName: "badge", PropType: primitive.ID, ExpectedClass: primitive.BadgeClass, Fetch: true, Required: true},
		{PropName: "verification", PropType: primitive.ID, ExpectedClass: primitive.VerificationObjectAssertion, Required: true},
		{PropName: "issuedOn", PropType: primitive.DATETIME, Required: true},
		{PropName: "expires", PropType: primitive.DATETIME, Required: false},
		{PropName: "image", PropType: primitive.URL, Required: false},
		{PropName: "narrative", PropType: primitive.MarkdownText, Required: false},
		{PropName: "evidence", PropType: primitive.ID, AllowRemoteURL: true, ExpectedClass: primitive.Evidence, Many: true, Fetch: false, Required: false},
		{TaskType: task.AssertionVerificationDependencies, Prerequisites: task.IssuerPropertyDependencies},
		{TaskType: task.AssertionTimestampChecks},
	},
	primitive.BadgeClass: {
		{PropName: "id", PropType: primitive.IRI, Required: true},
		{PropName: "type", PropType: primitive.RDFType, Required: true, Many: true, MustContainOne: []string{"BadgeClass"}},
		{PropName: "issuer", PropType: primitive.ID, ExpectedClass: primitive.Profile, Fetch: true, Required: true},
		{PropName: "name", PropType: primitive.TEXT, Required: true},
		{PropName: "description", PropType: primitive.TEXT, Required: true},
		{PropName: "image", PropType: primitive.DataURIOrURL, Required: true},
		{PropName: "criteria", PropType: primitive.ID, ExpectedClass: primitive.Criteria, Fetch: false, Required: true, AllowRemoteURL: true},
		{PropName: "alignment", PropType: primitive.ID, ExpectedClass: primitive.AlignmentObject, Many: true, Fetch: false, Required: false},
		{PropName: "tags", PropType: primitive.TEXT, Many: true, Required: false},
	},
	primitive.Profile: {
		{PropName: "id", PropType: primitive.IRI, Required: true},
		{PropName: "type", PropType: primitive.RDFType, Required: true, Many: true, MustContainOne: []string{"Issuer", "Profile"}},
		{PropName: "name", PropType: primitive.TEXT, Required: true},
		{PropName: "description", PropType: primitive.TEXT, Required: false},
		{PropName: "image", PropType: primitive.DataURIOrURL, Required: false},
		{PropName: "url", PropType: primitive.URL, Required: true},
		{PropName: "email", PropType: primitive.TEXT, Required: true},
		{PropName: "telephone", PropType: primitive.TEXT, Required: false},
		{PropName: "verification", PropType: primitive.ID, ExpectedClass: primitive.VerificationObjectIssuer, Fetch: false, Required: false},
		{TaskType: task.IssuerPropertyDependencies},
	},
	primitive.AlignmentObject: {
		{PropName: "type", PropType: primitive.RDFType, Many: true, Required: false, Default: string(primitive.AlignmentObject)},
		{PropName: "targetName", PropType: primitive.TEXT, Required: true},
		{PropName: "targetUrl", PropType: primitive.URL, Required: true},
		{PropName: "description", PropType: primitive.TEXT, Required: false},
		{PropName: "targetFramework", PropType: primitive.TEXT, Required: false},
		{PropName: "targetCode", PropType: primitive.TEXT, Required: false},
	},
	primitive.Criteria: {
		{PropName: "type", PropType: primitive.RDFType, Many: true, Required: false, Default: string(primitive.Criteria)},
		{PropName: "id", PropType: primitive.IRI, Required: false},
		{PropName: "narrative", PropType: primitive.MarkdownText, Required: false},
		{TaskType: task.CriteriaPropertyDependencies},
	},
	primitive.IdentityObject: {
		{PropName: "type", PropType: primitive.RDFType, Required: true, Many: false, MustContainOne: []string{"id", "email", "url", "telephone"}},
		{PropName: "identity", PropType: primitive.IdentityHash, Required: true},
		{PropName: "hashed", PropType: primitive.BOOLEAN, Required: true},
		{PropName: "salt", PropType: primitive.TEXT, Required: false},
		{TaskType: task.IdentityObjectPropertyDependencies},
	},
	primitive.Evidence: {
		{PropName: "type", PropType: primitive.RDFType, Many: true, Required: false, Default: "Evidence"},
		{PropName: "id", PropType: primitive.IRI, Required: false},
		{PropName: "narrative", PropType: primitive.MarkdownText, Required: false},
		{PropName: "name", PropType: primitive.TEXT, Required: false},
		{PropName: "description", PropType: primitive.TEXT, Required: false},
		{PropName: "genre", PropType: primitive.TEXT, Required: false},
		{PropName: "audience", PropType: primitive.TEXT, Required: false},
	},
	primitive.Image: {
		{PropName: "type", PropType: primitive.RDFType, Many: true, Required: false, Default: "schema:ImageObject"},
		{PropName: "id", PropType: primitive.DataURIOrURL, Required: true},
		{PropName: "caption", PropType: primitive.TEXT, Required: false},
		{PropName: "author", PropType: primitive.IRI, Required: false},
	},
	primitive.VerificationObjectAssertion: {
		{PropName: "type", PropType: primitive.RDFType, Required: true, Many: false, MustContainOne: []string{"HostedBadge", "SignedBadge"}},
	},
	primitive.VerificationObjectIssuer: {
		{PropName: "type", PropType: primitive.RDFType, Many: true, Required: false, Default: "VerificationObject"},
		{PropName: "verificationProperty", PropType: primitive.IRI, Required: false},
		{PropName: "startsWith", PropType: primitive.URL, Required: false},
		{PropName: "allowedOrigins", PropType: primitive.TEXT, Required: false, Many: true},
	},
}

// Specs returns the validator specs for class, or nil if class is
// empty/unrecognized (mirroring the source's tolerance of an
// undetected node_class: get_validation_actions on an unknown class
// simply yields no actions).
func Specs(class primitive.OBClass) []ValidatorSpec {
	return registry[class]
}

// ValidationActions returns the ADD_TASK actions for node_id under the
// given node_class, per spec.md §4.3's dispatch rule: RDF_TYPE specs
// become VALIDATE_RDF_TYPE_PROPERTY, other primitives/ID become
// VALIDATE_PROPERTY, and task specs become their named task kind. A
// property spec whose type is outside primitive.Primitives (DATA_URI,
// DATA_URI_OR_URL) yields no action.
func ValidationActions(nodeID string, class primitive.OBClass) []task.Action {
	var actions []task.Action
	for _, v := range Specs(class) {
		switch {
		case v.PropType == primitive.RDFType:
			actions = append(actions, task.Add(task.ValidateRDFTypeProperty, propParams(nodeID, class, v)))
		case primitive.Primitives[v.PropType] || v.PropType == primitive.ID:
			actions = append(actions, task.Add(task.ValidateProperty, propParams(nodeID, class, v)))
		case v.isTaskSpec():
			actions = append(actions, task.Add(v.TaskType, task.Params{
				NodeID:        nodeID,
				NodeClass:     string(class),
				Prerequisites: v.Prerequisites,
			}))
		}
	}
	return actions
}

func propParams(nodeID string, class primitive.OBClass, v ValidatorSpec) task.Params {
	return task.Params{
		NodeID:         nodeID,
		NodeClass:      string(class),
		PropName:       v.PropName,
		PropType:       v.PropType,
		Required:       v.Required,
		Many:           v.Many,
		MustContainOne: v.MustContainOne,
		Default:        v.Default,
		ExpectedClass:  string(v.ExpectedClass),
		Fetch:          v.Fetch,
		AllowRemoteURL: v.AllowRemoteURL,
	}
}

// DetectClass returns the first AllClasses entry equal to the node's
// declared (scalar) type string, or "" if none match (spec.md §4.6).
func DetectClass(declaredType string) primitive.OBClass {
	for _, c := range primitive.AllClasses {
		if string(c) == declaredType {
			return c
		}
	}
	return ""
}
