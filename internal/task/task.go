// Package task implements the Action/Task model (spec.md §3) and the
// reducer (spec.md §4.2) that is the sole mutator of queue state.
package task

import "github.com/mgylling/badgecheck/internal/primitive"

// Kind is one of the closed set of task kinds (spec.md §3).
type Kind string

const (
	DetectAndValidateNodeClass     Kind = "DETECT_AND_VALIDATE_NODE_CLASS"
	ValidateExpectedNodeClass      Kind = "VALIDATE_EXPECTED_NODE_CLASS"
	ValidateProperty               Kind = "VALIDATE_PROPERTY"
	ValidateRDFTypeProperty         Kind = "VALIDATE_RDF_TYPE_PROPERTY"
	ValidateExtensionNode           Kind = "VALIDATE_EXTENSION_NODE"
	FetchHTTPNode                   Kind = "FETCH_HTTP_NODE"
	AssertionVerificationDependencies Kind = "ASSERTION_VERIFICATION_DEPENDENCIES"
	AssertionTimestampChecks        Kind = "ASSERTION_TIMESTAMP_CHECKS"
	CriteriaPropertyDependencies     Kind = "CRITERIA_PROPERTY_DEPENDENCIES"
	IdentityObjectPropertyDependencies Kind = "IDENTITY_OBJECT_PROPERTY_DEPENDENCIES"
	IssuerPropertyDependencies       Kind = "ISSUER_PROPERTY_DEPENDENCIES"
	HostedIDInVerificationScope      Kind = "HOSTED_ID_IN_VERIFICATION_SCOPE"
)

// Params holds the kind-specific parameters a task or ADD_TASK action
// carries. Not every field is meaningful for every Kind; each handler
// reads only the fields its own kind defines, matching the class
// validator tables in spec.md §6.3.
type Params struct {
	NodeID         string
	NodeClass      string
	PropName       string
	PropType       primitive.ValueType
	Required       bool
	Many           bool
	MustContainOne []string
	Default        string
	ExpectedClass  string
	Fetch          bool
	AllowRemoteURL bool
	TypeToTest     string
	NodeJSON       string
	NodePath       string
	URL            string
	Prerequisites  Kind
}

// Task is a unit of validation work in the engine's queue. Success and
// Result are only meaningful once Complete is true.
type Task struct {
	TaskID   int
	Kind     Kind
	Params   Params
	Complete bool
	Success  bool
	Result   string
}
