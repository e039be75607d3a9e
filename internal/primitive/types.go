// Package primitive implements the pure predicates over Open Badges v2
// scalar value types (spec.md §4.1) plus the closed OBClasses/ValueTypes
// enumerations (spec.md §3) that the rest of the engine dispatches on.
package primitive

// ValueType is one of the closed set of Open Badges v2 scalar types.
type ValueType string

const (
	BOOLEAN        ValueType = "BOOLEAN"
	DataURI        ValueType = "DATA_URI"
	DataURIOrURL   ValueType = "DATA_URI_OR_URL"
	DATETIME       ValueType = "DATETIME"
	EMAIL          ValueType = "EMAIL"
	ID             ValueType = "ID"
	IdentityHash   ValueType = "IDENTITY_HASH"
	IRI            ValueType = "IRI"
	MarkdownText   ValueType = "MARKDOWN_TEXT"
	RDFType        ValueType = "RDF_TYPE"
	TEXT           ValueType = "TEXT"
	URL            ValueType = "URL"
)

// Primitives is the set of value types validated directly by
// VALIDATE_PROPERTY. RDF_TYPE is not in it (it gets its own task kind),
// nor is EMAIL (only used for IdentityObject's cross-field check), nor
// are DATA_URI and DATA_URI_OR_URL: a property spec of one of those two
// types produces no validation task.
var Primitives = map[ValueType]bool{
	BOOLEAN:      true,
	DATETIME:     true,
	ID:           true,
	IdentityHash: true,
	IRI:          true,
	MarkdownText: true,
	TEXT:         true,
	URL:          true,
}

// OBClass is one of the closed set of expected Open Badges class names.
type OBClass string

const (
	AlignmentObject             OBClass = "AlignmentObject"
	Assertion                   OBClass = "Assertion"
	BadgeClass                  OBClass = "BadgeClass"
	Criteria                    OBClass = "Criteria"
	CryptographicKey            OBClass = "CryptographicKey"
	Extension                   OBClass = "Extension"
	Evidence                    OBClass = "Evidence"
	IdentityObject              OBClass = "IdentityObject"
	Image                       OBClass = "Image"
	Profile                     OBClass = "Profile"
	RevocationList              OBClass = "RevocationList"
	VerificationObject          OBClass = "VerificationObject"
	VerificationObjectAssertion OBClass = "VerificationObjectAssertion"
	VerificationObjectIssuer    OBClass = "VerificationObjectIssuer"
)

// AllClasses lists the OBClasses DetectAndValidateNodeClass can detect,
// in the order it scans when matching a node's declared type against a
// known class name (spec.md §4.6). VerificationObjectAssertion and
// VerificationObjectIssuer are not in it; they are only validated when a
// property names them as its expected class.
var AllClasses = []OBClass{
	AlignmentObject, Assertion, BadgeClass, Criteria, CryptographicKey,
	Extension, Evidence, IdentityObject, Image, Profile, RevocationList,
	VerificationObject,
}
