package primitive

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"
	ld "github.com/piprate/json-gold/ld"
)

var (
	blankNodeIDRegex    = regexp.MustCompile(`^_:b\d+$`)
	urnUUIDRegex        = regexp.MustCompile(`^urn:uuid:(.+)$`)
	dataURIRegex        = regexp.MustCompile(`(?i)^(?P<scheme>data):(?P<mimetype>[^,]*?)?(?P<encoding>;base64)?,(?P<data>.*)$`)
	emailRegex          = regexp.MustCompile(`^[^@]+@[^@]+$`)
	md5HashRegex        = regexp.MustCompile(`^md5\$[0-9a-fA-F]{32}$`)
	sha256HashRegex     = regexp.MustCompile(`^sha256\$[0-9a-fA-F]{64}$`)
	datetimeTZSuffixRgx = regexp.MustCompile(`.*[+-](?:\d{4}|\d{2}|\d{2}:\d{2})$`)
)

// openBadgesContextV2 is a working subset of the Open Badges v2 JSON-LD
// context, sufficient to expand every RDF_TYPE term this engine tests
// (the OBClasses enumeration plus the schema.org terms used as type
// defaults) to an absolute IRI without any network access.
var openBadgesContextV2 = map[string]any{
	"id":   "@id",
	"type": "@type",
	"obi":  "https://w3id.org/openbadges#",
	"extensions": "https://w3id.org/openbadges/extensions#",
	"schema":     "http://schema.org/",

	"Assertion":                   "obi:Assertion",
	"BadgeClass":                  "obi:BadgeClass",
	"Profile":                     "obi:Profile",
	"Issuer":                      "obi:Issuer",
	"AlignmentObject":             "obi:AlignmentObject",
	"Criteria":                    "obi:Criteria",
	"CryptographicKey":            "obi:CryptographicKey",
	"Extension":                   "obi:Extension",
	"Evidence":                    "obi:Evidence",
	"IdentityObject":              "obi:IdentityObject",
	"Image":                       "obi:Image",
	"RevocationList":              "obi:RevocationList",
	"VerificationObject":          "obi:VerificationObject",
	"VerificationObjectAssertion": "obi:VerificationObject",
	"VerificationObjectIssuer":    "obi:VerificationObject",
	"HostedBadge":                 "obi:HostedBadge",
	"SignedBadge":                 "obi:SignedBadge",
	"email":                       "obi:identityTypeEmail",
	"url":                         "obi:identityTypeUrl",
	"telephone":                   "obi:identityTypeTelephone",
}

// IsValid dispatches to the primitive validator for the given value
// type (spec.md §4.1). ID has no case here and yields false:
// VALIDATE_PROPERTY's ID branch checks ID values as IRIs itself. EMAIL
// is handled here, although IdentityObject dependency checks apply
// their own email pattern.
func IsValid(t ValueType, value any) bool {
	switch t {
	case BOOLEAN:
		return validateBoolean(value)
	case DataURI:
		return validateDataURI(value)
	case DataURIOrURL:
		return validateURL(value) || validateDataURI(value)
	case DATETIME:
		return validateDatetime(value)
	case IdentityHash:
		return validateIdentityHash(value)
	case IRI:
		return validateIRI(value)
	case MarkdownText:
		return validateMarkdownText(value)
	case RDFType:
		return validateRDFType(value)
	case TEXT:
		return validateText(value)
	case URL:
		return validateURL(value)
	case EMAIL:
		return validateEmail(value)
	default:
		return false
	}
}

func validateBoolean(value any) bool {
	_, ok := value.(bool)
	return ok
}

func asString(value any) (string, bool) {
	s, ok := value.(string)
	return s, ok
}

func validateText(value any) bool {
	_, ok := asString(value)
	return ok
}

// MARKDOWN_TEXT is "is a string" until a real markdown check exists —
// the Python source's _validate_markdown_text returns the bound method
// instead of calling it, a known source bug spec.md directs us not to
// reproduce (spec.md §9).
func validateMarkdownText(value any) bool {
	return validateText(value)
}

func validateEmail(value any) bool {
	s, ok := asString(value)
	return ok && emailRegex.MatchString(s)
}

// validateIRI accepts an http(s) URL, a blank node id (_:b\d+), or a
// urn:uuid:<uuid> IRI.
func validateIRI(value any) bool {
	s, ok := asString(value)
	if !ok || s == "" {
		return false
	}
	if blankNodeIDRegex.MatchString(s) {
		return true
	}
	if m := urnUUIDRegex.FindStringSubmatch(s); m != nil {
		_, err := uuid.Parse(m[1])
		return err == nil
	}
	return validateURL(value)
}

func validateURL(value any) bool {
	s, ok := asString(value)
	if !ok || s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func validateDataURI(value any) bool {
	s, ok := asString(value)
	if !ok || s == "" {
		return false
	}
	m := dataURIRegex.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Scheme, "data")
}

func validateDatetime(value any) bool {
	s, ok := asString(value)
	if !ok || s == "" {
		return false
	}
	hasTZSuffix := strings.HasSuffix(s, "Z") || datetimeTZSuffixRgx.MatchString(s)
	if !hasTZSuffix {
		return false
	}
	_, err := parseISO8601(s)
	return err == nil
}

func validateIdentityHash(value any) bool {
	_, ok := asString(value)
	return ok
}

// IsHashedIdentityHash reports whether value matches one of the two
// known hashed-identity encodings.
func IsHashedIdentityHash(value string) bool {
	return md5HashRegex.MatchString(value) || sha256HashRegex.MatchString(value)
}

// validateRDFType checks that value is a string whose JSON-LD expansion
// in the Open Badges v2 context yields an absolute IRI (spec.md §4.1).
func validateRDFType(value any) bool {
	s, ok := asString(value)
	if !ok {
		return false
	}
	doc := map[string]any{
		"@context": openBadgesContextV2,
		"type":     s,
	}
	proc := ld.NewJsonLdProcessor()
	opts := ld.NewJsonLdOptions("")
	expanded, err := proc.Expand(doc, opts)
	if err != nil {
		return false
	}
	if len(expanded) == 0 {
		return false
	}
	top, ok := expanded[0].(map[string]any)
	if !ok {
		return false
	}
	types, ok := top["@type"].([]any)
	if !ok || len(types) == 0 {
		return false
	}
	iri, ok := types[0].(string)
	if !ok {
		return false
	}
	return validateIRI(iri)
}
