package validate

import (
	"fmt"
	"regexp"

	"github.com/mgylling/badgecheck/internal/graph"
	"github.com/mgylling/badgecheck/internal/primitive"
	"github.com/mgylling/badgecheck/internal/report"
	"github.com/mgylling/badgecheck/internal/task"
)

var emailLikeRegex = regexp.MustCompile(`^[^@]+@[^@]+$`)

// IdentityObjectPropertyDependencies cross-checks an IdentityObject's
// hashed/identity/type fields (spec.md §4.8).
func IdentityObjectPropertyDependencies(store graph.Store, t task.Task) (Outcome, error) {
	nodeID := t.Params.NodeID
	node, found := store.NodeByID(nodeID)
	if !found {
		return prereq(fmt.Sprintf("node %s not found", nodeID))
	}

	identity, _ := node["identity"].(string)
	hashed, _ := node["hashed"].(bool)
	isHashed := primitive.IsHashedIdentityHash(identity)
	isEmail := emailLikeRegex.MatchString(identity)

	switch {
	case hashed && !isHashed:
		return fail(fmt.Sprintf("Identity %s must match known hash style if hashed is true", report.Abbreviate(identity)))
	case isHashed && !hashed:
		return fail(fmt.Sprintf("Identity %s must not be hashed if hashed is false", report.Abbreviate(identity)))
	}

	// type is treated consistently as a list (spec.md §9: the source's
	// 'email' in node.get('type') substring bug is not reproduced).
	if !hashed && containsString(node.Types(), "email") && !isEmail {
		return fail("Email type identity must match email format.")
	}

	return ok("IdentityObject passes validation rules.")
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// CriteriaPropertyDependencies requires a narrative on blank-node
// Criteria (spec.md §4.8).
func CriteriaPropertyDependencies(store graph.Store, t task.Task) (Outcome, error) {
	nodeID := t.Params.NodeID
	node, found := store.NodeByID(nodeID)
	if !found {
		return prereq(fmt.Sprintf("node %s not found", nodeID))
	}

	isBlank := graph.IsBlankNodeID(nodeID)
	narrative, hasNarrative := node["narrative"]
	hasNarrative = hasNarrative && narrative != nil && narrative != ""

	if isBlank && !hasNarrative {
		return fail(fmt.Sprintf("Criteria node %s has no narrative. Either external id or narrative is required.", nodeID))
	}
	if isBlank {
		return ok(fmt.Sprintf("Criteria node %s is a narrative-based piece of evidence.", nodeID))
	}
	if hasNarrative {
		return ok(fmt.Sprintf("Criteria node %s has a URL and narrative.", nodeID))
	}
	return ok(fmt.Sprintf("Criteria node %s has a URL.", nodeID))
}

// AssertionVerificationDependencies queues a HOSTED_ID_IN_VERIFICATION_SCOPE
// check for hosted assertions (spec.md §4.8).
func AssertionVerificationDependencies(store graph.Store, t task.Task) (Outcome, error) {
	assertionID := t.Params.NodeID
	assertion, found := store.NodeByID(assertionID)
	if !found {
		return prereq(fmt.Sprintf("assertion %s not found", assertionID))
	}
	verificationID, _ := assertion["verification"].(string)
	verification, found := store.NodeByID(verificationID)
	if !found {
		return prereq(fmt.Sprintf("verification node %s not found", verificationID))
	}

	verificationType, _ := verification["type"].(string)
	var actions []task.Action
	if verificationType == "HostedBadge" {
		actions = append(actions, task.Add(task.HostedIDInVerificationScope, task.Params{NodeID: assertionID}))
	}

	return ok(fmt.Sprintf("%s Assertion %s verification dependencies noted.", verificationType, verificationID), actions...)
}

// AssertionTimestampChecks validates issuedOn/expires against the
// current time (spec.md §4.8).
func AssertionTimestampChecks(store graph.Store, t task.Task) (Outcome, error) {
	return assertionTimestampChecks(store, t, primitive.ParseDatetime, nowUTC)
}

func assertionTimestampChecks(store graph.Store, t task.Task, parse parseDatetimeFunc, now nowFunc) (Outcome, error) {
	nodeID := t.Params.NodeID
	assertion, found := store.NodeByID(nodeID)
	if !found {
		return prereq(fmt.Sprintf("assertion %s not found", nodeID))
	}
	issuedOnRaw, hasIssuedOn := assertion["issuedOn"].(string)
	if !hasIssuedOn {
		return prereq(fmt.Sprintf("assertion %s has no issuedOn", nodeID))
	}
	issuedOn, err := parse(issuedOnRaw)
	if err != nil {
		return prereq(fmt.Sprintf("assertion %s issuedOn is unparseable: %v", nodeID, err))
	}

	current := now()
	if issuedOn.After(current) {
		return fail(fmt.Sprintf("Assertion %s has issue date %s in the future.", nodeID, issuedOn))
	}

	if expiresRaw, hasExpires := assertion["expires"].(string); hasExpires && expiresRaw != "" {
		expires, err := parse(expiresRaw)
		if err != nil {
			return prereq(fmt.Sprintf("assertion %s expires is unparseable: %v", nodeID, err))
		}
		if expires.Before(issuedOn) {
			return fail(fmt.Sprintf("Assertion %s expiration is prior to issue date.", nodeID))
		}
		if expires.Before(current) {
			return fail(fmt.Sprintf("Assertion %s expired on %s", nodeID, expiresRaw))
		}
	}

	return ok(fmt.Sprintf("Assertion %s was issued and has not expired.", nodeID))
}

// IssuerPropertyDependencies is a placeholder hook sequencing downstream
// HOSTED_ID checks; it always succeeds (spec.md §4.8).
func IssuerPropertyDependencies(store graph.Store, t task.Task) (Outcome, error) {
	return ok("No issuer property dependencies to check.")
}
