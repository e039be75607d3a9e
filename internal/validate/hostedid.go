package validate

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/mgylling/badgecheck/internal/graph"
	"github.com/mgylling/badgecheck/internal/task"
)

// HostedIDInVerificationScope checks a hosted Assertion's own id against
// its issuer's verification scope (spec.md §6.3's VerificationObjectIssuer
// startsWith/allowedOrigins fields, §8 scenario S1). The distilled spec
// names the task but leaves its body an open question; this follows the
// Open Badges hosted-verification convention those two fields exist for:
// an unconfigured scope imposes no restriction, a configured one must
// match.
func HostedIDInVerificationScope(store graph.Store, t task.Task) (Outcome, error) {
	assertionID := t.Params.NodeID
	if _, found := store.NodeByID(assertionID); !found {
		return prereq(fmt.Sprintf("assertion %s not found", assertionID))
	}
	assertion, _ := store.NodeByID(assertionID)

	verification, scoped := issuerVerificationScope(store, assertion)
	if !scoped {
		return ok(fmt.Sprintf("Assertion %s has no configured issuer verification scope.", assertionID))
	}

	if startsWith, _ := verification["startsWith"].(string); startsWith != "" {
		if !strings.HasPrefix(assertionID, startsWith) {
			return fail(fmt.Sprintf("Assertion %s id does not start with required scope %s", assertionID, startsWith))
		}
	}

	if rawOrigins, present := verification["allowedOrigins"]; present {
		origins := graph.ListOfStrings(rawOrigins)
		if len(origins) > 0 && !originAllowed(assertionID, origins) {
			return fail(fmt.Sprintf("Assertion %s id is not within allowedOrigins %v", assertionID, origins))
		}
	}

	return ok(fmt.Sprintf("Assertion %s id is within its issuer's verification scope.", assertionID))
}

func issuerVerificationScope(store graph.Store, assertion graph.Node) (graph.Node, bool) {
	badgeID, _ := assertion["badge"].(string)
	badge, found := store.NodeByID(badgeID)
	if !found {
		return nil, false
	}
	issuerID, _ := badge["issuer"].(string)
	issuer, found := store.NodeByID(issuerID)
	if !found {
		return nil, false
	}
	verificationID, _ := issuer["verification"].(string)
	if verificationID == "" {
		return nil, false
	}
	verification, found := store.NodeByID(verificationID)
	if !found {
		return nil, false
	}
	return verification, true
}

func originAllowed(assertionID string, origins []string) bool {
	u, err := url.Parse(assertionID)
	if err != nil {
		return false
	}
	for _, o := range origins {
		if strings.EqualFold(u.Host, o) {
			return true
		}
	}
	return false
}
