package validate

import (
	"testing"

	"github.com/mgylling/badgecheck/internal/graph"
	"github.com/mgylling/badgecheck/internal/primitive"
	"github.com/mgylling/badgecheck/internal/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePropertyRequiredMissing(t *testing.T) {
	store := graph.NewStore([]graph.Node{
		{"id": "http://e/bc1", "type": "BadgeClass"},
	})
	outcome, err := ValidateProperty(store, task.Task{Params: task.Params{
		NodeID: "http://e/bc1", PropName: "name", PropType: primitive.TEXT, Required: true,
	}})
	require.NoError(t, err)
	assert.False(t, outcome.Success)
	assert.Contains(t, outcome.Result, "Required property name not present")
}

func TestValidatePropertyOptionalMissing(t *testing.T) {
	store := graph.NewStore([]graph.Node{{"id": "n1"}})
	outcome, err := ValidateProperty(store, task.Task{Params: task.Params{
		NodeID: "n1", PropName: "expires", PropType: primitive.DATETIME, Required: false,
	}})
	require.NoError(t, err)
	assert.True(t, outcome.Success)
}

func TestValidatePropertyTooManyValues(t *testing.T) {
	store := graph.NewStore([]graph.Node{{"id": "n1", "name": []any{"a", "b"}}})
	outcome, err := ValidateProperty(store, task.Task{Params: task.Params{
		NodeID: "n1", PropName: "name", PropType: primitive.TEXT, Required: true, Many: false,
	}})
	require.NoError(t, err)
	assert.False(t, outcome.Success)
	assert.Contains(t, outcome.Result, "more than the single allowed value")
}

func TestValidatePropertyOptionalNonManyAllNullListSucceeds(t *testing.T) {
	store := graph.NewStore([]graph.Node{{"id": "http://e/p1", "telephone": []any{nil, nil}}})
	outcome, err := ValidateProperty(store, task.Task{Params: task.Params{
		NodeID: "http://e/p1", PropName: "telephone", PropType: primitive.TEXT, Required: false, Many: false,
	}})
	require.NoError(t, err)
	assert.True(t, outcome.Success)
	assert.Contains(t, outcome.Result, "is null")
}

func TestValidatePropertyIDLocalReference(t *testing.T) {
	store := graph.NewStore([]graph.Node{
		{"id": "http://e/a1", "recipient": "_:b0"},
		{"id": "_:b0", "type": "email"},
	})
	outcome, err := ValidateProperty(store, task.Task{Params: task.Params{
		NodeID: "http://e/a1", PropName: "recipient", PropType: primitive.ID,
		Required: true, ExpectedClass: "IdentityObject",
	}})
	require.NoError(t, err)
	require.True(t, outcome.Success)
	require.Len(t, outcome.Actions, 1)
	assert.Equal(t, task.ValidateExpectedNodeClass, outcome.Actions[0].Kind)
	assert.Equal(t, "_:b0", outcome.Actions[0].Params.NodeID)
}

func TestValidatePropertyIDFetch(t *testing.T) {
	store := graph.NewStore([]graph.Node{{"id": "http://e/a1", "badge": "http://e/bc1"}})
	outcome, err := ValidateProperty(store, task.Task{Params: task.Params{
		NodeID: "http://e/a1", PropName: "badge", PropType: primitive.ID,
		Required: true, Fetch: true, ExpectedClass: "BadgeClass",
	}})
	require.NoError(t, err)
	require.True(t, outcome.Success)
	require.Len(t, outcome.Actions, 1)
	assert.Equal(t, task.FetchHTTPNode, outcome.Actions[0].Kind)
	assert.Equal(t, "http://e/bc1", outcome.Actions[0].Params.URL)
}

func TestValidatePropertyIDAllowRemoteURL(t *testing.T) {
	store := graph.NewStore([]graph.Node{{"id": "http://e/a1", "evidence": "http://remote.example/ev1"}})
	outcome, err := ValidateProperty(store, task.Task{Params: task.Params{
		NodeID: "http://e/a1", PropName: "evidence", PropType: primitive.ID,
		AllowRemoteURL: true, ExpectedClass: "Evidence",
	}})
	require.NoError(t, err)
	assert.True(t, outcome.Success)
	assert.Empty(t, outcome.Actions)
}

func TestValidatePropertyIDUnresolvable(t *testing.T) {
	store := graph.NewStore([]graph.Node{{"id": "http://e/a1", "evidence": "not-an-iri-or-url"}})
	outcome, err := ValidateProperty(store, task.Task{Params: task.Params{
		NodeID: "http://e/a1", PropName: "evidence", PropType: primitive.ID,
	}})
	require.NoError(t, err)
	assert.False(t, outcome.Success)
	assert.Contains(t, outcome.Result, "not in IRI format")
}

func TestValidatePropertyMissingNodeIsPrereqError(t *testing.T) {
	store := graph.NewStore(nil)
	_, err := ValidateProperty(store, task.Task{Params: task.Params{NodeID: "missing", PropName: "x"}})
	require.Error(t, err)
	var prereqErr *PrereqError
	assert.ErrorAs(t, err, &prereqErr)
}

func TestValidateRDFTypePropertyAppliesDefault(t *testing.T) {
	store := graph.NewStore([]graph.Node{{"id": "_:b5", "narrative": "do the thing"}})
	outcome, err := ValidateRDFTypeProperty(store, task.Task{Params: task.Params{
		NodeID: "_:b5", PropName: "type", PropType: primitive.RDFType,
		Many: true, Default: "Criteria",
	}})
	require.NoError(t, err)
	require.True(t, outcome.Success)
	require.Len(t, outcome.Actions, 1)
	assert.Equal(t, task.PatchNode, outcome.Actions[0].Type)
	assert.Equal(t, "Criteria", outcome.Actions[0].Patch["type"])
}

func TestValidateRDFTypePropertyMustContainOneFails(t *testing.T) {
	store := graph.NewStore([]graph.Node{{"id": "http://e/bc1", "type": "Assertion"}})
	outcome, err := ValidateRDFTypeProperty(store, task.Task{Params: task.Params{
		NodeID: "http://e/bc1", PropName: "type", PropType: primitive.RDFType,
		Required: true, Many: true, MustContainOne: []string{"BadgeClass"},
	}})
	require.NoError(t, err)
	assert.False(t, outcome.Success)
	assert.Contains(t, outcome.Result, "does not have type among allowed values")
}
