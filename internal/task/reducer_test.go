package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduceAddTaskAssignsSequentialIDs(t *testing.T) {
	var q Queue
	q = Reduce(q, Add(DetectAndValidateNodeClass, Params{NodeID: "a"}))
	q = Reduce(q, Add(ValidateProperty, Params{NodeID: "a", PropName: "name"}))
	q = Reduce(q, Add(ValidateProperty, Params{NodeID: "a", PropName: "description"}))

	require.Len(t, q, 3)
	assert.Equal(t, 1, q[0].TaskID)
	assert.Equal(t, 2, q[1].TaskID)
	assert.Equal(t, 3, q[2].TaskID)
}

func TestReduceAddTaskDedupesValidateProperty(t *testing.T) {
	var q Queue
	q = Reduce(q, Add(ValidateProperty, Params{NodeID: "n", PropName: "name"}))
	q = Reduce(q, Add(ValidateProperty, Params{NodeID: "n", PropName: "name"}))

	assert.Len(t, q, 1, "duplicate VALIDATE_PROPERTY for the same node_id+prop_name must be dropped")
}

func TestReduceAddTaskDedupesValidateExpectedNodeClass(t *testing.T) {
	var q Queue
	q = Reduce(q, Add(ValidateExpectedNodeClass, Params{NodeID: "n", ExpectedClass: "BadgeClass"}))
	q = Reduce(q, Add(ValidateExpectedNodeClass, Params{NodeID: "n", ExpectedClass: "Profile"}))

	assert.Len(t, q, 1, "duplicate VALIDATE_EXPECTED_NODE_CLASS for the same node_id must be dropped regardless of other params")
}

func TestReduceAddTaskNeverDedupesOtherKinds(t *testing.T) {
	var q Queue
	q = Reduce(q, Add(AssertionTimestampChecks, Params{NodeID: "n"}))
	q = Reduce(q, Add(AssertionTimestampChecks, Params{NodeID: "n"}))

	assert.Len(t, q, 2)
}

func TestReduceResolveTaskIsMonotonic(t *testing.T) {
	var q Queue
	q = Reduce(q, Add(ValidateProperty, Params{NodeID: "n", PropName: "name"}))
	q = Reduce(q, Resolve(1, true, "ok"))

	require.True(t, q[0].Complete)
	assert.True(t, q[0].Success)
	assert.Equal(t, "ok", q[0].Result)

	// A further UPDATE_TASK must not resurrect Complete=false.
	q = Reduce(q, Update(1, ValidateProperty, Params{NodeID: "n", PropName: "renamed"}))
	assert.True(t, q[0].Complete)
	assert.Equal(t, "renamed", q[0].Params.PropName)
}

func TestReduceUnknownTaskIDIsNoop(t *testing.T) {
	var q Queue
	q = Reduce(q, Add(ValidateProperty, Params{NodeID: "n", PropName: "name"}))
	before := q

	q = Reduce(q, Resolve(999, true, "ignored"))
	assert.Equal(t, before, q)

	q = Reduce(q, Update(999, ValidateProperty, Params{NodeID: "n", PropName: "other"}))
	assert.Equal(t, before, q)
}

func TestNextActiveSelectsLowestTaskID(t *testing.T) {
	var q Queue
	q = Reduce(q, Add(ValidateProperty, Params{NodeID: "n", PropName: "a"}))
	q = Reduce(q, Add(ValidateProperty, Params{NodeID: "n", PropName: "b"}))
	q = Reduce(q, Resolve(1, true, "done"))

	next, ok := q.NextActive()
	require.True(t, ok)
	assert.Equal(t, 2, next.TaskID)
}
