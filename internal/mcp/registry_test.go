package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTool struct {
	name   string
	result *ToolsCallResult
	err    error
}

func (s *stubTool) Name() string                    { return s.name }
func (s *stubTool) Description() string             { return "stub tool" }
func (s *stubTool) InputSchema() json.RawMessage    { return json.RawMessage(`{"type":"object"}`) }
func (s *stubTool) Execute(ctx context.Context, params json.RawMessage) (*ToolsCallResult, error) {
	return s.result, s.err
}

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	tool := &stubTool{name: "validate_badge", result: &ToolsCallResult{}}
	r.Register(tool)

	assert.Equal(t, tool, r.Get("validate_badge"))
	assert.Nil(t, r.Get("unknown"))
}

func TestRegistryListPreservesRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubTool{name: "b"})
	r.Register(&stubTool{name: "a"})

	defs := r.List()
	require.Len(t, defs, 2)
	assert.Equal(t, "b", defs[0].Name)
	assert.Equal(t, "a", defs[1].Name)
}

func TestRegistryRegisterDuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubTool{name: "dup"})
	assert.Panics(t, func() { r.Register(&stubTool{name: "dup"}) })
}
