package mcp

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(tools ...Tool) *Server {
	registry := NewRegistry()
	for _, t := range tools {
		registry.Register(t)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServer(registry, ServerInfo{Name: "badgecheck", Version: "test"}, logger)
}

func TestServerHandleInitialize(t *testing.T) {
	s := testServer()
	resp := s.handleMessage(context.Background(), []byte(`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{}}`))
	require.NotNil(t, resp)
	require.Nil(t, resp.Error)

	result, ok := resp.Result.(*InitializeResult)
	require.True(t, ok)
	assert.NotNil(t, result.Capabilities.Tools)
	assert.Equal(t, "badgecheck", result.ServerInfo.Name)
}

func TestServerHandleToolsList(t *testing.T) {
	s := testServer(&stubTool{name: "validate_badge"})
	resp := s.handleMessage(context.Background(), []byte(`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`))
	require.NotNil(t, resp)
	require.Nil(t, resp.Error)

	result, ok := resp.Result.(*ToolsListResult)
	require.True(t, ok)
	require.Len(t, result.Tools, 1)
	assert.Equal(t, "validate_badge", result.Tools[0].Name)
}

func TestServerHandleToolsCallSuccess(t *testing.T) {
	tool := &stubTool{name: "validate_badge", result: &ToolsCallResult{Content: []ContentBlock{TextContent("ok")}}}
	s := testServer(tool)

	resp := s.handleMessage(context.Background(), []byte(`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"validate_badge"}}`))
	require.NotNil(t, resp)
	require.Nil(t, resp.Error)

	result, ok := resp.Result.(*ToolsCallResult)
	require.True(t, ok)
	assert.False(t, result.IsError)
	assert.Equal(t, "ok", result.Content[0].Text)
}

func TestServerHandleToolsCallUnknownTool(t *testing.T) {
	s := testServer()
	resp := s.handleMessage(context.Background(), []byte(`{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"nope"}}`))
	require.NotNil(t, resp)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeMethodNotFound, resp.Error.Code)
}

func TestServerHandleToolsCallExecuteError(t *testing.T) {
	tool := &stubTool{name: "validate_badge", err: fmt.Errorf("boom")}
	s := testServer(tool)

	resp := s.handleMessage(context.Background(), []byte(`{"jsonrpc":"2.0","id":5,"method":"tools/call","params":{"name":"validate_badge"}}`))
	require.NotNil(t, resp)
	require.Nil(t, resp.Error)

	result, ok := resp.Result.(*ToolsCallResult)
	require.True(t, ok)
	assert.True(t, result.IsError)
}

func TestServerUnknownMethod(t *testing.T) {
	s := testServer()
	resp := s.handleMessage(context.Background(), []byte(`{"jsonrpc":"2.0","id":6,"method":"prompts/list"}`))
	require.NotNil(t, resp)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeMethodNotFound, resp.Error.Code)
}

func TestServerParseError(t *testing.T) {
	s := testServer()
	resp := s.handleMessage(context.Background(), []byte(`not json`))
	require.NotNil(t, resp)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeParse, resp.Error.Code)
}

func TestServerNotificationGetsNoResponse(t *testing.T) {
	s := testServer()
	resp := s.handleMessage(context.Background(), []byte(`{"jsonrpc":"2.0","method":"notifications/initialized"}`))
	assert.Nil(t, resp)
}
