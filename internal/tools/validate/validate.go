// Package validate exposes the badge validation engine as an MCP tool,
// so an agent client can request verification over the same JSON-RPC
// transport the teacher repo uses for its spec-authoring tools.
package validate

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mgylling/badgecheck/internal/engine"
	"github.com/mgylling/badgecheck/internal/extension"
	"github.com/mgylling/badgecheck/internal/fetch"
	"github.com/mgylling/badgecheck/internal/mcp"
	"github.com/mgylling/badgecheck/internal/report"
)

type validateBadgeParams struct {
	Document map[string]any `json:"document"`
}

// ValidateBadge runs the engine against a single Open Badges document and
// returns the resulting report as the tool's call result.
type ValidateBadge struct {
	extensions extension.Registry
	fetcher    *fetch.Client
}

// NewValidateBadge builds the tool. extensions and fetcher are shared
// across calls the same way the teacher's tools share a single Emergent
// client.
func NewValidateBadge(extensions extension.Registry, fetcher *fetch.Client) *ValidateBadge {
	return &ValidateBadge{extensions: extensions, fetcher: fetcher}
}

func (t *ValidateBadge) Name() string { return "validate_badge" }

func (t *ValidateBadge) Description() string {
	return "Validate an Open Badges v2 Assertion, BadgeClass, or Profile document and return a pass/fail report with one entry per check performed."
}

func (t *ValidateBadge) InputSchema() json.RawMessage {
	return json.RawMessage(`{
  "type": "object",
  "required": ["document"],
  "properties": {
    "document": {
      "type": "object",
      "description": "The JSON-LD document to validate, with a top-level \"id\"."
    }
  }
}`)
}

func (t *ValidateBadge) Execute(ctx context.Context, params json.RawMessage) (*mcp.ToolsCallResult, error) {
	var p validateBadgeParams
	if err := json.Unmarshal(params, &p); err != nil {
		return mcp.ErrorResult(fmt.Sprintf("invalid parameters: %v", err)), nil
	}
	if p.Document == nil {
		return mcp.ErrorResult("document is required"), nil
	}

	state, err := engine.LoadDocument(p.Document)
	if err != nil {
		return mcp.ErrorResult(fmt.Sprintf("loading document: %v", err)), nil
	}

	driver := &engine.Driver{Extensions: t.extensions, Fetcher: t.fetcher}
	final, err := driver.Run(ctx, state)
	if err != nil {
		return nil, fmt.Errorf("running validation engine: %w", err)
	}

	rep := report.FromQueue(final.Queue)
	return mcp.JSONResult(rep)
}
