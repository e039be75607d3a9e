package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/cenkalti/backoff/v4"
	"github.com/mgylling/badgecheck/internal/task"
)

// maxBodyBytes bounds how much of a remote response FetchHTTPNode will read,
// guarding against an unbounded or malicious response body.
const maxBodyBytes = 10 << 20 // 10 MiB

// Result is what FetchHTTPNode returns to the driver: the node actions
// and resolve action to fold into state in a single re-entry step
// (spec.md §5's "UPDATE_TASK / ADD_TASK(ADD_NODE) sequence").
type Result struct {
	Success bool
	Message string
	Actions []task.Action
}

// FetchHTTPNode retrieves the node at t.Params.URL and, on success,
// returns actions that insert it into the NodeStore and queue a
// VALIDATE_EXPECTED_NODE_CLASS check against t.Params.ExpectedClass —
// mirroring the treatment VALIDATE_PROPERTY gives a locally-resolved ID
// reference (spec.md §4.4).
func (c *Client) FetchHTTPNode(ctx context.Context, t task.Task) Result {
	url := t.Params.URL
	node, err := c.fetchWithRetry(ctx, url)
	if err != nil {
		return Result{Success: false, Message: fmt.Sprintf("Could not fetch %s: %v", url, err)}
	}

	actions := []task.Action{task.InsertNode(node)}
	if t.Params.ExpectedClass != "" {
		actions = append(actions, task.Add(task.ValidateExpectedNodeClass, task.Params{
			NodeID: url, ExpectedClass: t.Params.ExpectedClass,
		}))
	}
	return Result{Success: true, Message: fmt.Sprintf("Fetched node %s", url), Actions: actions}
}

func (c *Client) fetchWithRetry(ctx context.Context, url string) (map[string]any, error) {
	var node map[string]any

	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("building request: %w", err))
		}
		req.Header.Set("Accept", "application/ld+json, application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("performing request: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("server returned status %d", resp.StatusCode)
		}
		if resp.StatusCode >= 400 {
			return backoff.Permanent(fmt.Errorf("server returned status %d", resp.StatusCode))
		}

		body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		if err != nil {
			return fmt.Errorf("reading response body: %w", err)
		}
		if err := json.Unmarshal(body, &node); err != nil {
			return backoff.Permanent(fmt.Errorf("decoding response body: %w", err))
		}
		if _, hasID := node["id"]; !hasID {
			node["id"] = url
		}
		return nil
	}

	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries)
	if err := backoff.Retry(op, backoff.WithContext(policy, ctx)); err != nil {
		return nil, err
	}
	return node, nil
}
