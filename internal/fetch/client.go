// Package fetch implements the FETCH_HTTP_NODE task (spec.md §4.9's
// sibling external collaborator): retrieving a remote JSON-LD node over
// HTTP and merging it into the graph so downstream VALIDATE_PROPERTY /
// VALIDATE_EXPECTED_NODE_CLASS tasks can run against it.
package fetch

import (
	"net"
	"net/http"
	"time"
)

// Client performs the engine's outbound HTTP GETs. It holds a single,
// connection-pooled http.Client shared across every FETCH_HTTP_NODE
// task, the same pooling shape the teacher's emergent.ClientFactory
// builds for its own upstream calls — adapted here to a one-shot GET
// instead of a persistent SDK session.
type Client struct {
	httpClient *http.Client
	maxRetries uint64
	timeout    time.Duration
}

// NewClient builds a Client with a pooled transport. timeout bounds a
// single HTTP round trip; maxRetries bounds the exponential backoff
// retry loop in FetchHTTPNode.
func NewClient(timeout time.Duration, maxRetries uint64) *Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		MaxConnsPerHost:     50,
		IdleConnTimeout:     90 * time.Second,

		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,

		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: timeout,
		ExpectContinueTimeout: 1 * time.Second,

		DisableKeepAlives: false,
		ForceAttemptHTTP2: true,
	}

	return &Client{
		httpClient: &http.Client{Transport: transport, Timeout: timeout},
		maxRetries: maxRetries,
		timeout:    timeout,
	}
}
