package crom

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/scpwiki/news-fetch/internal/logger"
	"github.com/scpwiki/news-fetch/pkg/httpclient"
)

// requestHeaders are sent with every Crom request.
var requestHeaders = map[string]string{
	"Accept-Encoding": "gzip, deflate, br",
	"Content-Type":    "application/json",
	"Accept":          "application/json",
}

// DefaultHTTPClient returns a tuned client for Crom requests.
func DefaultHTTPClient(timeout time.Duration) HTTPClient {
	return httpclient.NewRestyClient(timeout)
}

// Client issues paginated article queries against one Crom endpoint, scoped to
// a fixed set of source base URLs.
type Client struct {
	http     HTTPClient
	endpoint string
	baseURLs []string
	pageSize int

	pagesFetched int
}

// NewClient builds a Crom client. A nil http client panics at first use; pass
// DefaultHTTPClient for production wiring.
func NewClient(http HTTPClient, endpoint string, baseURLs []string, pageSize int) (*Client, error) {
	if strings.TrimSpace(endpoint) == "" {
		return nil, fmt.Errorf("crom endpoint is empty")
	}
	if len(baseURLs) == 0 {
		return nil, fmt.Errorf("crom client requires at least one base url")
	}
	if pageSize <= 0 {
		return nil, fmt.Errorf("invalid page size %d", pageSize)
	}

	return &Client{
		http:     http,
		endpoint: endpoint,
		baseURLs: baseURLs,
		pageSize: pageSize,
	}, nil
}

// FetchPage issues one POST request for a page of edges and decodes the result.
// A response carrying a GraphQL errors collection fails with *QueryError.
func (c *Client) FetchPage(ctx context.Context, createdAfter time.Time, cursor *string) (*PageResult, error) {
	c.pagesFetched++
	logger.InfoObj("fetching pages", "fetch_meta", map[string]any{
		"page":   c.pagesFetched,
		"cursor": cursorLabel(cursor),
	})

	query := BuildQuery(createdAfter, c.baseURLs, c.pageSize, cursor)
	payload, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, fmt.Errorf("encode query payload: %w", err)
	}

	resp, err := c.http.Post(ctx, c.endpoint, requestHeaders, payload)
	if err != nil {
		return nil, fmt.Errorf("post crom query: %w", err)
	}

	body := resp.Body()
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("crom returned status %d body: %s", resp.StatusCode(), responseSnippet(body))
	}

	var decoded apiResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decode crom response: %w", err)
	}

	if decoded.Errors != nil {
		return nil, &QueryError{Errors: *decoded.Errors}
	}
	if decoded.Data == nil {
		return nil, fmt.Errorf("crom response has no data payload")
	}

	result := decoded.Data.Pages
	return &result, nil
}

func cursorLabel(cursor *string) string {
	if cursor == nil {
		return "<none>"
	}
	return *cursor
}

func responseSnippet(body []byte) string {
	const maxLen = 512
	s := strings.TrimSpace(string(body))
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	if s == "" {
		return "<empty>"
	}
	return s
}
