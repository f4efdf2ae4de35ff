package crom

import (
	"context"
	"time"

	"github.com/scpwiki/news-fetch/pkg/httpclient"
)

// PageFetcher retrieves one page of article edges from the API. Concrete
// implementations live in client.go; the walker depends only on this contract.
type PageFetcher interface {
	FetchPage(ctx context.Context, createdAfter time.Time, cursor *string) (*PageResult, error)
}

// HTTPClient aliases the shared httpclient.Client interface for clarity within crom.
type HTTPClient = httpclient.Client
