package crom

import (
	"context"
	"fmt"

	"github.com/scpwiki/news-fetch/internal/domain"
)

// Walker drives the cursor-based pagination loop, accumulating normalized
// records until the API runs out of pages or a record falls past the span end.
type Walker struct {
	fetcher PageFetcher
}

// NewWalker wires a walker with the page fetcher implementation.
func NewWalker(fetcher PageFetcher) *Walker {
	return &Walker{fetcher: fetcher}
}

// FetchAll walks every page of articles created within the span, in API order
// (ascending by creation time). The first record created after span.End stops
// the walk; that record and the rest of its page are discarded. Any fetch
// error aborts the run with no partial results.
func (w *Walker) FetchAll(ctx context.Context, span domain.DateSpan) ([]domain.Page, error) {
	if w == nil || w.fetcher == nil {
		return nil, fmt.Errorf("walker is not initialized")
	}

	var pages []domain.Page
	var cursor *string
	hasNextPage := true

	for hasNextPage {
		result, err := w.fetcher.FetchPage(ctx, span.Start, cursor)
		if err != nil {
			return nil, err
		}

		hasNextPage = result.PageInfo.HasNextPage
		cursor = result.PageInfo.EndCursor

		for _, edge := range result.Edges {
			page := ConvertEdge(edge)
			if page.CreatedAt.After(span.End) {
				hasNextPage = false
				break
			}
			pages = append(pages, page)
		}
	}

	return pages, nil
}
