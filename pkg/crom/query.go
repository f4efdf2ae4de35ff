package crom

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// queryTemplate is the Crom pages query. Placeholders, in order: created-at
// lower bound, base URL list, page size, cursor.
const queryTemplate = `
{
  pages(
    sort: { order: ASC, key: CREATED_AT },
    filter: {
      wikidotInfo: { createdAt: { gte: "%s" } },
      anyBaseUrl: [ %s ]
    },
    first: %d,
    after: %s
  ) {
    edges {
      node {
        url,
        wikidotInfo {
          createdAt,
          category,
          tags,
          rating,
          voteCount,
          revisionCount,
        },
        attributions {
            type,
            user { name },
            isCurrent,
        },
      }
    },
    pageInfo {
      hasPreviousPage,
      hasNextPage,
      endCursor,
    }
  }
}
`

// BuildQuery constructs the GraphQL query text for one page request. The
// cursor is an opaque echo of a prior response's endCursor; nil requests the
// first page.
func BuildQuery(createdAfter time.Time, baseURLs []string, pageSize int, cursor *string) string {
	quoted := make([]string, len(baseURLs))
	for i, u := range baseURLs {
		quoted[i] = strconv.Quote(u)
	}

	after := "null"
	if cursor != nil {
		after = strconv.Quote(*cursor)
	}

	return fmt.Sprintf(queryTemplate,
		createdAfter.UTC().Format(time.RFC3339),
		strings.Join(quoted, ", "),
		pageSize,
		after,
	)
}
