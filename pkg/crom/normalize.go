package crom

import "github.com/scpwiki/news-fetch/internal/domain"

// currentAuthorTypes are the attribution roles counted as authors of a page.
var currentAuthorTypes = map[string]bool{
	"AUTHOR":     true,
	"MAINTAINER": true,
	"SUBMITTER":  true,
}

// ConvertEdge maps one raw API edge into the flat output record. The downvote
// count is derived by floor division so that upvotes minus downvotes equals
// the rating and upvotes plus downvotes equals the vote count.
func ConvertEdge(edge Edge) domain.Page {
	node := edge.Node
	info := node.WikidotInfo

	downvotes := floorDiv2(info.VoteCount - info.Rating)

	authors := make([]string, 0, len(node.Attributions))
	for _, attribution := range node.Attributions {
		if attribution.IsCurrent && currentAuthorTypes[attribution.Type] {
			authors = append(authors, attribution.User.Name)
		}
	}

	return domain.Page{
		URL:           node.URL,
		Category:      info.Category,
		Rating:        info.Rating,
		VoteCount:     info.VoteCount,
		UpvoteCount:   info.Rating + downvotes,
		DownvoteCount: downvotes,
		CreatedAt:     info.CreatedAt,
		Authors:       authors,
		Tags:          info.Tags,
		Revisions:     info.RevisionCount,
	}
}

// floorDiv2 divides by two rounding toward negative infinity. Go's integer
// division truncates toward zero, which differs for odd negative values.
func floorDiv2(n int) int {
	if n < 0 && n%2 != 0 {
		return n/2 - 1
	}
	return n / 2
}
