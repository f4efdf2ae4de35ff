// Package crom provides client functionality for retrieving wiki articles
// through the Crom GraphQL aggregation API.
package crom

import "time"

// Edge is one API-returned article paired with its pagination position.
type Edge struct {
	Node Node `json:"node"`
}

// Node is the article payload inside an edge.
type Node struct {
	URL          string        `json:"url"`
	WikidotInfo  WikidotInfo   `json:"wikidotInfo"`
	Attributions []Attribution `json:"attributions"`
}

// WikidotInfo is the wiki-specific metadata block of a node.
type WikidotInfo struct {
	CreatedAt     time.Time `json:"createdAt"`
	Category      string    `json:"category"`
	Tags          []string  `json:"tags"`
	Rating        int       `json:"rating"`
	VoteCount     int       `json:"voteCount"`
	RevisionCount int       `json:"revisionCount"`
}

// Attribution records one contributor-to-article relationship.
type Attribution struct {
	Type      string `json:"type"`
	User      User   `json:"user"`
	IsCurrent bool   `json:"isCurrent"`
}

type User struct {
	Name string `json:"name"`
}

// PageInfo drives loop continuation. EndCursor is an opaque token echoed back
// verbatim on the next request; it is never interpreted.
type PageInfo struct {
	HasPreviousPage bool    `json:"hasPreviousPage"`
	HasNextPage     bool    `json:"hasNextPage"`
	EndCursor       *string `json:"endCursor"`
}

// PageResult is one decoded page of the paginated query.
type PageResult struct {
	Edges    []Edge   `json:"edges"`
	PageInfo PageInfo `json:"pageInfo"`
}

// apiResponse is the top-level GraphQL response envelope. Errors is a pointer
// so that a present-but-empty errors array is distinguishable from an absent one.
type apiResponse struct {
	Data   *apiData    `json:"data"`
	Errors *[]APIError `json:"errors"`
}

type apiData struct {
	Pages PageResult `json:"pages"`
}

// APIError is one entry of the GraphQL error collection.
type APIError struct {
	Message string `json:"message"`
}
