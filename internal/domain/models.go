package domain

import (
	"fmt"
	"time"
)

// Package domain contains the core models shared across the fetcher.

// Page is one normalized wiki article, as persisted to the output files.
type Page struct {
	URL           string    `json:"url"`
	Category      string    `json:"category"`
	Rating        int       `json:"rating"`
	VoteCount     int       `json:"vote_count"`
	UpvoteCount   int       `json:"upvote_count"`
	DownvoteCount int       `json:"downvote_count"`
	CreatedAt     time.Time `json:"created_at"`
	Authors       []string  `json:"authors"`
	Tags          []string  `json:"tags"`
	Revisions     int       `json:"revisions"`
}

// DateSpan is the [Start, End) window of article creation times to retrieve.
type DateSpan struct {
	Start time.Time
	End   time.Time
}

// MonthSpan derives the span for the month beginning on the given ISO date
// (YYYY-MM-DD). Start is that date at UTC midnight; End is Start plus one
// calendar month using time.AddDate normalization, so overflow days roll
// forward (2021-01-31 yields an End of 2021-03-03).
func MonthSpan(isoDate string) (DateSpan, error) {
	start, err := time.ParseInLocation("2006-01-02", isoDate, time.UTC)
	if err != nil {
		return DateSpan{}, fmt.Errorf("parse start date %q: %w", isoDate, err)
	}

	return DateSpan{
		Start: start,
		End:   start.AddDate(0, 1, 0),
	}, nil
}
