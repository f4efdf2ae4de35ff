package crom

import (
	"strings"
	"testing"
	"time"
)

var queryBound = time.Date(2021, time.June, 1, 0, 0, 0, 0, time.UTC)

func TestBuildQueryFirstPage(t *testing.T) {
	query := BuildQuery(queryBound, []string{"http://scp-wiki.wikidot.com"}, 100, nil)

	for _, want := range []string{
		`createdAt: { gte: "2021-06-01T00:00:00Z" }`,
		`anyBaseUrl: [ "http://scp-wiki.wikidot.com" ]`,
		`first: 100`,
		`after: null`,
		`sort: { order: ASC, key: CREATED_AT }`,
	} {
		if !strings.Contains(query, want) {
			t.Errorf("query missing %q:\n%s", want, query)
		}
	}
}

func TestBuildQueryQuotesCursor(t *testing.T) {
	cursor := "WyIxNjIyNTA1NjAwIl0="
	query := BuildQuery(queryBound, []string{"http://scp-wiki.wikidot.com"}, 100, &cursor)

	if !strings.Contains(query, `after: "WyIxNjIyNTA1NjAwIl0="`) {
		t.Errorf("query does not echo cursor verbatim:\n%s", query)
	}
}

func TestBuildQueryMultipleBaseURLs(t *testing.T) {
	urls := []string{"http://scp-wiki.wikidot.com", "http://scp-int.wikidot.com"}
	query := BuildQuery(queryBound, urls, 50, nil)

	if !strings.Contains(query, `anyBaseUrl: [ "http://scp-wiki.wikidot.com", "http://scp-int.wikidot.com" ]`) {
		t.Errorf("query missing joined base urls:\n%s", query)
	}
	if !strings.Contains(query, "first: 50") {
		t.Errorf("query missing page size:\n%s", query)
	}
}
