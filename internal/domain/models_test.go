package domain

import (
	"testing"
	"time"
)

func TestMonthSpanRegularMonth(t *testing.T) {
	span, err := MonthSpan("2021-06-01")
	if err != nil {
		t.Fatalf("MonthSpan: %v", err)
	}

	wantStart := time.Date(2021, time.June, 1, 0, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2021, time.July, 1, 0, 0, 0, 0, time.UTC)
	if !span.Start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", span.Start, wantStart)
	}
	if !span.End.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", span.End, wantEnd)
	}
	if span.Start.Location() != time.UTC {
		t.Errorf("start not pinned to UTC: %v", span.Start.Location())
	}
}

func TestMonthSpanFebruaryStart(t *testing.T) {
	span, err := MonthSpan("2021-02-01")
	if err != nil {
		t.Fatalf("MonthSpan: %v", err)
	}

	wantEnd := time.Date(2021, time.March, 1, 0, 0, 0, 0, time.UTC)
	if !span.End.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", span.End, wantEnd)
	}
}

func TestMonthSpanOverflowNormalizes(t *testing.T) {
	// AddDate rolls Jan 31 + 1 month into early March.
	span, err := MonthSpan("2021-01-31")
	if err != nil {
		t.Fatalf("MonthSpan: %v", err)
	}

	wantEnd := time.Date(2021, time.March, 3, 0, 0, 0, 0, time.UTC)
	if !span.End.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", span.End, wantEnd)
	}
}

func TestMonthSpanLeapYear(t *testing.T) {
	span, err := MonthSpan("2020-01-31")
	if err != nil {
		t.Fatalf("MonthSpan: %v", err)
	}

	wantEnd := time.Date(2020, time.March, 2, 0, 0, 0, 0, time.UTC)
	if !span.End.Equal(wantEnd) {
		t.Errorf("end = %v, want %v", span.End, wantEnd)
	}
}

func TestMonthSpanRejectsMalformedDate(t *testing.T) {
	if _, err := MonthSpan("June 1st 2021"); err == nil {
		t.Fatal("expected error for malformed date")
	}
	if _, err := MonthSpan("2021-13-01"); err == nil {
		t.Fatal("expected error for impossible month")
	}
}
