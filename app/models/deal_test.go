package models

import (
	"testing"
	"time"
)

func TestDealStatusAt(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 7, 23, 59, 59, 0, time.UTC)
	deal := &Deal{StartTime: start, EndTime: end}

	cases := []struct {
		name string
		at   time.Time
		want string
	}{
		{"before window", start.Add(-time.Second), DealStatusUpcoming},
		{"at start", start, DealStatusActive},
		{"inside window", start.Add(24 * time.Hour), DealStatusActive},
		{"at end", end, DealStatusActive},
		{"after end", end.Add(time.Second), DealStatusEnded},
	}
	for _, tc := range cases {
		if got := deal.StatusAt(tc.at); got != tc.want {
			t.Fatalf("%s: StatusAt = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestDealIsActiveAt(t *testing.T) {
	now := time.Now()
	deal := &Deal{StartTime: now.Add(-time.Hour), EndTime: now.Add(time.Hour)}
	if !deal.IsActiveAt(now) {
		t.Fatal("deal inside its window should be active")
	}
}

func TestValidDealType(t *testing.T) {
	for _, valid := range []string{DealTypeFlash, DealTypeTrending, DealTypeDealOfDay} {
		if !ValidDealType(valid) {
			t.Fatalf("%s should be a valid deal type", valid)
		}
	}
	if ValidDealType("CLEARANCE") {
		t.Fatal("CLEARANCE should not be a valid deal type")
	}
}
