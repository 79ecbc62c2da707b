package schemald_test

import (
	"testing"
	"time"

	"github.com/reoring/schemald"
)

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{90 * time.Minute, "PT1H30M"},
		{45 * time.Minute, "PT45M"},
		{0, "PT0M"},
		{60 * time.Minute, "PT1H0M"},
		{25*time.Hour + 5*time.Minute, "PT25H5M"},
		{2*time.Minute + 59*time.Second, "PT2M"},
	}
	for _, c := range cases {
		if got := schemald.FormatDuration(c.in); got != c.want {
			t.Fatalf("FormatDuration(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatDateTime_KeepsOffset(t *testing.T) {
	ts := time.Date(2024, 3, 1, 10, 30, 0, 0, time.FixedZone("JST", 9*3600))
	if got := schemald.FormatDateTime(ts, schemald.DateISO8601); got != "2024-03-01T10:30:00+09:00" {
		t.Fatalf("got %q", got)
	}
	if got := schemald.FormatDateTime(ts, schemald.DateOnly); got != "2024-03-01" {
		t.Fatalf("got %q", got)
	}
	frac := time.Date(2024, 3, 1, 0, 0, 0, 500_000_000, time.UTC)
	if got := schemald.FormatDateTime(frac, schemald.DateISO8601); got != "2024-03-01T00:00:00.5Z" {
		t.Fatalf("got %q", got)
	}
}

func TestDate(t *testing.T) {
	d, err := schemald.ParseDate("2024-02-29")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.String() != "2024-02-29" || d.IsZero() {
		t.Fatalf("unexpected date %v", d)
	}
	if _, err := schemald.ParseDate("2023-02-29"); err == nil {
		t.Fatalf("expected error for invalid date")
	}
	var z schemald.Date
	if !z.IsZero() {
		t.Fatalf("zero Date must report IsZero")
	}
	var back schemald.Date
	b, _ := d.MarshalText()
	if err := back.UnmarshalText(b); err != nil || back != d {
		t.Fatalf("text round trip: %v %v", back, err)
	}
}
