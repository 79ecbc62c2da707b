package schemald

import (
	"strconv"
	"time"

	"github.com/reoring/schemald/internal/ir"
)

// DurationFormat selects how time.Duration values are written.
type DurationFormat = ir.DurationFormat

const (
	// DurationISO8601 writes "PT{h}H{m}M" (or "PT{m}M" below one hour). Seconds are dropped.
	DurationISO8601 = ir.DurationISO8601
	// DurationMinutes writes the total number of whole minutes as a JSON integer.
	DurationMinutes = ir.DurationMinutes
	// DurationSeconds writes the total number of whole seconds as a JSON integer.
	DurationSeconds = ir.DurationSeconds
)

// DateFormat selects how time.Time values are written.
type DateFormat = ir.DateFormat

const (
	// DateISO8601 writes an RFC 3339 timestamp with fractional seconds and the value's offset.
	DateISO8601 = ir.DateISO8601
	// DateOnly writes the calendar date only.
	DateOnly = ir.DateOnly
)

// FormatDuration formats d as an ISO-8601 duration the way schema.org consumers
// expect for cookTime, totalTime and similar properties:
//
//	90m -> PT1H30M, 45m -> PT45M, 0 -> PT0M, 60m -> PT1H0M
//
// Seconds and smaller units are truncated.
func FormatDuration(d time.Duration) string {
	return string(appendDuration(make([]byte, 0, 12), d))
}

func appendDuration(b []byte, d time.Duration) []byte {
	b = append(b, "PT"...)
	if d >= time.Hour {
		b = strconv.AppendInt(b, int64(d/time.Hour), 10)
		b = append(b, 'H')
		b = strconv.AppendInt(b, int64((d%time.Hour)/time.Minute), 10)
		return append(b, 'M')
	}
	b = strconv.AppendInt(b, int64(d/time.Minute), 10)
	return append(b, 'M')
}

// FormatDateTime formats t per f. DateISO8601 keeps t's own offset (no UTC
// normalization) so the value round-trips.
func FormatDateTime(t time.Time, f DateFormat) string {
	return string(appendDateTime(make([]byte, 0, len(time.RFC3339Nano)), t, f))
}

func appendDateTime(b []byte, t time.Time, f DateFormat) []byte {
	if f == DateOnly {
		return t.AppendFormat(b, time.DateOnly)
	}
	return t.AppendFormat(b, time.RFC3339Nano)
}
