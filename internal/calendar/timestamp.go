// Package calendar turns extracted events into calendar-add links and
// iCalendar files.
package calendar

import (
	"fmt"
	"strings"
	"time"
)

// TimestampLayout is the compact UTC layout exchanged with the model.
const TimestampLayout = "20060102T150405"

// DefaultDuration is applied when an event has no usable end.
const DefaultDuration = time.Hour

// ParseTimestamp parses a YYYYMMDDTHHMMSS value as UTC. A trailing "Z" is accepted.
func ParseTimestamp(s string) (time.Time, error) {
	v := strings.TrimSuffix(strings.TrimSpace(s), "Z")
	t, err := time.ParseInLocation(TimestampLayout, v, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}

// FormatTimestamp renders t in UTC using TimestampLayout, without the zone suffix.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ResolveSpan returns the start and end of an event. The end falls back to
// start + DefaultDuration when it is empty, unparsable or not after start.
func ResolveSpan(start, end string) (time.Time, time.Time, error) {
	s, err := ParseTimestamp(start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	e, err := ParseTimestamp(end)
	if err != nil || !e.After(s) {
		e = s.Add(DefaultDuration)
	}
	return s, e, nil
}
