package model

import (
	"encoding/json"
	"fmt"
	"time"
)

const localLayout = "2006-01-02T15:04:05"

// Time is a timestamp as the booking backend sends it. The backend emits
// ISO-8601 strings that may or may not carry a zone offset; strings without
// one are interpreted in the process-local zone. The parsed instant keeps its
// offset and is never converted to UTC, so the calendar date used for
// grouping stays the date the backend meant.
type Time struct {
	time.Time
}

// ParseTime parses an ISO-8601 timestamp, falling back to the offset-less
// form for backends that omit the zone.
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = time.ParseInLocation(localLayout, s, time.Local)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
		}
	}
	return t, nil
}

// UnmarshalJSON fails the whole decode on a malformed timestamp; records with
// bad timestamps are never silently dropped.
func (t *Time) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTime(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(time.RFC3339))
}
