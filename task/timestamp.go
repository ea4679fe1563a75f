package task

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimestampLayout is the on-disk timestamp format.
const TimestampLayout = "2006-01-02 15:04:05"

// Timestamp is a wall-clock time with second precision, encoded in
// TimestampLayout in local time.
type Timestamp struct {
	time.Time
}

// NewTimestamp truncates t to whole seconds.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.Truncate(time.Second)}
}

// String formats the timestamp in TimestampLayout, or "" when zero.
func (t Timestamp) String() string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(TimestampLayout)
}

// Equal reports whether both timestamps denote the same instant.
func (t Timestamp) Equal(other Timestamp) bool {
	return t.Time.Equal(other.Time)
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	if value == "" {
		*t = Timestamp{}
		return nil
	}
	parsed, err := time.ParseInLocation(TimestampLayout, value, time.Local)
	if err != nil {
		return fmt.Errorf("parse timestamp %q: %w", value, err)
	}
	*t = Timestamp{Time: parsed}
	return nil
}
