package costing

import (
	"bytes"
	"encoding/json"
	"time"
)

// dateLayouts are the accepted wire formats for transaction dates, tried in order.
// The host application stores ISO-8601-like strings; older datasets carry a bare
// date or a space-separated timestamp.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Date is a transaction timestamp parsed from the snapshot. A Date that failed
// to parse keeps its raw input and reports Valid == false; invalid dates are a
// data-quality condition and are excluded from any date-ordered or date-filtered
// computation rather than raising an error.
type Date struct {
	Time  time.Time
	Valid bool
	raw   string
}

// NewDate creates a valid Date from a native time value.
func NewDate(t time.Time) Date {
	return Date{Time: t, Valid: true}
}

// ParseDate parses a raw date string, trying each accepted layout.
func ParseDate(raw string) Date {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return Date{Time: t, Valid: true, raw: raw}
		}
	}
	return Date{raw: raw}
}

// Raw returns the original string the date was parsed from, if any.
func (d Date) Raw() string {
	return d.raw
}

// IsZero returns true for the zero value (no date supplied at all).
func (d Date) IsZero() bool {
	return !d.Valid && d.raw == ""
}

// Before reports whether d is strictly before other. Comparisons involving an
// invalid date are always false, so invalid-dated records drop out of every
// date-filtered set.
func (d Date) Before(other Date) bool {
	if !d.Valid || !other.Valid {
		return false
	}
	return d.Time.Before(other.Time)
}

// OnOrBefore reports whether d is at or before other (inclusive filtering).
func (d Date) OnOrBefore(other Date) bool {
	if !d.Valid || !other.Valid {
		return false
	}
	return !d.Time.After(other.Time)
}

// Equal reports whether two valid dates refer to the same instant.
func (d Date) Equal(other Date) bool {
	return d.Valid && other.Valid && d.Time.Equal(other.Time)
}

// UnmarshalJSON accepts an ISO-8601-like string, an RFC 3339 timestamp, or null.
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*d = ParseDate(raw)
	return nil
}

// MarshalJSON renders a valid date as RFC 3339 and echoes the raw input otherwise.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.Valid {
		return json.Marshal(d.Time.Format(time.RFC3339))
	}
	if d.raw == "" {
		return []byte("null"), nil
	}
	return json.Marshal(d.raw)
}
