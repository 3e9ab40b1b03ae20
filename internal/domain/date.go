package domain

import (
	"encoding/json"
	"time"
)

// Date is a request timestamp that accepts either a calendar date or an
// RFC 3339 value. DateOnly records which form the caller sent.
type Date struct {
	time.Time
	DateOnly bool
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := ParseDate(s)
	if err != nil {
		return err
	}
	d.Time = t
	d.DateOnly = IsDateOnly(s)
	return nil
}

// EndOfRange turns an inclusive end bound into an exclusive one. A bare
// date covers the whole day.
func (d Date) EndOfRange() time.Time {
	if d.DateOnly {
		return d.Time.AddDate(0, 0, 1)
	}
	return d.Time
}
