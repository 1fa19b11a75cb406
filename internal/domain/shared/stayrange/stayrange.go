package stayrange

import (
	"errors"
	"time"
)

var (
	ErrInvalidDate  = errors.New("stayrange: date does not parse as a calendar date")
	ErrInvalidOrder = errors.New("stayrange: end date must be after start date")
	ErrTooFarOut    = errors.New("stayrange: start date is more than one year out")
)

// maxLeadTime bounds how far in the future a stay may begin.
const maxLeadTime = 365 * 24 * time.Hour

// StayRange is a half-open night interval [Start, End): the guest occupies the
// nights of Start..End-1 and checks out on End.
type StayRange struct {
	Start time.Time
	End   time.Time
}

// Parse builds a StayRange from two date strings. Both "2006-01-02" and RFC3339
// inputs are accepted; anything else fails with ErrInvalidDate. A range whose
// end does not fall strictly after its start fails with ErrInvalidOrder, so
// zero-night stays are rejected rather than coerced.
func Parse(start, end string) (StayRange, error) {
	from, err := parseDate(start)
	if err != nil {
		return StayRange{}, err
	}
	to, err := parseDate(end)
	if err != nil {
		return StayRange{}, err
	}
	return New(from, to)
}

// New validates an already-parsed pair of dates.
func New(start, end time.Time) (StayRange, error) {
	r := StayRange{Start: start.UTC(), End: end.UTC()}
	if err := r.Validate(); err != nil {
		return StayRange{}, err
	}
	return r, nil
}

func (r StayRange) Validate() error {
	if r.Start.IsZero() || r.End.IsZero() {
		return ErrInvalidDate
	}
	if !r.End.After(r.Start) {
		return ErrInvalidOrder
	}
	if time.Until(r.Start) > maxLeadTime {
		return ErrTooFarOut
	}
	return nil
}

func (r StayRange) Nights() int {
	return int(r.End.Sub(r.Start).Hours() / 24)
}

// StartDate and EndDate render the bounds in the wire date format.
func (r StayRange) StartDate() string { return r.Start.Format("2006-01-02") }
func (r StayRange) EndDate() string   { return r.End.Format("2006-01-02") }

func (r StayRange) ContainsDate(t time.Time) bool {
	t = t.UTC()
	return !t.Before(r.Start) && t.Before(r.End)
}

func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, ErrInvalidDate
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		y, m, d := t.UTC().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, ErrInvalidDate
}
