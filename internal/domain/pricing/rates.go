package pricing

import (
	"errors"
	"fmt"
)

var (
	ErrNegativeAmount = errors.New("pricing: nightly amount cannot be negative")
	ErrRecordShape    = errors.New("pricing: nightly rate record is missing required fields")
)

// NightlyRate is one priced calendar night as reported by the upstream rate
// feed. A stay-disallowed night is visible on the calendar but cannot be booked
// or charged.
type NightlyRate struct {
	Date             string  `json:"date"`
	Amount           float64 `json:"amount"`
	IsStayDisallowed bool    `json:"isStayDisallowed"`
	MinNights        int     `json:"minNights,omitempty"`
}

func (r NightlyRate) Validate() error {
	if r.Amount < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeAmount, r.Date)
	}
	return nil
}
