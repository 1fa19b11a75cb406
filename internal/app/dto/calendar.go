package dto

import (
	"time"

	"premiere/internal/domain/availability"
)

type CalendarBlock struct {
	From   time.Time `json:"from"`
	To     time.Time `json:"to"`
	Reason string    `json:"reason"`
}

type Calendar struct {
	PropertyID string          `json:"propertyId"`
	Blocks     []CalendarBlock `json:"blocks"`
}

func MapCalendar(cal availability.Calendar) Calendar {
	blocks := make([]CalendarBlock, 0, len(cal.Blocks))
	for _, b := range cal.Blocks {
		blocks = append(blocks, CalendarBlock{From: b.Start, To: b.End, Reason: b.Reason})
	}
	return Calendar{PropertyID: cal.PropertyID, Blocks: blocks}
}
