package properties

import "time"

type PropertyCreated struct {
	PropertyID PropertyID
	Name       string
	At         time.Time
}

func (e PropertyCreated) EventName() string     { return "property.created" }
func (e PropertyCreated) AggregateID() string   { return string(e.PropertyID) }
func (e PropertyCreated) OccurredAt() time.Time { return e.At }

type PropertyUpdated struct {
	PropertyID PropertyID
	At         time.Time
}

func (e PropertyUpdated) EventName() string     { return "property.updated" }
func (e PropertyUpdated) AggregateID() string   { return string(e.PropertyID) }
func (e PropertyUpdated) OccurredAt() time.Time { return e.At }

type PropertyDeactivated struct {
	PropertyID PropertyID
	At         time.Time
}

func (e PropertyDeactivated) EventName() string     { return "property.deactivated" }
func (e PropertyDeactivated) AggregateID() string   { return string(e.PropertyID) }
func (e PropertyDeactivated) OccurredAt() time.Time { return e.At }
