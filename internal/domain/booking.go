package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Opaque identifier of a persisted booking. Compared by value, never by
// object reference, so an edited booking can be matched against its stored
// original.
type BookingID string

// Opaque identifier of a project/site location.
type SiteID string

// Represents one concrete delivery or collection on a calendar day,
// either already committed or currently proposed in the booking form.
// Events are immutable for the duration of one conflict check; the day's
// list is rebuilt fresh on every invocation.
type DeliveryEvent struct {
	ID              BookingID
	Site            SiteID
	Start           time.Time
	DurationMinutes int
	Quantity        decimal.Decimal // cubic metres of concrete
	Proposed        bool
}

// End returns the scheduled finish time of the delivery.
func (e DeliveryEvent) End() time.Time {
	return e.Start.Add(time.Duration(e.DurationMinutes) * time.Minute)
}
