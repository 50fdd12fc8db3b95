package domain

import (
	"fmt"
	"time"
)

// Lodging is one leg of the trip's lodging schedule: the place the traveler
// sleeps during the half-open interval [CheckIn, CheckOut).
// Coord is nil when geocoding the address failed; such lodgings are skipped
// for geofence purposes but remain valid schedule entries.
type Lodging struct {
	Name     string
	Address  string
	Coord    *Coordinates
	CheckIn  time.Time
	CheckOut time.Time
}

// Validate enforces the stay-interval invariant.
func (l *Lodging) Validate() error {
	if !DayOf(l.CheckIn).Before(DayOf(l.CheckOut)) {
		return fmt.Errorf("lodging %q: check-in %s must precede check-out %s",
			l.Name, l.CheckIn.Format("2006-01-02"), l.CheckOut.Format("2006-01-02"))
	}
	return nil
}

// Contains reports whether date falls inside [CheckIn, CheckOut),
// compared at day granularity.
func (l *Lodging) Contains(date time.Time) bool {
	d := DayOf(date)
	return !d.Before(DayOf(l.CheckIn)) && d.Before(DayOf(l.CheckOut))
}

// DayOf strips the time-of-day component, keeping the location.
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
