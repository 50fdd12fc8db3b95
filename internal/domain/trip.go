package domain

import (
	"fmt"
	"time"
)

// Pace controls how densely the traveler wants days packed. The optimizer
// derives each day's stop ceiling from it.
type Pace string

const (
	PaceRelaxed  Pace = "relaxed"
	PaceModerate Pace = "moderate"
	PacePacked   Pace = "packed"
)

// Focus is the trip-level interest emphasis matched against place categories.
type Focus string

const (
	FocusBalanced    Focus = "balanced"
	FocusSightseeing Focus = "sightseeing"
	FocusShopping    Focus = "shopping"
	FocusFood        Focus = "food"
	FocusCulture     Focus = "culture"
)

// Transport is the traveler's preferred mode between stops.
type Transport string

const (
	TransportPublic  Transport = "public"
	TransportDriving Transport = "driving"
	TransportWalking Transport = "walking"
)

// Trip holds the trip-level parameters the optimizer plans against.
// Start and End are inclusive calendar dates; ArrivalTime and DepartureTime
// are optional "15:04" clock strings constraining day 1 and the final day.
type Trip struct {
	Start         time.Time
	End           time.Time
	ArrivalTime   string
	DepartureTime string
	Travelers     int
	Budget        float64 // per person, in Currency units
	Currency      string
	Pace          Pace
	Focus         Focus
	Transport     Transport
	Airport       *Coordinates
}

// TotalDays returns the inclusive day count of the trip date range.
func (t *Trip) TotalDays() int {
	return int(DayOf(t.End).Sub(DayOf(t.Start)).Hours()/24) + 1
}

// DailyBudget is the per-person budget averaged across the trip.
func (t *Trip) DailyBudget() float64 {
	days := t.TotalDays()
	if days < 1 {
		return t.Budget
	}
	return t.Budget / float64(days)
}

// Validate checks the fatal preconditions callers must satisfy before
// planning starts.
func (t *Trip) Validate() error {
	if DayOf(t.End).Before(DayOf(t.Start)) {
		return fmt.Errorf("trip: end date %s precedes start date %s",
			t.End.Format("2006-01-02"), t.Start.Format("2006-01-02"))
	}
	if t.Travelers < 1 {
		return fmt.Errorf("trip: travelers must be >= 1, got %d", t.Travelers)
	}
	return nil
}

// ParseClock converts a "15:04" clock string into fractional hours.
// The empty string reports ok=false (no constraint).
func ParseClock(s string) (hours float64, ok bool, err error) {
	if s == "" {
		return 0, false, nil
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, false, fmt.Errorf("parse clock time %q: %w", s, err)
	}
	return float64(t.Hour()) + float64(t.Minute())/60, true, nil
}
