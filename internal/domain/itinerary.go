package domain

import "time"

// Itinerary is the plan produced for one trip: exactly TotalDays day
// buckets, each non-empty, each internally ordered by visitation sequence.
// It is immutable planning data and contains no side effects.
type Itinerary struct {
	Days []ItineraryDay
}

// ItineraryDay groups the stops assigned to one calendar day along with the
// lodging the day is anchored on.
type ItineraryDay struct {
	Day     int // 1-based
	Date    time.Time
	Lodging string
	Stops   []*Place
}

// GroupByDay partitions an ordered assignment into per-day buckets,
// preserving the greedy chain order inside each day.
func GroupByDay(assigned []*Place, totalDays int) []ItineraryDay {
	days := make([]ItineraryDay, totalDays)
	for i := range days {
		days[i].Day = i + 1
	}
	for _, p := range assigned {
		if p.AssignedDay < 1 || p.AssignedDay > totalDays {
			continue
		}
		d := &days[p.AssignedDay-1]
		d.Stops = append(d.Stops, p)
	}
	return days
}
