package services

import (
	"time"

	"trip-itinerary-service/internal/domain"
)

// ActiveLodging resolves the lodging the traveler sleeps at on the given
// date. Resolution order:
//
//  1. First lodging whose half-open [CheckIn, CheckOut) contains the date.
//     On hand-off days where two intervals touch, list order decides.
//  2. A lodging whose CheckOut equals the date: the traveler is still
//     logically based there until departure.
//  3. The last lodging in the list (covers gaps between stays and dates
//     past the final check-out).
//
// Idempotent; never mutates the lodging list. Returns nil only when the
// list is empty, which callers must have rejected up front.
func ActiveLodging(date time.Time, lodgings []*domain.Lodging) *domain.Lodging {
	if len(lodgings) == 0 {
		return nil
	}

	for _, l := range lodgings {
		if l.Contains(date) {
			return l
		}
	}

	d := domain.DayOf(date)
	for _, l := range lodgings {
		if domain.DayOf(l.CheckOut).Equal(d) {
			return l
		}
	}

	return lodgings[len(lodgings)-1]
}

// nearestLodgingCoord returns the coordinate of the lodging closest to the
// given point, skipping lodgings whose address never geocoded. Used by
// proximity scoring, which considers the whole trip rather than a single
// day's base.
func nearestLodgingCoord(c domain.Coordinates, lodgings []*domain.Lodging) (domain.Coordinates, bool) {
	var best domain.Coordinates
	bestDist := -1.0
	for _, l := range lodgings {
		if l.Coord == nil {
			continue
		}
		d := domain.DistanceKm(c, *l.Coord)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = *l.Coord
		}
	}
	return best, bestDist >= 0
}
