package services

import (
	"errors"
	"fmt"

	"trip-itinerary-service/internal/domain"
)

// OptimizeRoute assigns ranked candidates to trip days and orders each
// day's picks into a travel-efficient greedy chain.
//
// For every day it resolves the active lodging, derives the operating
// window (clamped by flights on the first and last day), geographically and
// temporally filters the unassigned pool, then repeatedly commits the
// candidate minimizing weighted distance from the current anchor. A day
// commits at most its quota (even share of the remaining pool, capped by
// the pace's stop ceiling), so early days cannot swallow candidates that
// later days could host. Days that end up empty receive a synthetic
// placeholder, so the output always covers all trip days; that invariant is
// relied on by the narrative stage.
//
// Candidates live in the ranked slice as an arena; the unassigned pool is a
// flag per index, removed in O(1) on commit and never re-entered. The
// computation is pure and deterministic: identical inputs produce identical
// assignments.
func OptimizeRoute(ranked []*domain.Place, lodgings []*domain.Lodging, trip *domain.Trip, cfg Config) ([]*domain.Place, error) {
	if len(ranked) == 0 {
		return nil, errors.New("optimize route: candidate list must not be empty")
	}
	if len(lodgings) == 0 {
		return nil, errors.New("optimize route: lodging list must not be empty")
	}
	totalDays := trip.TotalDays()
	if totalDays < 1 {
		return nil, fmt.Errorf("optimize route: trip must span at least one day, got %d", totalDays)
	}

	assigned := make([]bool, len(ranked))
	remaining := len(ranked)

	out := make([]*domain.Place, 0, len(ranked)+totalDays)

	for day := 1; day <= totalDays; day++ {
		date := domain.DayOf(trip.Start).AddDate(0, 0, day-1)
		weekday := int(date.Weekday())
		lodging := ActiveLodging(date, lodgings)

		window, err := computeDayWindow(day, totalDays, trip, cfg)
		if err != nil {
			return nil, fmt.Errorf("optimize route: day %d: %w", day, err)
		}
		if window.hours() < cfg.MinWindowHours {
			out = append(out, transitPlaceholder(day, lodging))
			continue
		}

		daysLeft := totalDays - day + 1
		quota := dayQuota(remaining, daysLeft, trip.Pace, cfg)

		fenceCoord, fenceOK := geofenceCoord(lodging, lodgings)
		radius := cfg.GeofenceRadiusKm
		if remaining <= cfg.SmallPoolPerDay*daysLeft {
			radius *= cfg.WidenFactor
		}

		pool := buildDayPool(ranked, assigned, weekday, fenceCoord, fenceOK, radius, day, trip.Airport, cfg)

		anchor, anchorOK := fenceCoord, fenceOK
		if day == 1 && trip.Airport != nil {
			anchor, anchorOK = *trip.Airport, true
		}

		committed := 0
		elapsed := 0.0

		for len(pool) > 0 && committed < quota && elapsed < window.hours() {
			best := -1
			bestDist := 0.0
			bestWeight := 0.0
			for i, idx := range pool {
				p := ranked[idx]
				dist := hopDistance(anchor, anchorOK, p, cfg)
				weight := dist - p.Score/cfg.DistanceScoreDiv
				if best < 0 || weight < bestWeight {
					best, bestDist, bestWeight = i, dist, weight
				}
			}

			idx := pool[best]
			p := ranked[idx]
			pool = append(pool[:best], pool[best+1:]...)

			visit := p.DurationHours
			if visit <= 0 {
				visit = cfg.DefaultVisitHours
			}
			travel := bestDist/cfg.SpeedKmh + cfg.HopOverheadHours

			// Committing past the flex tolerance would overflow the day;
			// skip the candidate for this day without re-adding it.
			if elapsed+travel+visit > window.hours()+cfg.FlexHours {
				continue
			}

			p.AssignedDay = day
			if lodging.Coord != nil && p.Coord != nil {
				p.DistanceFromLodgingKm = round1(domain.DistanceKm(*p.Coord, *lodging.Coord))
			}
			p.AssignmentReason += fmt.Sprintf("; planned for day %d near %s", day, lodging.Name)

			out = append(out, p)
			assigned[idx] = true
			remaining--
			committed++
			elapsed += travel + visit
			if p.Coord != nil {
				anchor, anchorOK = *p.Coord, true
			}
		}

		if committed == 0 {
			out = append(out, freeDayPlaceholder(day, lodging))
		}
	}

	return out, nil
}

// dayQuota is the maximum number of stops one day may commit: the even
// share of the unassigned pool across the remaining days, capped by the
// pace's stop ceiling. Always at least 1 so a lone candidate stays
// schedulable.
func dayQuota(remaining, daysLeft int, pace domain.Pace, cfg Config) int {
	quota := (remaining + daysLeft - 1) / daysLeft
	if quota < 1 {
		quota = 1
	}
	limit := cfg.ModerateDayStops
	switch pace {
	case domain.PaceRelaxed:
		limit = cfg.RelaxedDayStops
	case domain.PacePacked:
		limit = cfg.PackedDayStops
	}
	if limit > 0 && quota > limit {
		quota = limit
	}
	return quota
}

// geofenceCoord picks the coordinate the day's geofence is measured from.
// A lodging whose address never geocoded is skipped in favor of the first
// located lodging; with none at all the geofence is disabled.
func geofenceCoord(active *domain.Lodging, lodgings []*domain.Lodging) (domain.Coordinates, bool) {
	if active.Coord != nil {
		return *active.Coord, true
	}
	for _, l := range lodgings {
		if l.Coord != nil {
			return *l.Coord, true
		}
	}
	return domain.Coordinates{}, false
}

// buildDayPool gathers the unassigned candidates eligible for one day:
// open on its weekday and inside the geofence around the day's lodging (or
// the airport on day 1). Indices keep rank order, which makes greedy
// tie-breaking deterministic.
func buildDayPool(
	ranked []*domain.Place,
	assigned []bool,
	weekday int,
	fence domain.Coordinates,
	fenceOK bool,
	radiusKm float64,
	day int,
	airport *domain.Coordinates,
	cfg Config,
) []int {
	pool := make([]int, 0, len(ranked))
	for idx, p := range ranked {
		if assigned[idx] {
			continue
		}
		if p.ClosedOn(weekday) {
			continue
		}
		// Unlocatable candidates pass the geofence; they were already
		// penalized at scoring time and act as a last resort.
		if fenceOK && p.Coord != nil {
			inFence := domain.DistanceKm(*p.Coord, fence) <= radiusKm
			nearAirport := day == 1 && airport != nil && domain.DistanceKm(*p.Coord, *airport) <= radiusKm
			if !inFence && !nearAirport {
				continue
			}
		}
		pool = append(pool, idx)
	}
	return pool
}

// hopDistance is the travel distance used by the greedy step. Unknown
// endpoints fall back to the geofence radius: far enough to lose against
// any located candidate, close enough to stay schedulable.
func hopDistance(anchor domain.Coordinates, anchorOK bool, p *domain.Place, cfg Config) float64 {
	if !anchorOK || p.Coord == nil {
		return cfg.GeofenceRadiusKm
	}
	return domain.DistanceKm(anchor, *p.Coord)
}

func transitPlaceholder(day int, lodging *domain.Lodging) *domain.Place {
	return &domain.Place{
		Name:             fmt.Sprintf("Transit day: travel and check-in at %s", lodging.Name),
		Category:         domain.CategoryOther,
		AssignedDay:      day,
		AssignmentReason: fmt.Sprintf("day %d is taken up by flights and transfers", day),
		Synthetic:        true,
	}
}

func freeDayPlaceholder(day int, lodging *domain.Lodging) *domain.Place {
	return &domain.Place{
		Name:             fmt.Sprintf("Free exploration around %s", lodging.Name),
		Category:         domain.CategoryOther,
		AssignedDay:      day,
		AssignmentReason: fmt.Sprintf("no remaining candidate fit day %d; left open for wandering", day),
		Synthetic:        true,
	}
}

// BuildItinerary runs ranking and optimization end to end and groups the
// result into per-day buckets with their dates and lodgings filled in.
func BuildItinerary(places []*domain.Place, lodgings []*domain.Lodging, trip *domain.Trip, cfg Config) (*domain.Itinerary, error) {
	ranked := Rank(places, trip, lodgings, cfg)

	assignedOrder, err := OptimizeRoute(ranked, lodgings, trip, cfg)
	if err != nil {
		return nil, fmt.Errorf("build itinerary: %w", err)
	}

	totalDays := trip.TotalDays()
	days := domain.GroupByDay(assignedOrder, totalDays)
	for i := range days {
		date := domain.DayOf(trip.Start).AddDate(0, 0, i)
		days[i].Date = date
		if l := ActiveLodging(date, lodgings); l != nil {
			days[i].Lodging = l.Name
		}
	}

	return &domain.Itinerary{Days: days}, nil
}
