package domain

import "strings"

// Category classifies a candidate place into a closed set used by
// interest-match scoring.
type Category string

const (
	CategorySightseeing Category = "sightseeing"
	CategoryShopping    Category = "shopping"
	CategoryFood        Category = "food"
	CategoryCulture     Category = "culture"
	CategoryOther       Category = "other"
)

// ParseCategory maps free-form category text onto the closed set.
// Unknown values fall back to CategoryOther rather than erroring.
func ParseCategory(s string) Category {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategorySightseeing:
		return CategorySightseeing
	case CategoryShopping:
		return CategoryShopping
	case CategoryFood:
		return CategoryFood
	case CategoryCulture:
		return CategoryCulture
	default:
		return CategoryOther
	}
}

// Place is a candidate point of interest supplied by the external
// retrieval collaborator.
//
// The upper block is immutable input; the computed block is populated once
// by the scoring engine and the route optimizer and is never re-entered
// into the unassigned pool after assignment.
type Place struct {
	Name           string
	Category       Category
	Rating         float64 // 0-5; DefaultRating substituted when absent
	ReviewCount    int
	PriceLevel     int // 1-4 ordinal
	Coord          *Coordinates
	ClosedWeekdays []int // 0=Sunday .. 6=Saturday
	OpeningText    string
	DurationHours  float64 // estimated visit duration; config default when 0

	// Computed fields.
	Score                 float64
	DistanceFromLodgingKm float64 // one decimal, against the day's lodging
	AssignedDay           int     // 1-based; 0 = unassigned
	AssignmentReason      string
	Synthetic             bool // backfill placeholder, not a real candidate
}

// DefaultRating is substituted when the retrieval source carries no rating.
const DefaultRating = 4.0

// Key returns the case- and whitespace-normalized dedup key for the place.
func (p *Place) Key() string {
	return strings.ToLower(strings.Join(strings.Fields(p.Name), " "))
}

// ClosedOn reports whether the place cannot be visited on the given
// weekday (0=Sunday).
func (p *Place) ClosedOn(weekday int) bool {
	for _, d := range p.ClosedWeekdays {
		if d == weekday {
			return true
		}
	}
	return false
}
