package services

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"trip-itinerary-service/internal/domain"
)

// Score populates the composite desirability score for a single candidate,
// along with its distance to the nearest lodging and a human-readable trace
// of the contributing terms. The trace feeds the downstream narrative stage
// only; no later algorithm logic reads it.
func Score(p *domain.Place, trip *domain.Trip, lodgings []*domain.Lodging, cfg Config) {
	var reasons []string

	rating := p.Rating
	if rating <= 0 {
		rating = domain.DefaultRating
	}
	ratingTerm := rating / 5 * 100
	reasons = append(reasons, fmt.Sprintf("rated %.1f/5", rating))

	interestTerm := interestMatch(p.Category, trip.Focus, &reasons)
	proximityTerm := proximity(p, lodgings, cfg, &reasons)
	budgetTerm := budgetFit(p, trip, cfg, &reasons)

	p.Score = round1(cfg.RatingWeight*ratingTerm +
		cfg.InterestWeight*interestTerm +
		cfg.ProximityWeight*proximityTerm +
		cfg.BudgetWeight*budgetTerm)
	p.AssignmentReason = strings.Join(reasons, "; ")
}

// Rank scores every candidate and returns them sorted descending by score.
// The sort is stable: equal scores preserve input order. The result is a
// permutation of the input; no records are dropped or duplicated.
func Rank(places []*domain.Place, trip *domain.Trip, lodgings []*domain.Lodging, cfg Config) []*domain.Place {
	ranked := make([]*domain.Place, len(places))
	copy(ranked, places)

	for _, p := range ranked {
		Score(p, trip, lodgings, cfg)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked
}

// interestMatch rates how well a place category fits the trip focus,
// normalized to 0-100.
func interestMatch(cat domain.Category, focus domain.Focus, reasons *[]string) float64 {
	switch {
	case string(cat) == string(focus):
		*reasons = append(*reasons, fmt.Sprintf("matches your %s focus", focus))
		return 100
	case focus == domain.FocusBalanced:
		*reasons = append(*reasons, "fits a balanced trip")
		return 80
	case cat == domain.CategorySightseeing && focus == domain.FocusCulture,
		cat == domain.CategoryCulture && focus == domain.FocusSightseeing:
		*reasons = append(*reasons, fmt.Sprintf("close to your %s focus", focus))
		return 80
	case cat == domain.CategorySightseeing:
		*reasons = append(*reasons, "classic sight worth a detour")
		return 70
	default:
		*reasons = append(*reasons, fmt.Sprintf("outside your %s focus", focus))
		return 40
	}
}

// proximity scores distance to the nearest lodging of the whole trip.
// Full credit at 0 km decaying linearly to 0 at ComfortRadiusKm; past
// OutlierRadiusKm a large raw penalty sorts the candidate to the bottom
// while keeping it eligible as a last resort. Unknown locations take a
// small raw penalty instead of a score.
func proximity(p *domain.Place, lodgings []*domain.Lodging, cfg Config, reasons *[]string) float64 {
	if p.Coord == nil {
		*reasons = append(*reasons, "location not resolved")
		return -cfg.NoCoordPenalty / cfg.ProximityWeight
	}

	nearest, ok := nearestLodgingCoord(*p.Coord, lodgings)
	if !ok {
		*reasons = append(*reasons, "no lodging location to compare against")
		return -cfg.NoCoordPenalty / cfg.ProximityWeight
	}

	dist := domain.DistanceKm(*p.Coord, nearest)
	p.DistanceFromLodgingKm = round1(dist)

	switch {
	case dist > cfg.OutlierRadiusKm:
		*reasons = append(*reasons, fmt.Sprintf("far from any lodging (%.0f km)", dist))
		return -cfg.OutlierPenalty / cfg.ProximityWeight
	case dist >= cfg.ComfortRadiusKm:
		*reasons = append(*reasons, fmt.Sprintf("%.1f km from lodging", dist))
		return 0
	default:
		*reasons = append(*reasons, fmt.Sprintf("%.1f km from lodging", dist))
		return (1 - dist/cfg.ComfortRadiusKm) * 100
	}
}

// budgetFit rewards price levels that match the trip's per-day budget.
// The threshold is currency-agnostic; upstream does not convert currencies.
func budgetFit(p *domain.Place, trip *domain.Trip, cfg Config, reasons *[]string) float64 {
	daily := trip.DailyBudget()
	if daily <= 0 || daily >= cfg.LowDailyBudget {
		*reasons = append(*reasons, "within budget")
		return 70
	}

	switch {
	case p.PriceLevel <= 2:
		*reasons = append(*reasons, "easy on a tight budget")
		return 90
	case p.PriceLevel == 3:
		*reasons = append(*reasons, "a bit pricey for the budget")
		return 40
	default:
		*reasons = append(*reasons, "expensive for the budget")
		return 20
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
