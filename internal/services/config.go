package services

// Config gathers every tunable constant of the scoring and routing
// heuristics in one place. The values are representative defaults, not
// calibrated truths; callers that need different behavior override fields
// on DefaultConfig() rather than forking the algorithms.
type Config struct {
	// Scoring term weights. Each term is normalized to 0-100 before
	// weighting, so the weights express relative importance directly.
	RatingWeight    float64
	InterestWeight  float64
	ProximityWeight float64
	BudgetWeight    float64

	// Proximity decay: full credit at 0 km, linearly down to 0 at
	// ComfortRadiusKm. Beyond OutlierRadiusKm the candidate takes
	// OutlierPenalty (applied raw, outside the 0-100 normalization) so it
	// sorts to the bottom without being excluded.
	ComfortRadiusKm  float64
	OutlierRadiusKm  float64
	OutlierPenalty   float64
	NoCoordPenalty   float64 // unknown location is mildly bad, not good
	LowDailyBudget   float64 // per-day budget below this counts as "low"
	DistanceScoreDiv float64 // greedy weight = km - score/DistanceScoreDiv

	// Geofence applied per day against the active lodging (and the airport
	// on day 1). Widened by WidenFactor when the remaining pool is small,
	// so late trip days are not systematically starved.
	GeofenceRadiusKm float64
	WidenFactor      float64
	SmallPoolPerDay  int

	// Day balancing: a day commits at most its even share of the remaining
	// pool (ceil(remaining / days left)), further capped by the trip pace's
	// stop ceiling. Keeps early days from swallowing candidates that later
	// days could host.
	RelaxedDayStops  int
	ModerateDayStops int
	PackedDayStops   int

	// Travel-time simulation: fixed-speed distance approximation plus a
	// constant per-hop overhead (parking, finding the entrance, tickets).
	SpeedKmh          float64
	HopOverheadHours  float64
	DefaultVisitHours float64

	// Day operating window, in fractional hours since midnight.
	DayStartHour         float64
	DayEndHour           float64
	ArrivalBufferHours   float64 // rest after landing before the first stop
	DepartureBufferHours float64 // airport lead time before takeoff
	MinWindowHours       float64 // below this the day is a pure transit day
	FlexHours            float64 // tolerated overflow past the window end
}

// DefaultConfig returns the tuned defaults used in production.
func DefaultConfig() Config {
	return Config{
		RatingWeight:    0.3,
		InterestWeight:  0.4,
		ProximityWeight: 0.2,
		BudgetWeight:    0.1,

		ComfortRadiusKm:  25,
		OutlierRadiusKm:  90,
		OutlierPenalty:   200,
		NoCoordPenalty:   15,
		LowDailyBudget:   150,
		DistanceScoreDiv: 10,

		GeofenceRadiusKm: 40,
		WidenFactor:      2,
		SmallPoolPerDay:  3,

		RelaxedDayStops:  2,
		ModerateDayStops: 4,
		PackedDayStops:   6,

		SpeedKmh:          25,
		HopOverheadHours:  0.25,
		DefaultVisitHours: 1.5,

		DayStartHour:         9,
		DayEndHour:           20,
		ArrivalBufferHours:   1.5,
		DepartureBufferHours: 2,
		MinWindowHours:       1.5,
		FlexHours:            0.5,
	}
}
