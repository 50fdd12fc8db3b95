package services

import (
	"testing"

	"trip-itinerary-service/internal/domain"
)

func scoringTrip() *domain.Trip {
	return &domain.Trip{
		Start:     date(2026, 6, 1),
		End:       date(2026, 6, 5),
		Travelers: 2,
		Budget:    2000,
		Currency:  "EUR",
		Pace:      domain.PaceModerate,
		Focus:     domain.FocusCulture,
		Transport: domain.TransportPublic,
	}
}

func nearBaixa(latOffset float64) *domain.Coordinates {
	return &domain.Coordinates{Lat: 38.7118 + latOffset, Lon: -9.1365}
}

func TestRankIsStablePermutation(t *testing.T) {
	trip := scoringTrip()
	lodgings := lisbonLodgings()

	places := []*domain.Place{
		{Name: "Azulejo Museum", Category: domain.CategoryCulture, Rating: 4.5, PriceLevel: 2, Coord: nearBaixa(0.01)},
		{Name: "Twin A", Category: domain.CategoryFood, Rating: 4.0, PriceLevel: 2, Coord: nearBaixa(0.02)},
		{Name: "Twin B", Category: domain.CategoryFood, Rating: 4.0, PriceLevel: 2, Coord: nearBaixa(0.02)},
		{Name: "Flea Market", Category: domain.CategoryShopping, Rating: 3.5, PriceLevel: 1, Coord: nearBaixa(0.015)},
	}

	ranked := Rank(places, trip, lodgings, DefaultConfig())

	if len(ranked) != len(places) {
		t.Fatalf("rank returned %d records, want %d", len(ranked), len(places))
	}
	seen := map[string]int{}
	for _, p := range ranked {
		seen[p.Name]++
	}
	for _, p := range places {
		if seen[p.Name] != 1 {
			t.Fatalf("place %q appears %d times in ranking", p.Name, seen[p.Name])
		}
	}

	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Fatalf("ranking not descending at %d: %v > %v", i, ranked[i].Score, ranked[i-1].Score)
		}
	}

	// Identical twins tie on every term; stability keeps input order.
	posA, posB := -1, -1
	for i, p := range ranked {
		switch p.Name {
		case "Twin A":
			posA = i
		case "Twin B":
			posB = i
		}
	}
	if ranked[posA].Score != ranked[posB].Score {
		t.Fatalf("twins scored differently: %v vs %v", ranked[posA].Score, ranked[posB].Score)
	}
	if posA > posB {
		t.Fatal("stable sort should keep Twin A before Twin B")
	}
}

func TestScoreFocusMatchOutranksMismatch(t *testing.T) {
	trip := scoringTrip() // focus: culture
	lodgings := lisbonLodgings()
	cfg := DefaultConfig()

	match := &domain.Place{Name: "Gulbenkian", Category: domain.CategoryCulture, Rating: 4.0, PriceLevel: 2, Coord: nearBaixa(0.01)}
	miss := &domain.Place{Name: "Outlet Mall", Category: domain.CategoryShopping, Rating: 4.0, PriceLevel: 2, Coord: nearBaixa(0.01)}

	Score(match, trip, lodgings, cfg)
	Score(miss, trip, lodgings, cfg)

	if match.Score <= miss.Score {
		t.Fatalf("focus match score %v should exceed mismatch score %v", match.Score, miss.Score)
	}
}

func TestScoreOutlierPenalizedButRetained(t *testing.T) {
	trip := scoringTrip()
	lodgings := lisbonLodgings()
	cfg := DefaultConfig()

	// Roughly 150 km north of every lodging.
	remote := &domain.Place{
		Name: "Remote Vineyard", Category: domain.CategoryCulture, Rating: 4.9, PriceLevel: 2,
		Coord: &domain.Coordinates{Lat: 40.1, Lon: -9.1365},
	}
	near := &domain.Place{Name: "City Museum", Category: domain.CategoryCulture, Rating: 3.0, PriceLevel: 2, Coord: nearBaixa(0.01)}

	ranked := Rank([]*domain.Place{remote, near}, trip, lodgings, cfg)

	if ranked[0].Name != "City Museum" {
		t.Fatalf("outlier ranked first despite penalty: %q", ranked[0].Name)
	}
	if len(ranked) != 2 {
		t.Fatal("outlier must stay in the ranked list")
	}
	if remote.Score >= 0 {
		t.Fatalf("outlier score = %v, want strongly negative", remote.Score)
	}
	if remote.DistanceFromLodgingKm < 100 {
		t.Fatalf("outlier distance = %v km, want > 100", remote.DistanceFromLodgingKm)
	}
}

func TestScoreUnknownLocationIsMildlyBad(t *testing.T) {
	trip := scoringTrip()
	lodgings := lisbonLodgings()
	cfg := DefaultConfig()

	unknown := &domain.Place{Name: "Mystery Spot", Category: domain.CategoryCulture, Rating: 4.0, PriceLevel: 2}
	near := &domain.Place{Name: "Known Spot", Category: domain.CategoryCulture, Rating: 4.0, PriceLevel: 2, Coord: nearBaixa(0.005)}
	remote := &domain.Place{
		Name: "Far Spot", Category: domain.CategoryCulture, Rating: 4.0, PriceLevel: 2,
		Coord: &domain.Coordinates{Lat: 40.1, Lon: -9.1365},
	}

	Score(unknown, trip, lodgings, cfg)
	Score(near, trip, lodgings, cfg)
	Score(remote, trip, lodgings, cfg)

	if unknown.Score >= near.Score {
		t.Fatalf("unknown location %v should score below nearby %v", unknown.Score, near.Score)
	}
	if unknown.Score <= remote.Score {
		t.Fatalf("unknown location %v should score above hard outlier %v", unknown.Score, remote.Score)
	}
}

func TestScoreMissingRatingDefaultsTo4(t *testing.T) {
	trip := scoringTrip()
	lodgings := lisbonLodgings()
	cfg := DefaultConfig()

	unrated := &domain.Place{Name: "New Opening", Category: domain.CategoryCulture, PriceLevel: 2, Coord: nearBaixa(0.01)}
	rated := &domain.Place{Name: "Established", Category: domain.CategoryCulture, Rating: 4.0, PriceLevel: 2, Coord: nearBaixa(0.01)}

	Score(unrated, trip, lodgings, cfg)
	Score(rated, trip, lodgings, cfg)

	if unrated.Score != rated.Score {
		t.Fatalf("missing rating score %v, want %v (default 4.0)", unrated.Score, rated.Score)
	}
}

func TestScoreBudgetFit(t *testing.T) {
	lodgings := lisbonLodgings()
	cfg := DefaultConfig()

	tight := scoringTrip()
	tight.Budget = 200 // 40/day over a 5-day trip, well under the threshold

	cheap := &domain.Place{Name: "Tasca", Category: domain.CategoryCulture, Rating: 4.0, PriceLevel: 1, Coord: nearBaixa(0.01)}
	fancy := &domain.Place{Name: "Michelin Room", Category: domain.CategoryCulture, Rating: 4.0, PriceLevel: 4, Coord: nearBaixa(0.01)}

	Score(cheap, tight, lodgings, cfg)
	Score(fancy, tight, lodgings, cfg)

	if cheap.Score <= fancy.Score {
		t.Fatalf("on a tight budget cheap %v should outscore fancy %v", cheap.Score, fancy.Score)
	}

	// With a generous budget the price level stops mattering.
	rich := scoringTrip()
	rich.Budget = 10000

	cheap2 := &domain.Place{Name: "Tasca", Category: domain.CategoryCulture, Rating: 4.0, PriceLevel: 1, Coord: nearBaixa(0.01)}
	fancy2 := &domain.Place{Name: "Michelin Room", Category: domain.CategoryCulture, Rating: 4.0, PriceLevel: 4, Coord: nearBaixa(0.01)}

	Score(cheap2, rich, lodgings, cfg)
	Score(fancy2, rich, lodgings, cfg)

	if cheap2.Score != fancy2.Score {
		t.Fatalf("with a generous budget scores should match: %v vs %v", cheap2.Score, fancy2.Score)
	}
}

func TestScoreReasonMentionsContributingTerms(t *testing.T) {
	trip := scoringTrip()
	lodgings := lisbonLodgings()

	p := &domain.Place{Name: "Gulbenkian", Category: domain.CategoryCulture, Rating: 4.7, PriceLevel: 2, Coord: nearBaixa(0.01)}
	Score(p, trip, lodgings, DefaultConfig())

	if p.AssignmentReason == "" {
		t.Fatal("assignment reason must be populated for the narrative stage")
	}
}
