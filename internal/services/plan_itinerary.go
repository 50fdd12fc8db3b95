package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/ports"
)

// ErrInvalidInput marks planning failures caused by the request's inputs
// (bad trip dates, missing lodgings, an empty candidate pool) rather than
// by infrastructure. The API layer maps it to a 422 response.
var ErrInvalidInput = errors.New("invalid planning input")

// PlanItinerary is the orchestration entry point: it materializes the
// immutable input snapshot (candidates from the repository, lodging
// coordinates via cache and geocoder) and hands it to the pure
// ranking/optimization core.
//
// Geocoding failures degrade to nil coordinates and are recovered inside
// the core; only missing inputs (no candidates, no lodgings, bad dates)
// are fatal.
func PlanItinerary(
	ctx context.Context,
	trip *domain.Trip,
	lodgings []*domain.Lodging,
	repo ports.PlaceRepository,
	geocoder ports.Geocoder,
	geocodeCache ports.GeocodeCache,
	cfg Config,
) (*domain.Itinerary, error) {
	if err := trip.Validate(); err != nil {
		return nil, fmt.Errorf("plan itinerary: %w: %w", ErrInvalidInput, err)
	}
	if len(lodgings) == 0 {
		return nil, fmt.Errorf("plan itinerary: %w: at least one lodging is required", ErrInvalidInput)
	}
	for _, l := range lodgings {
		if err := l.Validate(); err != nil {
			return nil, fmt.Errorf("plan itinerary: %w: %w", ErrInvalidInput, err)
		}
	}

	places, err := repo.ListPlaces(ctx)
	if err != nil {
		return nil, fmt.Errorf("plan itinerary: list places: %w", err)
	}

	places = dedupPlaces(places)
	if len(places) == 0 {
		return nil, fmt.Errorf("plan itinerary: %w: no candidate places found", ErrInvalidInput)
	}

	if err := resolveLodgingCoords(ctx, lodgings, geocoder, geocodeCache); err != nil {
		// Planning proceeds without coordinates; proximity terms degrade.
		log.Printf("plan itinerary: geocoding degraded err=%v", err)
	}

	itinerary, err := BuildItinerary(places, lodgings, trip, cfg)
	if err != nil {
		return nil, fmt.Errorf("plan itinerary: %w", err)
	}

	return itinerary, nil
}

// dedupPlaces drops duplicate candidates by normalized name, keeping the
// first occurrence so upstream ordering survives.
func dedupPlaces(places []*domain.Place) []*domain.Place {
	seen := make(map[string]struct{}, len(places))
	out := make([]*domain.Place, 0, len(places))
	for _, p := range places {
		key := p.Key()
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	return out
}

// resolveLodgingCoords fills missing lodging coordinates from the geocode
// cache first, then the geocoder, writing fresh results back to the cache.
func resolveLodgingCoords(
	ctx context.Context,
	lodgings []*domain.Lodging,
	geocoder ports.Geocoder,
	geocodeCache ports.GeocodeCache,
) error {
	pending := make(map[string][]*domain.Lodging)
	for _, l := range lodgings {
		if l.Coord != nil {
			continue
		}
		addr := strings.Join(strings.Fields(l.Address), " ")
		if addr == "" {
			continue
		}
		pending[addr] = append(pending[addr], l)
	}
	if len(pending) == 0 {
		return nil
	}

	addresses := make([]string, 0, len(pending))
	for addr := range pending {
		addresses = append(addresses, addr)
	}

	if geocodeCache != nil {
		cached, err := geocodeCache.GetMany(ctx, addresses)
		if err != nil {
			log.Printf("resolve lodging coords: cache read failed err=%v", err)
		} else {
			addresses = applyCoords(pending, cached, addresses)
		}
	}
	if len(addresses) == 0 {
		return nil
	}

	if geocoder == nil {
		return fmt.Errorf("resolve lodging coords: %d address(es) unresolved and no geocoder configured", len(addresses))
	}

	fresh, err := geocoder.GeocodeMany(ctx, addresses)
	if err != nil {
		return fmt.Errorf("resolve lodging coords: geocode: %w", err)
	}
	applyCoords(pending, fresh, addresses)

	if geocodeCache != nil && len(fresh) > 0 {
		if err := geocodeCache.PutMany(ctx, fresh); err != nil {
			log.Printf("resolve lodging coords: cache write failed err=%v", err)
		}
	}

	return nil
}

// applyCoords copies resolved coordinates onto their lodgings and returns
// the addresses still unresolved.
func applyCoords(
	pending map[string][]*domain.Lodging,
	resolved map[string]domain.Coordinates,
	addresses []string,
) []string {
	missing := make([]string, 0, len(addresses))
	for _, addr := range addresses {
		c, ok := resolved[addr]
		if !ok {
			missing = append(missing, addr)
			continue
		}
		coord := c
		for _, l := range pending[addr] {
			l.Coord = &coord
		}
	}
	return missing
}
