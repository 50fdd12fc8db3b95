package ports

import (
	"context"

	"trip-itinerary-service/internal/domain"
)

// Contract for resolving address text into coordinates.
// Addresses that cannot be resolved are simply absent from the result map;
// geocoding failure is never fatal to planning.
type Geocoder interface {
	// Resolve many addresses at once. Implementations deduplicate input.
	GeocodeMany(ctx context.Context, addresses []string) (map[string]domain.Coordinates, error)
}

// Persistent address -> coordinates cache in front of a Geocoder.
type GeocodeCache interface {
	GetMany(ctx context.Context, addresses []string) (map[string]domain.Coordinates, error)
	PutMany(ctx context.Context, results map[string]domain.Coordinates) error
}
