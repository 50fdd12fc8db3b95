package ports

import (
	"context"

	"trip-itinerary-service/internal/domain"
)

// Port: a boundary for retrieving candidate Place entities from a data source.
type PlaceRepository interface {
	// Retrieve all candidate places available for planning.
	ListPlaces(ctx context.Context) ([]*domain.Place, error)
}
