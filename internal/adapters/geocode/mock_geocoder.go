package geocode

import (
	"context"

	"trip-itinerary-service/internal/domain"
)

type MockEntry struct {
	Address string
	Lon     float64
	Lat     float64
}

// MockGeocoder serves a fixed address book; unknown addresses resolve to
// nothing, the same contract as the real geocoder.
type MockGeocoder struct {
	m map[string]domain.Coordinates
}

func NewMockGeocoder(entries []MockEntry) *MockGeocoder {
	m := make(map[string]domain.Coordinates, len(entries))
	for _, e := range entries {
		m[e.Address] = domain.Coordinates{Lon: e.Lon, Lat: e.Lat}
	}
	return &MockGeocoder{m: m}
}

func (g *MockGeocoder) GeocodeMany(ctx context.Context, addresses []string) (map[string]domain.Coordinates, error) {
	out := make(map[string]domain.Coordinates, len(addresses))
	for _, a := range addresses {
		if c, ok := g.m[a]; ok {
			out[a] = c
		}
	}
	return out, nil
}
