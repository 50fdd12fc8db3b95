package handlers

import (
	"log"
	"net/http"

	"trip-itinerary-service/internal/api/dto"
	"trip-itinerary-service/internal/ports"
)

// PlaceHandler exposes read-only candidate place retrieval endpoints.
type PlaceHandler struct {
	Repo ports.PlaceRepository
}

func (h *PlaceHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	places, err := h.Repo.ListPlaces(r.Context())
	if err != nil {
		log.Printf("list places failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListPlacesResponse{
		Places: make([]dto.PlaceResponse, 0, len(places)),
	}
	for _, p := range places {
		pr := dto.PlaceResponse{
			Name:          p.Name,
			Category:      string(p.Category),
			Rating:        p.Rating,
			ReviewCount:   p.ReviewCount,
			PriceLevel:    p.PriceLevel,
			ClosedDays:    p.ClosedWeekdays,
			OpeningText:   p.OpeningText,
			DurationHours: p.DurationHours,
		}
		if p.Coord != nil {
			lat, lon := p.Coord.Lat, p.Coord.Lon
			pr.Latitude, pr.Longitude = &lat, &lon
		}
		res.Places = append(res.Places, pr)
	}

	writeJSON(w, r, http.StatusOK, res)
}
