package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"trip-itinerary-service/internal/api/dto"
	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/ports"
	"trip-itinerary-service/internal/services"
)

type ItineraryHandler struct {
	Repo         ports.PlaceRepository
	Geocoder     ports.Geocoder
	GeocodeCache ports.GeocodeCache
	Config       services.Config
}

// Plan orchestrates candidate ranking and day-partitioned route
// optimization for one trip. It coordinates repository access, lodging
// geocoding, and the planning core.
func (h *ItineraryHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.PlanItineraryRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	trip, lodgings, errMsg := buildTrip(&req)
	if errMsg != "" {
		writeError(w, r, http.StatusBadRequest, errMsg)
		return
	}

	itinerary, err := services.PlanItinerary(r.Context(), trip, lodgings, h.Repo, h.Geocoder, h.GeocodeCache, h.Config)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			writeError(w, r, http.StatusUnprocessableEntity, err.Error())
			return
		}
		log.Printf("plan itinerary failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toPlanResponse(itinerary))
}

// buildTrip validates the request and maps it onto domain inputs.
// Returns a non-empty message describing the first rejected field.
func buildTrip(req *dto.PlanItineraryRequest) (*domain.Trip, []*domain.Lodging, string) {
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, nil, "start_date must be formatted YYYY-MM-DD"
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, nil, "end_date must be formatted YYYY-MM-DD"
	}
	if end.Before(start) {
		return nil, nil, "end_date must not precede start_date"
	}

	for _, clock := range []string{req.ArrivalTime, req.DepartureTime} {
		if _, _, err := domain.ParseClock(clock); err != nil {
			return nil, nil, "arrival_time and departure_time must be formatted HH:MM"
		}
	}

	travelers := req.Travelers
	if travelers == 0 {
		travelers = 1
	}
	if travelers < 1 || travelers > 20 {
		return nil, nil, "travelers must be between 1 and 20"
	}

	if req.Budget.Amount < 0 {
		return nil, nil, "budget.amount must not be negative"
	}

	if len(req.Lodgings) == 0 {
		return nil, nil, "at least one lodging is required"
	}

	lodgings := make([]*domain.Lodging, 0, len(req.Lodgings))
	for i, l := range req.Lodgings {
		checkIn, err := time.Parse("2006-01-02", l.CheckIn)
		if err != nil {
			return nil, nil, fmt.Sprintf("lodgings[%d].check_in must be formatted YYYY-MM-DD", i)
		}
		checkOut, err := time.Parse("2006-01-02", l.CheckOut)
		if err != nil {
			return nil, nil, fmt.Sprintf("lodgings[%d].check_out must be formatted YYYY-MM-DD", i)
		}

		lodging := &domain.Lodging{
			Name:     strings.TrimSpace(l.Name),
			Address:  strings.TrimSpace(l.Address),
			CheckIn:  checkIn,
			CheckOut: checkOut,
		}
		if lodging.Name == "" {
			return nil, nil, fmt.Sprintf("lodgings[%d].name is required", i)
		}
		if l.Latitude != nil && l.Longitude != nil {
			lodging.Coord = &domain.Coordinates{Lat: *l.Latitude, Lon: *l.Longitude}
		}
		if err := lodging.Validate(); err != nil {
			return nil, nil, err.Error()
		}
		lodgings = append(lodgings, lodging)
	}

	trip := &domain.Trip{
		Start:         start,
		End:           end,
		ArrivalTime:   req.ArrivalTime,
		DepartureTime: req.DepartureTime,
		Travelers:     travelers,
		Budget:        req.Budget.Amount,
		Currency:      strings.ToUpper(strings.TrimSpace(req.Budget.Currency)),
		Pace:          domain.Pace(defaultStr(req.Pace, string(domain.PaceModerate))),
		Focus:         domain.Focus(defaultStr(req.Focus, string(domain.FocusBalanced))),
		Transport:     domain.Transport(defaultStr(req.Transport, string(domain.TransportPublic))),
	}
	if req.Airport != nil {
		trip.Airport = &domain.Coordinates{Lat: req.Airport.Latitude, Lon: req.Airport.Longitude}
	}

	return trip, lodgings, ""
}

func defaultStr(v, fallback string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return fallback
	}
	return v
}

func toPlanResponse(it *domain.Itinerary) dto.PlanItineraryResponse {
	res := dto.PlanItineraryResponse{
		TotalDays: len(it.Days),
		Days:      make([]dto.ItineraryDayResponse, 0, len(it.Days)),
	}
	for _, d := range it.Days {
		day := dto.ItineraryDayResponse{
			Day:     d.Day,
			Date:    d.Date.Format("2006-01-02"),
			Lodging: d.Lodging,
			Stops:   make([]dto.ItineraryStopResponse, 0, len(d.Stops)),
		}
		for _, s := range d.Stops {
			stop := dto.ItineraryStopResponse{
				Name:                  s.Name,
				Category:              string(s.Category),
				AssignedDay:           s.AssignedDay,
				Score:                 s.Score,
				DistanceFromLodgingKm: s.DistanceFromLodgingKm,
				AssignmentReason:      s.AssignmentReason,
				DurationHours:         s.DurationHours,
				Synthetic:             s.Synthetic,
			}
			if s.Coord != nil {
				lat, lon := s.Coord.Lat, s.Coord.Lon
				stop.Latitude, stop.Longitude = &lat, &lon
			}
			day.Stops = append(day.Stops, stop)
		}
		res.Days = append(res.Days, day)
	}
	return res
}
