package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"trip-itinerary-service/internal/api/dto"
	"trip-itinerary-service/internal/domain"
	"trip-itinerary-service/internal/services"
)

type stubPlaceRepository struct {
	places []*domain.Place
	err    error
}

func (r *stubPlaceRepository) ListPlaces(ctx context.Context) ([]*domain.Place, error) {
	return r.places, r.err
}

func validRequest() dto.PlanItineraryRequest {
	return dto.PlanItineraryRequest{
		StartDate: "2026-06-01",
		EndDate:   "2026-06-02",
		Travelers: 2,
		Budget:    dto.BudgetRequest{Amount: 2000, Currency: "eur"},
		Focus:     "culture",
		Lodgings: []dto.LodgingRequest{
			{
				Name:      "Baixa Hotel",
				CheckIn:   "2026-06-01",
				CheckOut:  "2026-06-03",
				Latitude:  ptrF(38.7118),
				Longitude: ptrF(-9.1365),
			},
		},
	}
}

func ptrF(v float64) *float64 { return &v }

func TestBuildTripValidation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*dto.PlanItineraryRequest)
		wantMsg string
	}{
		{
			name:    "bad start date",
			mutate:  func(r *dto.PlanItineraryRequest) { r.StartDate = "01/06/2026" },
			wantMsg: "start_date",
		},
		{
			name:    "end before start",
			mutate:  func(r *dto.PlanItineraryRequest) { r.StartDate, r.EndDate = r.EndDate, r.StartDate },
			wantMsg: "end_date must not precede",
		},
		{
			name:    "bad arrival clock",
			mutate:  func(r *dto.PlanItineraryRequest) { r.ArrivalTime = "9pm" },
			wantMsg: "HH:MM",
		},
		{
			name:    "too many travelers",
			mutate:  func(r *dto.PlanItineraryRequest) { r.Travelers = 50 },
			wantMsg: "travelers",
		},
		{
			name:    "negative budget",
			mutate:  func(r *dto.PlanItineraryRequest) { r.Budget.Amount = -1 },
			wantMsg: "budget.amount",
		},
		{
			name:    "no lodgings",
			mutate:  func(r *dto.PlanItineraryRequest) { r.Lodgings = nil },
			wantMsg: "at least one lodging",
		},
		{
			name:    "unnamed lodging",
			mutate:  func(r *dto.PlanItineraryRequest) { r.Lodgings[0].Name = "  " },
			wantMsg: "lodgings[0].name",
		},
		{
			name:    "checkout before checkin",
			mutate:  func(r *dto.PlanItineraryRequest) { r.Lodgings[0].CheckOut = "2026-05-30" },
			wantMsg: "check-in",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			_, _, msg := buildTrip(&req)
			if msg == "" {
				t.Fatal("expected a validation message")
			}
			if !strings.Contains(msg, tc.wantMsg) {
				t.Fatalf("message %q does not mention %q", msg, tc.wantMsg)
			}
		})
	}
}

func TestBuildTripDefaults(t *testing.T) {
	req := validRequest()
	req.Travelers = 0
	req.Pace = ""
	req.Transport = ""
	req.Focus = " CULTURE "

	trip, lodgings, msg := buildTrip(&req)
	if msg != "" {
		t.Fatalf("unexpected validation message: %q", msg)
	}
	if trip.Travelers != 1 {
		t.Fatalf("travelers = %d, want default 1", trip.Travelers)
	}
	if trip.Pace != domain.PaceModerate || trip.Transport != domain.TransportPublic {
		t.Fatalf("defaults not applied: pace=%q transport=%q", trip.Pace, trip.Transport)
	}
	if trip.Focus != domain.FocusCulture {
		t.Fatalf("focus = %q, want culture", trip.Focus)
	}
	if trip.Currency != "EUR" {
		t.Fatalf("currency = %q, want EUR", trip.Currency)
	}
	if lodgings[0].Coord == nil {
		t.Fatal("explicit lodging coordinates dropped")
	}
}

func TestPlanEndpoint(t *testing.T) {
	h := &ItineraryHandler{
		Repo: &stubPlaceRepository{places: []*domain.Place{
			{Name: "Monastery", Category: domain.CategoryCulture, Rating: 4.5, PriceLevel: 2,
				Coord: &domain.Coordinates{Lat: 38.7168, Lon: -9.1365}},
		}},
		Config: services.DefaultConfig(),
	}

	body, _ := json.Marshal(validRequest())
	r := httptest.NewRequest(http.MethodPost, "/itineraries", strings.NewReader(string(body)))
	w := httptest.NewRecorder()
	h.Plan(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var res dto.PlanItineraryResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.TotalDays != 2 || len(res.Days) != 2 {
		t.Fatalf("total_days=%d days=%d, want 2 and 2", res.TotalDays, len(res.Days))
	}
	for _, d := range res.Days {
		if len(d.Stops) == 0 {
			t.Fatalf("day %d has no stops", d.Day)
		}
	}
}

func TestPlanEndpointRejectsBadBodies(t *testing.T) {
	h := &ItineraryHandler{Config: services.DefaultConfig()}

	cases := []struct {
		name string
		body string
	}{
		{"not json", "{nope"},
		{"unknown field", `{"start_date":"2026-06-01","bogus":true}`},
		{"two objects", `{"start_date":"2026-06-01"}{"start_date":"2026-06-01"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/itineraries", strings.NewReader(tc.body))
			w := httptest.NewRecorder()
			h.Plan(w, r)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
		})
	}
}

func TestPlanEndpointEmptyPoolIsUnprocessable(t *testing.T) {
	h := &ItineraryHandler{
		Repo:   &stubPlaceRepository{},
		Config: services.DefaultConfig(),
	}

	body, _ := json.Marshal(validRequest())
	r := httptest.NewRequest(http.MethodPost, "/itineraries", strings.NewReader(string(body)))
	w := httptest.NewRecorder()
	h.Plan(w, r)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422; body = %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "no candidate places") {
		t.Fatalf("error body %q does not name the cause", w.Body.String())
	}
}

func TestPlanEndpointMethodNotAllowed(t *testing.T) {
	h := &ItineraryHandler{Config: services.DefaultConfig()}
	r := httptest.NewRequest(http.MethodGet, "/itineraries", nil)
	w := httptest.NewRecorder()
	h.Plan(w, r)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", w.Code)
	}
}
