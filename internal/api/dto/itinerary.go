package dto

type BudgetRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type CoordRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type LodgingRequest struct {
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	CheckIn   string   `json:"check_in"`  // YYYY-MM-DD
	CheckOut  string   `json:"check_out"` // YYYY-MM-DD
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

type PlanItineraryRequest struct {
	StartDate     string           `json:"start_date"` // YYYY-MM-DD
	EndDate       string           `json:"end_date"`   // YYYY-MM-DD
	ArrivalTime   string           `json:"arrival_time,omitempty"`   // HH:MM on day 1
	DepartureTime string           `json:"departure_time,omitempty"` // HH:MM on the final day
	Travelers     int              `json:"travelers"`
	Budget        BudgetRequest    `json:"budget"`
	Pace          string           `json:"pace,omitempty"`
	Focus         string           `json:"focus,omitempty"`
	Transport     string           `json:"transport,omitempty"`
	Lodgings      []LodgingRequest `json:"lodgings"`
	Airport       *CoordRequest    `json:"airport,omitempty"`
}

type ItineraryStopResponse struct {
	Name                  string   `json:"name"`
	Category              string   `json:"category"`
	AssignedDay           int      `json:"assigned_day"`
	Score                 float64  `json:"score"`
	DistanceFromLodgingKm float64  `json:"distance_from_lodging_km"`
	AssignmentReason      string   `json:"assignment_reason"`
	DurationHours         float64  `json:"duration_hours"`
	Latitude              *float64 `json:"latitude,omitempty"`
	Longitude             *float64 `json:"longitude,omitempty"`
	Synthetic             bool     `json:"synthetic,omitempty"`
}

type ItineraryDayResponse struct {
	Day     int                     `json:"day"`
	Date    string                  `json:"date"`
	Lodging string                  `json:"lodging"`
	Stops   []ItineraryStopResponse `json:"stops"`
}

type PlanItineraryResponse struct {
	TotalDays int                    `json:"total_days"`
	Days      []ItineraryDayResponse `json:"days"`
}
