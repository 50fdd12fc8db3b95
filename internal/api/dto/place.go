package dto

type PlaceResponse struct {
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"review_count"`
	PriceLevel    int      `json:"price_level"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	ClosedDays    []int    `json:"closed_days,omitempty"`
	OpeningText   string   `json:"opening_text,omitempty"`
	DurationHours float64  `json:"duration_hours"`
}

type ListPlacesResponse struct {
	Places []PlaceResponse `json:"places"`
}
