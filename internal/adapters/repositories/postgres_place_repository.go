package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"trip-itinerary-service/internal/domain"
)

// Postgres-backed implementation of the PlaceRepository port.
type PostgresPlaceRepository struct{ DB *sql.DB }

func NewPostgresPlaceRepository(db *sql.DB) *PostgresPlaceRepository {
	return &PostgresPlaceRepository{DB: db}
}

// Return all candidate places stored in the database, ordered by name for
// stable downstream ranking.
func (s *PostgresPlaceRepository) ListPlaces(ctx context.Context) ([]*domain.Place, error) {
	if s.DB == nil {
		return nil, errors.New("postgres place repository: DB is nil")
	}

	query := `
	SELECT
		name, category, rating, review_count, price_level,
		lat, lon, closed_days, opening_text, duration_hours
	FROM places
	ORDER BY name;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list places: query places table: %w", err)
	}
	defer rows.Close()

	places := make([]*domain.Place, 0, 64)
	for rows.Next() {
		var (
			name, category, closedDays, openingText string
			rating, durationHours                   float64
			reviewCount, priceLevel                 int
			lat, lon                                sql.NullFloat64
		)
		if err := rows.Scan(
			&name, &category, &rating, &reviewCount, &priceLevel,
			&lat, &lon, &closedDays, &openingText, &durationHours,
		); err != nil {
			return nil, fmt.Errorf("list places: scan row: %w", err)
		}

		p := &domain.Place{
			Name:          name,
			Category:      domain.ParseCategory(category),
			Rating:        rating,
			ReviewCount:   reviewCount,
			PriceLevel:    priceLevel,
			OpeningText:   openingText,
			DurationHours: durationHours,
		}
		if lat.Valid && lon.Valid {
			p.Coord = &domain.Coordinates{Lat: lat.Float64, Lon: lon.Float64}
		}
		p.ClosedWeekdays, err = decodeClosedDays(closedDays)
		if err != nil {
			return nil, fmt.Errorf("list places: place %q: %w", name, err)
		}

		places = append(places, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list places: row iteration: %w", err)
	}

	return places, nil
}

// Closed weekdays are stored as a comma-separated list ("0,2") so the rows
// scan through database/sql without array type mapping.
func encodeClosedDays(days []int) string {
	if len(days) == 0 {
		return ""
	}
	parts := make([]string, len(days))
	for i, d := range days {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ",")
}

func decodeClosedDays(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	days := make([]int, 0, len(parts))
	for _, p := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("decode closed days %q: %w", s, err)
		}
		if d < 0 || d > 6 {
			return nil, fmt.Errorf("decode closed days: weekday %d out of range 0-6", d)
		}
		days = append(days, d)
	}
	return days, nil
}
