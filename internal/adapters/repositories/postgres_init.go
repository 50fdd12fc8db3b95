package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the Postgres database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createPlacesQuery := `
	CREATE TABLE IF NOT EXISTS places (
		name TEXT PRIMARY KEY,
		category TEXT NOT NULL,
		rating DOUBLE PRECISION NOT NULL DEFAULT 0,
		review_count INTEGER NOT NULL DEFAULT 0,
		price_level INTEGER NOT NULL DEFAULT 0,
		lat DOUBLE PRECISION,
		lon DOUBLE PRECISION,
		closed_days TEXT NOT NULL DEFAULT '',
		opening_text TEXT NOT NULL DEFAULT '',
		duration_hours DOUBLE PRECISION NOT NULL DEFAULT 0
	);
	`

	createGeocodeCacheQuery := `
	CREATE TABLE IF NOT EXISTS geocode_cache (
        address TEXT PRIMARY KEY,
        lon DOUBLE PRECISION NOT NULL,
        lat DOUBLE PRECISION NOT NULL
    );
	`

	statements := []string{
		createPlacesQuery,
		createGeocodeCacheQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type PlaceSeed struct {
	Name          string   `json:"name"`
	Category      string   `json:"category"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"reviewCount"`
	PriceLevel    int      `json:"priceLevel"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	ClosedDays    []int    `json:"closedDays"`
	OpeningText   string   `json:"openingText"`
	DurationHours float64  `json:"durationHours"`
}

// Populate the database with candidate place data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed places: read %q: %w", jsonPath, err)
	}

	var data []PlaceSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed places: parse json: %w", err)
	}

	for i, item := range data {
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("seed places: item at index %d: name cannot be empty", i+1)
		}
		for _, d := range item.ClosedDays {
			if d < 0 || d > 6 {
				return fmt.Errorf("seed places: item %q: closed day %d out of range 0-6", item.Name, d)
			}
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed places: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO places (
		name, category, rating, review_count, price_level,
		lat, lon, closed_days, opening_text, duration_hours
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (name) DO UPDATE
	SET category = EXCLUDED.category,
		rating = EXCLUDED.rating,
		review_count = EXCLUDED.review_count,
		price_level = EXCLUDED.price_level,
		lat = EXCLUDED.lat,
		lon = EXCLUDED.lon,
		closed_days = EXCLUDED.closed_days,
		opening_text = EXCLUDED.opening_text,
		duration_hours = EXCLUDED.duration_hours;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed places: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range data {
		name := strings.TrimSpace(p.Name)
		if _, err := stmt.Exec(
			name, p.Category, p.Rating, p.ReviewCount, p.PriceLevel,
			p.Latitude, p.Longitude, encodeClosedDays(p.ClosedDays),
			p.OpeningText, p.DurationHours,
		); err != nil {
			return fmt.Errorf("seed places: insert name=%q: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed places: commit tx: %w", err)
	}

	return nil
}
