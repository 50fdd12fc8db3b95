package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"

	"trip-itinerary-service/internal/adapters/cache"
	"trip-itinerary-service/internal/adapters/geocode"
	"trip-itinerary-service/internal/adapters/repositories"
	"trip-itinerary-service/internal/api"
	"trip-itinerary-service/internal/platform/db"
	"trip-itinerary-service/internal/ports"
	"trip-itinerary-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis, ORS) behind ports and starts
// the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	orsKey := os.Getenv("ORS_API_KEY")
	if strings.TrimSpace(orsKey) == "" {
		log.Fatal("ORS_API_KEY is required")
	}

	seedPath := getEnv("SEED_PATH", "data/seeds/places.json")
	port := getEnv("PORT", "8080")

	database, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close()

	// Initialize schema and seed demo data on startup for local runs.
	if err := repositories.InitSchema(database); err != nil {
		log.Fatal(err)
	}
	if err := repositories.SeedFromJSON(database, seedPath); err != nil {
		log.Fatal(err)
	}

	geocoder, err := geocode.NewORSGeocoder(orsKey)
	if err != nil {
		log.Fatal(err)
	}

	// Geocode cache: Redis when configured, Postgres otherwise.
	var geocodeCache ports.GeocodeCache = cache.NewSQLGeocodeCache(database)
	if addr := os.Getenv("REDIS_ADDR"); strings.TrimSpace(addr) != "" {
		client := redis.NewClient(&redis.Options{Addr: addr})
		geocodeCache = cache.NewRedisGeocodeCache(client)
		log.Printf("geocode cache backend=redis addr=%s", addr)
	} else {
		log.Printf("geocode cache backend=postgres")
	}

	repo := repositories.NewPostgresPlaceRepository(database)
	router := api.NewRouter(repo, geocoder, geocodeCache, services.DefaultConfig())

	// Timeouts are tuned for cold-cache itinerary planning (external
	// geocoding latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
