package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"concrete-booking-service/internal/adapters/repositories"
	"concrete-booking-service/internal/api"
	"concrete-booking-service/internal/config"
	"concrete-booking-service/internal/schedule"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It wires the SQLite-backed adapters behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/bookings.json")
	port := config.Get("PORT", "8080")

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and seed demo data on startup for local runs.
	if err := repositories.InitSchema(db); err != nil {
		log.Fatal(err)
	}
	if _, err := os.Stat(seedPath); err == nil {
		if err := repositories.SeedFromJSON(db, seedPath); err != nil {
			log.Fatal(err)
		}
	} else {
		log.Printf("No seed file at %s, starting with existing data", seedPath)
	}

	repo := repositories.NewSQLBookingRepository(db)
	sites := repositories.NewSQLSiteDirectory(db)
	router := api.NewRouter(repo, sites, loadCheckConfig())

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// loadCheckConfig starts from the production defaults and applies any
// environment overrides, so dispatch constants can be tuned per deployment.
func loadCheckConfig() schedule.CheckConfig {
	cfg := schedule.DefaultCheckConfig()

	if v := config.Get("AVG_SPEED_KMH", ""); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.AvgSpeedKmh = f
		}
	}
	if v := config.Get("QUARRY_RELOAD_MIN", ""); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.QuarryReloadMinutes = n
		}
	}
	if v := config.Get("TRUCK_CAPACITY_M3", ""); v != "" {
		if d, err := decimal.NewFromString(v); err == nil && d.IsPositive() {
			cfg.TruckCapacityM3 = d
		}
	}

	return cfg
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}
