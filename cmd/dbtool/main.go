package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"concrete-booking-service/internal/adapters/repositories"
	"concrete-booking-service/internal/config"
	"concrete-booking-service/internal/platform/db"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// dbtool provisions the booking schema on a managed Postgres instance and
// loads the same seed file the local SQLite server uses.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	log.Println("Initializing database schema...")
	if err := initSchemaPG(db); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	seedPath := config.Get("SEED_PATH", "data/seeds/bookings.json")
	log.Println("Seeding database...")
	if err := seedPG(db, seedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")
}

func initSchemaPG(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS sites (
			site_id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			lat DOUBLE PRECISION,
			lon DOUBLE PRECISION
		);`,
		`CREATE TABLE IF NOT EXISTS bookings (
			booking_id TEXT PRIMARY KEY,
			site_id TEXT NOT NULL,
			start_at TEXT NOT NULL,
			duration_minutes INTEGER NOT NULL,
			quantity_m3 TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'active'
		);`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_status_start_at
		ON bookings(status, start_at);`,
	}

	for i, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	return nil
}

// seedPG loads the shared JSON seed file with Postgres-flavored upserts.
func seedPG(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed data: read %q: %w", jsonPath, err)
	}

	var data repositories.SeedFile
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed data: parse json: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed data: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	siteQuery := `
	INSERT INTO sites (site_id, name, lat, lon)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (site_id) DO UPDATE
	SET name = EXCLUDED.name, lat = EXCLUDED.lat, lon = EXCLUDED.lon;
	`
	for _, s := range data.Sites {
		if _, err := tx.Exec(siteQuery, s.SiteID, s.Name, s.Lat, s.Lon); err != nil {
			return fmt.Errorf("seed data: insert site_id=%s: %w", s.SiteID, err)
		}
	}

	bookingQuery := `
	INSERT INTO bookings (booking_id, site_id, start_at, duration_minutes, quantity_m3, status)
	VALUES ($1, $2, $3, $4, $5, 'active')
	ON CONFLICT (booking_id) DO UPDATE
	SET site_id = EXCLUDED.site_id,
		start_at = EXCLUDED.start_at,
		duration_minutes = EXCLUDED.duration_minutes,
		quantity_m3 = EXCLUDED.quantity_m3;
	`
	for _, b := range data.Bookings {
		if _, err := tx.Exec(bookingQuery, b.BookingID, b.SiteID, b.StartAt, b.DurationMinutes, b.QuantityM3); err != nil {
			return fmt.Errorf("seed data: insert booking_id=%s: %w", b.BookingID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed data: commit tx: %w", err)
	}

	return nil
}
