package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createSitesQuery := `
	CREATE TABLE IF NOT EXISTS sites (
		site_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		lat REAL,
		lon REAL
	);
	`

	createBookingsQuery := `
	CREATE TABLE IF NOT EXISTS bookings (
		booking_id TEXT PRIMARY KEY,
		site_id TEXT NOT NULL,
		start_at TEXT NOT NULL,
		duration_minutes INTEGER NOT NULL,
		quantity_m3 TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'active'
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_bookings_status_start_at
	ON bookings(status, start_at);
	`

	statements := []string{
		createSitesQuery,
		createBookingsQuery,
		createIndexQuery,
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

type SiteSeed struct {
	SiteID string   `json:"site_id"`
	Name   string   `json:"name"`
	Lat    *float64 `json:"lat"`
	Lon    *float64 `json:"lon"`
}

type BookingSeed struct {
	BookingID       string `json:"booking_id"`
	SiteID          string `json:"site_id"`
	StartAt         string `json:"start_at"`
	DurationMinutes int    `json:"duration_minutes"`
	QuantityM3      string `json:"quantity_m3"`
}

type SeedFile struct {
	Sites    []SiteSeed    `json:"sites"`
	Bookings []BookingSeed `json:"bookings"`
}

// Populate the database with site and booking data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed data: read %q: %w", jsonPath, err)
	}

	var data SeedFile
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed data: parse json: %w", err)
	}

	for i, s := range data.Sites {
		if strings.TrimSpace(s.SiteID) == "" {
			return fmt.Errorf("seed data: site at index %d: site_id cannot be empty", i+1)
		}
	}
	for i, b := range data.Bookings {
		if strings.TrimSpace(b.BookingID) == "" {
			return fmt.Errorf("seed data: booking at index %d: booking_id cannot be empty", i+1)
		}
		if _, err := time.Parse(time.RFC3339, b.StartAt); err != nil {
			return fmt.Errorf("seed data: booking %q: invalid start_at: %w", b.BookingID, err)
		}
		if b.DurationMinutes <= 0 {
			return fmt.Errorf("seed data: booking %q: duration_minutes must be positive", b.BookingID)
		}
		if _, err := decimal.NewFromString(b.QuantityM3); err != nil {
			return fmt.Errorf("seed data: booking %q: invalid quantity_m3: %w", b.BookingID, err)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed data: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	siteStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO sites (
		site_id,
		name,
		lat,
		lon
	)
	VALUES (?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed data: prepare site insert: %w", err)
	}
	defer siteStmt.Close()

	for _, s := range data.Sites {
		if _, err := siteStmt.Exec(s.SiteID, s.Name, s.Lat, s.Lon); err != nil {
			return fmt.Errorf("seed data: insert site_id=%s: %w", s.SiteID, err)
		}
	}

	bookingStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO bookings (
		booking_id,
		site_id,
		start_at,
		duration_minutes,
		quantity_m3,
		status
	)
	VALUES (?, ?, ?, ?, ?, 'active');
	`)
	if err != nil {
		return fmt.Errorf("seed data: prepare booking insert: %w", err)
	}
	defer bookingStmt.Close()

	for _, b := range data.Bookings {
		if _, err := bookingStmt.Exec(b.BookingID, b.SiteID, b.StartAt, b.DurationMinutes, b.QuantityM3); err != nil {
			return fmt.Errorf("seed data: insert booking_id=%s: %w", b.BookingID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed data: commit tx: %w", err)
	}

	return nil
}
