package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"concrete-booking-service/internal/domain"

	"github.com/shopspring/decimal"
)

// SQL-backed implementation of the BookingRepository port. Timestamps are
// stored as RFC 3339 UTC text and quantities as exact decimal text.
type SQLBookingRepository struct{ DB *sql.DB }

func NewSQLBookingRepository(db *sql.DB) *SQLBookingRepository {
	return &SQLBookingRepository{DB: db}
}

// Return the active bookings of one calendar day, ordered by start time.
// The day window is [day, day+24h) against the stored start timestamp.
func (s *SQLBookingRepository) ListBookingsForDay(ctx context.Context, day time.Time) ([]domain.DeliveryEvent, error) {
	if s.DB == nil {
		return nil, errors.New("sql booking repository: DB is nil")
	}

	dayStart := day.UTC().Truncate(24 * time.Hour)
	dayEnd := dayStart.Add(24 * time.Hour)

	query := `
	SELECT
		booking_id,
		site_id,
		start_at,
		duration_minutes,
		quantity_m3
	FROM bookings
	WHERE status = 'active'
		AND start_at >= ?
		AND start_at < ?
	ORDER BY start_at, booking_id;
	`
	rows, err := s.DB.QueryContext(ctx, query, dayStart.Format(time.RFC3339), dayEnd.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("list bookings: query bookings table: %w", err)
	}
	defer rows.Close()

	events := make([]domain.DeliveryEvent, 0, 16)
	for rows.Next() {
		var (
			id, site, startAt, qty string
			duration               int
		)
		if err := rows.Scan(&id, &site, &startAt, &duration, &qty); err != nil {
			return nil, fmt.Errorf("list bookings: scan row: %w", err)
		}

		start, err := time.Parse(time.RFC3339, startAt)
		if err != nil {
			return nil, fmt.Errorf("list bookings: parse start_at for booking %q: %w", id, err)
		}
		quantity, err := decimal.NewFromString(qty)
		if err != nil {
			return nil, fmt.Errorf("list bookings: parse quantity_m3 for booking %q: %w", id, err)
		}

		events = append(events, domain.DeliveryEvent{
			ID:              domain.BookingID(id),
			Site:            domain.SiteID(site),
			Start:           start,
			DurationMinutes: duration,
			Quantity:        quantity,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list bookings: row iteration: %w", err)
	}

	return events, nil
}

// Persist a new booking as an active record.
func (s *SQLBookingRepository) CreateBooking(ctx context.Context, event domain.DeliveryEvent) error {
	if s.DB == nil {
		return errors.New("sql booking repository: DB is nil")
	}
	if event.ID == "" {
		return errors.New("create booking: booking id must not be empty")
	}

	query := `
	INSERT INTO bookings (
		booking_id,
		site_id,
		start_at,
		duration_minutes,
		quantity_m3,
		status
	)
	VALUES (?, ?, ?, ?, ?, 'active');
	`
	_, err := s.DB.ExecContext(
		ctx,
		query,
		string(event.ID),
		string(event.Site),
		event.Start.UTC().Format(time.RFC3339),
		event.DurationMinutes,
		event.Quantity.String(),
	)
	if err != nil {
		return fmt.Errorf("create booking: insert booking_id=%s: %w", event.ID, err)
	}

	return nil
}
