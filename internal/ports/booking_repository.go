package ports

import (
	"context"
	"time"

	"concrete-booking-service/internal/domain"
)

// Port: a boundary for retrieving and storing delivery bookings.
type BookingRepository interface {
	// Return the active bookings whose scheduled start falls within the
	// calendar day beginning at day (UTC midnight), ordered by start time.
	ListBookingsForDay(ctx context.Context, day time.Time) ([]domain.DeliveryEvent, error)

	// Persist a new booking.
	CreateBooking(ctx context.Context, event domain.DeliveryEvent) error
}
