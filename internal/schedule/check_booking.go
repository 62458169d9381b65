package schedule

import (
	"context"
	"fmt"
	"time"

	"concrete-booking-service/internal/domain"
	"concrete-booking-service/internal/platform/obs"
	"concrete-booking-service/internal/ports"
)

// CheckBooking materializes the proposed event's calendar day from the
// repository and the site directory, then runs the pure conflict check.
//
// Fetch failures propagate as errors; the check is never run against
// partial data, since a silently empty day would suppress real conflicts.
func CheckBooking(
	ctx context.Context,
	proposed domain.DeliveryEvent,
	repo ports.BookingRepository,
	dir ports.SiteDirectory,
	cfg CheckConfig,
) (warnings []domain.Warning, err error) {
	defer obs.Time(ctx, "check_booking")(&err)

	day := proposed.Start.UTC().Truncate(24 * time.Hour)

	existing, err := repo.ListBookingsForDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("check booking: list bookings for %s: %w", day.Format("2006-01-02"), err)
	}

	sites, err := dir.ListSites(ctx)
	if err != nil {
		return nil, fmt.Errorf("check booking: list sites: %w", err)
	}

	return CheckDay(existing, proposed, domain.SiteMap(sites), cfg), nil
}
