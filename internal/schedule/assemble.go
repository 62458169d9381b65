package schedule

import (
	"slices"

	"concrete-booking-service/internal/domain"
)

// AssembleDay merges the day's committed bookings with the single proposed
// event into one sequence ordered by start time, and returns the proposed
// event's index within it.
//
// When the proposed event is an edit of an existing booking, the stored
// original is excluded so the booking cannot conflict with itself. The sort
// is stable; identical start times keep their insertion order, which the
// detector tolerates because each pair is examined independently.
func AssembleDay(existing []domain.DeliveryEvent, proposed domain.DeliveryEvent) ([]domain.DeliveryEvent, int) {
	merged := make([]domain.DeliveryEvent, 0, len(existing)+1)

	for _, e := range existing {
		if proposed.ID != "" && e.ID == proposed.ID {
			continue
		}
		e.Proposed = false
		merged = append(merged, e)
	}

	proposed.Proposed = true
	merged = append(merged, proposed)

	slices.SortStableFunc(merged, func(a, b domain.DeliveryEvent) int {
		return a.Start.Compare(b.Start)
	})

	idx := slices.IndexFunc(merged, func(e domain.DeliveryEvent) bool { return e.Proposed })
	return merged, idx
}
