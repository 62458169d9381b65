package ports

import (
	"context"

	"concrete-booking-service/internal/domain"
)

// Port: a boundary for the project/site registry. Coordinates are optional
// per site; the conflict check has a defined fallback when they are missing.
type SiteDirectory interface {
	// Return all known sites with their optional coordinates.
	ListSites(ctx context.Context) ([]domain.SiteLocation, error)
}
