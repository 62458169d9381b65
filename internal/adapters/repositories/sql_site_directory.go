package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"concrete-booking-service/internal/domain"
)

// SQL-backed implementation of the SiteDirectory port. Latitude and
// longitude are nullable; a site with either missing is surfaced without
// coordinates.
type SQLSiteDirectory struct{ DB *sql.DB }

func NewSQLSiteDirectory(db *sql.DB) *SQLSiteDirectory {
	return &SQLSiteDirectory{DB: db}
}

// Return all sites stored in the registry.
func (s *SQLSiteDirectory) ListSites(ctx context.Context) ([]domain.SiteLocation, error) {
	if s.DB == nil {
		return nil, errors.New("sql site directory: DB is nil")
	}

	query := `
	SELECT
		site_id,
		name,
		lat,
		lon
	FROM sites
	ORDER BY site_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list sites: query sites table: %w", err)
	}
	defer rows.Close()

	sites := make([]domain.SiteLocation, 0, 32)
	for rows.Next() {
		var (
			id, name string
			lat, lon sql.NullFloat64
		)
		if err := rows.Scan(&id, &name, &lat, &lon); err != nil {
			return nil, fmt.Errorf("list sites: scan row: %w", err)
		}

		site := domain.SiteLocation{ID: domain.SiteID(id), Name: name}
		if lat.Valid && lon.Valid {
			site.Coords = &domain.Coordinates{Lat: lat.Float64, Lon: lon.Float64}
		}
		sites = append(sites, site)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sites: row iteration: %w", err)
	}

	return sites, nil
}
