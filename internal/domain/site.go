package domain

// A site's known location. Coords is nil when either latitude or longitude
// is missing in the project registry; travel estimation then falls back to
// a fixed default for distinct sites.
type SiteLocation struct {
	ID     SiteID
	Name   string
	Coords *Coordinates
}

// DisplayName returns the human-facing site name used in warning text.
func (s SiteLocation) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return string(s.ID)
}

// SiteMap materializes a site list into a lookup table keyed by identifier.
func SiteMap(sites []SiteLocation) map[SiteID]SiteLocation {
	m := make(map[SiteID]SiteLocation, len(sites))
	for _, s := range sites {
		m[s.ID] = s
	}
	return m
}
