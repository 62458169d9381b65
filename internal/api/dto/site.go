package dto

type SiteResponse struct {
	SiteID string   `json:"site_id"`
	Name   string   `json:"name"`
	Lat    *float64 `json:"lat,omitempty"`
	Lon    *float64 `json:"lon,omitempty"`
}

type ListSitesResponse struct {
	Sites []SiteResponse `json:"sites"`
}
